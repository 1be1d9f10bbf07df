package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"autojoin-server/internal/clients/steamgifts"
	"autojoin-server/internal/store"
)

// ErrFetch is returned when the detail page could not be read
var ErrFetch = errors.New("failed to fetch giveaway page")

// Trap phrases are matched with a leading space so they start a word. The second list holds
// harmless words that contain a trap prefix; each occurrence offsets one trap hit.
var (
	badTerms  = []string{" ban", " fake", " bot", " not enter", " don't enter", " do not enter"}
	goodTerms = []string{" bank", " banan", " both", " band", " banner", " bang"}
)

const (
	maxSafetyScore  = 100
	scorePerNetTrap = 20
)

// Result is the verdict of one safety check
type Result struct {
	IsSafe      bool     `json:"is_safe"`
	SafetyScore int      `json:"safety_score"`
	BadCount    int      `json:"bad_count"`
	GoodCount   int      `json:"good_count"`
	Signals     []string `json:"signals,omitempty"`
}

// Analyze scores page text. It is pure and deterministic.
func Analyze(text string) Result {
	lower := strings.ToLower(text)

	var r Result
	for _, term := range badTerms {
		if n := strings.Count(lower, term); n > 0 {
			r.BadCount += n
			r.Signals = append(r.Signals, fmt.Sprintf("%q x%d", strings.TrimSpace(term), n))
		}
	}
	for _, term := range goodTerms {
		r.GoodCount += strings.Count(lower, term)
	}

	r.IsSafe = r.BadCount <= r.GoodCount
	r.SafetyScore = safetyScore(r.BadCount, r.GoodCount)
	return r
}

func safetyScore(bad, good int) int {
	net := max(0, bad-good)
	if net == 0 {
		return maxSafetyScore
	}
	return max(0, maxSafetyScore-scorePerNetTrap*net)
}

// Checker fetches a giveaway's detail page and analyzes it
type Checker struct {
	site SiteClient
}

func NewChecker(site SiteClient) *Checker {
	return &Checker{site: site}
}

// Check fetches and analyzes the detail page of g. An expired session is returned as is.
func (c *Checker) Check(ctx context.Context, g store.Giveaway) (Result, error) {
	page, err := c.site.GetDetailPage(ctx, g.Code)
	if err != nil {
		if errors.Is(err, steamgifts.ErrAuthExpired) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("%w %s: %w", ErrFetch, g.Code, err)
	}
	return Analyze(page), nil
}
