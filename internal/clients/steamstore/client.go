package steamstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"autojoin-server/internal/config"
	"autojoin-server/internal/observability"

	"golang.org/x/time/rate"
)

var (
	ErrNotFound    = errors.New("steam app not found")
	ErrRateLimited = errors.New("steam store rate limited")
	ErrUnavailable = errors.New("steam store unavailable")
)

// AppDetails is the subset of the store's app details the catalog keeps
type AppDetails struct {
	ID          int64
	Name        string
	Type        string
	ReleaseDate *time.Time
}

// ReviewSummary is the store's aggregated review data. Score is 0-10.
type ReviewSummary struct {
	Score    int
	Positive int
	Negative int
	Total    int
}

// Client reads public Steam store endpoints
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *observability.Logger
}

// NewClient creates a store client. The store tolerates roughly 200 requests per five minutes.
func NewClient(cfg config.CatalogConfig, logger *observability.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.StoreBaseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(1500*time.Millisecond), 5),
		logger:     logger,
	}
}

type appDetailsEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Type        string `json:"type"`
		Name        string `json:"name"`
		ReleaseDate struct {
			ComingSoon bool   `json:"coming_soon"`
			Date       string `json:"date"`
		} `json:"release_date"`
	} `json:"data"`
}

// AppDetails fetches name, type and release date of an app
func (c *Client) AppDetails(ctx context.Context, appID int64) (AppDetails, error) {
	id := strconv.FormatInt(appID, 10)
	var payload map[string]appDetailsEnvelope
	if err := c.getJSON(ctx, "/api/appdetails?appids="+id, &payload); err != nil {
		return AppDetails{}, err
	}

	env, ok := payload[id]
	if !ok || !env.Success {
		return AppDetails{}, ErrNotFound
	}

	details := AppDetails{ID: appID, Name: env.Data.Name, Type: env.Data.Type}
	if details.Type == "" {
		details.Type = "game"
	}
	if !env.Data.ReleaseDate.ComingSoon {
		details.ReleaseDate = parseReleaseDate(env.Data.ReleaseDate.Date)
	}
	return details, nil
}

type reviewsEnvelope struct {
	Success      int `json:"success"`
	QuerySummary struct {
		ReviewScore   int `json:"review_score"`
		TotalPositive int `json:"total_positive"`
		TotalNegative int `json:"total_negative"`
		TotalReviews  int `json:"total_reviews"`
	} `json:"query_summary"`
}

// ReviewSummary fetches the aggregated review counts of an app
func (c *Client) ReviewSummary(ctx context.Context, appID int64) (ReviewSummary, error) {
	var payload reviewsEnvelope
	path := fmt.Sprintf("/appreviews/%d?json=1&language=all&purchase_type=all&num_per_page=0", appID)
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return ReviewSummary{}, err
	}
	if payload.Success != 1 {
		return ReviewSummary{}, ErrNotFound
	}
	q := payload.QuerySummary
	return ReviewSummary{
		Score:    q.ReviewScore,
		Positive: q.TotalPositive,
		Negative: q.TotalNegative,
		Total:    q.TotalPositive + q.TotalNegative,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.logger.WarnWithError(ctx, "steam store request failed", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d from steam store", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// appdetails answers "null" for delisted apps
		return fmt.Errorf("%w: decoding response: %v", ErrNotFound, err)
	}
	return nil
}

var releaseDateLayouts = []string{
	"2 Jan, 2006",
	"Jan 2, 2006",
	"2 January, 2006",
	"January 2, 2006",
	"Jan 2006",
	"January 2006",
	"2006",
}

func parseReleaseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
