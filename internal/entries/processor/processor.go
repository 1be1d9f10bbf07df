package processor

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"autojoin-server/internal/clients/steamgifts"
	"autojoin-server/internal/events"
	"autojoin-server/internal/metrics"
	"autojoin-server/internal/observability"
	"autojoin-server/internal/store"
)

var (
	ErrGiveawayNotFound = errors.New("giveaway not found")
	ErrAlreadyEntered   = errors.New("giveaway already entered")
	ErrGiveawayEnded    = errors.New("giveaway has ended")
)

// Why an entry run ended before exhausting its candidates
const (
	StopBudgetFloor = "budget_floor"
	StopMaxEntries  = "max_entries"
	StopCancelled   = "cancelled"
)

// Sleeper pauses between entries. It returns early with ctx's error when ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the production Sleeper
func SleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Attempt is one submitted entry
type Attempt struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	PointsSpent int    `json:"points_spent"`
	EntryType   string `json:"entry_type"`
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
}

// Result summarises one entry run
type Result struct {
	Entered         int       `json:"entered"`
	Failed          int       `json:"failed"`
	Rejected        int       `json:"rejected"`
	Skipped         int       `json:"skipped"`
	PointsSpent     int       `json:"points_spent"`
	PointsRemaining int       `json:"points_remaining"`
	StoppedBy       string    `json:"stopped_by,omitempty"`
	Attempts        []Attempt `json:"attempts"`
}

type EntryProcessor struct {
	site    SiteClient
	store   Store
	catalog GameInfoProvider
	sink    EventSink
	metrics *metrics.Metrics
	logger  *observability.Logger

	sleep  Sleeper
	random func() float64
	now    func() time.Time
}

func New(site SiteClient, store Store, catalog GameInfoProvider, sink EventSink, m *metrics.Metrics, logger *observability.Logger) *EntryProcessor {
	return &EntryProcessor{
		site:    site,
		store:   store,
		catalog: catalog,
		sink:    sink,
		metrics: m,
		logger:  logger,
		sleep:   SleepContext,
		random:  rand.Float64,
		now:     time.Now,
	}
}

// SelectAndEnter enters candidates cheapest first while the balance stays at or above the stop
// threshold. An expired session or a rate limit stops the run and is returned with the partial result.
func (p *EntryProcessor) SelectAndEnter(ctx context.Context, candidates []store.Giveaway, settings store.Settings, points int) (Result, error) {
	ordered := slices.Clone(candidates)
	slices.SortStableFunc(ordered, func(a, b store.Giveaway) int {
		if c := cmp.Compare(a.PointsCost, b.PointsCost); c != 0 {
			return c
		}
		return strings.Compare(a.Code, b.Code)
	})

	result := Result{PointsRemaining: points, Attempts: []Attempt{}}
	now := p.now()

	for _, g := range ordered {
		if settings.MaxEntriesPerCycle != nil && result.Entered >= *settings.MaxEntriesPerCycle {
			result.StoppedBy = StopMaxEntries
			break
		}

		v, reason := p.evaluate(ctx, g, settings, now)
		switch v {
		case rejected:
			result.Rejected++
			p.logger.Debug(observability.WithFields(ctx, observability.Field{Key: "giveaway_code", Value: g.Code}),
				fmt.Sprintf("candidate rejected: %s", reason))
			continue
		case unresolved:
			result.Skipped++
			continue
		}

		// candidates are ordered by cost, so the first one that breaches the floor ends the run
		if result.PointsRemaining-g.PointsCost < settings.AutojoinStopAt {
			result.StoppedBy = StopBudgetFloor
			break
		}

		if len(result.Attempts) > 0 {
			if err := p.sleep(ctx, p.delay(settings)); err != nil {
				result.StoppedBy = StopCancelled
				return result, err
			}
		}
		if err := ctx.Err(); err != nil {
			result.StoppedBy = StopCancelled
			return result, err
		}

		attempt, err := p.attempt(ctx, g, entryType(g))
		result.Attempts = append(result.Attempts, attempt)
		if attempt.Success {
			result.Entered++
			result.PointsSpent += g.PointsCost
			result.PointsRemaining -= g.PointsCost
		} else {
			result.Failed++
		}
		if err != nil {
			return result, err
		}
	}

	p.logger.Info(ctx, fmt.Sprintf("entry run finished: %d entered, %d failed, %d rejected, %d skipped, %d points left",
		result.Entered, result.Failed, result.Rejected, result.Skipped, result.PointsRemaining))
	return result, nil
}

// EnterSingle enters one giveaway on operator request
func (p *EntryProcessor) EnterSingle(ctx context.Context, code string) (Attempt, error) {
	settings, err := p.store.GetSettings(ctx)
	if err != nil {
		return Attempt{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if !settings.HasSession() {
		return Attempt{}, steamgifts.ErrNotConfigured
	}

	g, err := p.store.GetGiveawayByCode(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		return Attempt{}, ErrGiveawayNotFound
	}
	if err != nil {
		return Attempt{}, fmt.Errorf("failed to get giveaway: %w", err)
	}
	if g.IsEntered {
		return Attempt{}, ErrAlreadyEntered
	}
	if !g.IsActive(p.now()) {
		return Attempt{}, ErrGiveawayEnded
	}

	return p.attempt(ctx, g, store.EntryTypeManual)
}

// attempt runs the pending → submit → complete protocol for one giveaway. The returned error is
// non-nil only when the run must stop.
func (p *EntryProcessor) attempt(ctx context.Context, g store.Giveaway, entryType string) (Attempt, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "giveaway_code", Value: g.Code},
		observability.Field{Key: "entry_type", Value: entryType},
	)
	attempt := Attempt{Code: g.Code, Name: g.DisplayName, PointsSpent: g.PointsCost, EntryType: entryType}

	entry, err := p.store.CreatePendingEntry(ctx, g.ID, g.PointsCost, entryType)
	if err != nil {
		return attempt, fmt.Errorf("failed to create pending entry: %w", err)
	}

	outcome, submitErr := p.site.SubmitEntry(ctx, g.Code)
	// the submission has happened; its bookkeeping must survive cancellation
	wctx := context.WithoutCancel(ctx)

	if submitErr == nil && outcome.Success {
		if err := p.store.CompleteEntrySuccess(wctx, entry.ID, p.now().UTC()); err != nil {
			return attempt, fmt.Errorf("failed to complete entry: %w", err)
		}
		attempt.Success = true
		p.recordSuccess(wctx, attempt)
		return attempt, nil
	}

	attempt.PointsSpent = 0
	attempt.Message = outcome.Message
	if submitErr != nil {
		attempt.Message = submitErr.Error()
	}
	if attempt.Message == "" {
		attempt.Message = "entry refused"
	}
	if err := p.store.CompleteEntryFailure(wctx, entry.ID, attempt.Message); err != nil {
		p.logger.Error(wctx, "failed to record failed entry", err)
	}
	p.recordFailure(wctx, attempt)

	switch {
	case submitErr == nil:
		return attempt, nil
	case errors.Is(submitErr, steamgifts.ErrAuthExpired), errors.Is(submitErr, steamgifts.ErrRateLimited):
		return attempt, submitErr
	case ctx.Err() != nil:
		return attempt, ctx.Err()
	}
	return attempt, nil
}

func (p *EntryProcessor) recordSuccess(ctx context.Context, a Attempt) {
	p.metrics.RecordEntry(a.EntryType, store.EntryStatusSuccess)
	p.logger.Info(ctx, fmt.Sprintf("entered giveaway %s for %dP", a.Name, a.PointsSpent))
	p.sink.Broadcast(ctx, events.KindEntrySuccess, map[string]any{
		"giveaway_code": a.Code,
		"game_name":     a.Name,
		"points_spent":  a.PointsSpent,
		"entry_type":    a.EntryType,
	})
	p.activity(ctx, store.ActivityLevelInfo, fmt.Sprintf("Entered giveaway: %s (%dP)", a.Name, a.PointsSpent),
		store.JSONB{"code": a.Code, "game": a.Name, "points": a.PointsSpent})
}

func (p *EntryProcessor) recordFailure(ctx context.Context, a Attempt) {
	p.metrics.RecordEntry(a.EntryType, store.EntryStatusFailed)
	p.logger.Warn(ctx, fmt.Sprintf("failed to enter giveaway %s: %s", a.Name, a.Message))
	p.sink.Broadcast(ctx, events.KindEntryFailure, map[string]any{
		"giveaway_code": a.Code,
		"game_name":     a.Name,
		"reason":        a.Message,
	})
	p.activity(ctx, store.ActivityLevelWarning, fmt.Sprintf("Failed to enter %s: %s", a.Name, a.Message),
		store.JSONB{"code": a.Code, "game": a.Name, "reason": a.Message})
}

func (p *EntryProcessor) activity(ctx context.Context, level, message string, details store.JSONB) {
	_, err := p.store.CreateActivityLog(ctx, store.CreateActivityLogParams{
		Level:     level,
		EventType: store.ActivityEventEntry,
		Message:   message,
		Details:   details,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to write activity log", err)
	}
}

// delay is uniform in [min, max] seconds
func (p *EntryProcessor) delay(s store.Settings) time.Duration {
	lo := float64(s.EntryDelayMinSeconds)
	hi := float64(s.EntryDelayMaxSeconds)
	if hi < lo {
		hi = lo
	}
	secs := lo + p.random()*(hi-lo)
	return time.Duration(secs * float64(time.Second))
}

func entryType(g store.Giveaway) string {
	if g.IsWishlisted {
		return store.EntryTypeWishlist
	}
	return store.EntryTypeAuto
}
