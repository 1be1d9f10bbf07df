package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"autojoin-server/internal/clients/steamgifts"
	"autojoin-server/internal/events"
	"autojoin-server/internal/metrics"
	"autojoin-server/internal/observability"
	"autojoin-server/internal/store"
)

// Skip reasons of a safety cycle
const (
	SkipNotAuthenticated     = "not_authenticated"
	SkipSafetyCheckDisabled  = "safety_check_disabled"
	SkipNoUncheckedGiveaways = "no_unchecked_giveaways"
)

// CycleResult reports one safety cycle. At most one giveaway is checked per cycle.
type CycleResult struct {
	Checked int    `json:"checked"`
	Safe    int    `json:"safe"`
	Unsafe  int    `json:"unsafe"`
	Hidden  int    `json:"hidden"`
	Skipped bool   `json:"skipped"`
	Reason  string `json:"reason,omitempty"`
	Code    string `json:"code,omitempty"`
}

type SafetyProcessor struct {
	checker *Checker
	site    SiteClient
	store   Store
	sink    EventSink
	metrics *metrics.Metrics
	logger  *observability.Logger
}

func New(site SiteClient, store Store, sink EventSink, m *metrics.Metrics, logger *observability.Logger) *SafetyProcessor {
	return &SafetyProcessor{
		checker: NewChecker(site),
		site:    site,
		store:   store,
		sink:    sink,
		metrics: m,
		logger:  logger,
	}
}

// RunCycle checks the next unchecked giveaway
func (p *SafetyProcessor) RunCycle(ctx context.Context) (CycleResult, error) {
	settings, err := p.store.GetSettings(ctx)
	if err != nil {
		return CycleResult{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if !settings.HasSession() {
		return skipped(SkipNotAuthenticated), nil
	}
	if !settings.SafetyCheckEnabled {
		return skipped(SkipSafetyCheckDisabled), nil
	}

	g, err := p.store.GetNextUncheckedGiveaway(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return skipped(SkipNoUncheckedGiveaways), nil
	}
	if err != nil {
		return CycleResult{}, fmt.Errorf("failed to get unchecked giveaway: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "giveaway_code", Value: g.Code})
	result := CycleResult{Code: g.Code}

	verdict, err := p.checker.Check(ctx, g)
	if err != nil {
		return p.handleCheckError(ctx, settings, g, result, err)
	}

	if err := p.store.UpdateGiveawaySafety(ctx, g.ID, verdict.IsSafe, verdict.SafetyScore); err != nil {
		return result, fmt.Errorf("failed to save safety verdict: %w", err)
	}
	result.Checked = 1

	if verdict.IsSafe {
		result.Safe = 1
		p.metrics.RecordSafetyCheck("safe")
		p.logger.Info(ctx, fmt.Sprintf("safety check passed with score %d", verdict.SafetyScore))
		return result, nil
	}

	result.Unsafe = 1
	p.metrics.RecordSafetyCheck("unsafe")
	p.logger.Warn(ctx, fmt.Sprintf("safety check failed with score %d", verdict.SafetyScore))
	p.activity(ctx, store.ActivityLevelWarning,
		fmt.Sprintf("Unsafe giveaway detected: %s (%s)", g.DisplayName, strings.Join(verdict.Signals, ", ")),
		store.JSONB{
			"code":         g.Code,
			"game_name":    g.DisplayName,
			"safety_score": verdict.SafetyScore,
			"issues":       verdict.Signals,
		})

	if settings.AutoHideUnsafe && p.hide(ctx, g) {
		result.Hidden = 1
	}
	return result, nil
}

func (p *SafetyProcessor) handleCheckError(ctx context.Context, settings store.Settings, g store.Giveaway, result CycleResult, checkErr error) (CycleResult, error) {
	p.metrics.RecordSafetyCheck("error")

	if errors.Is(checkErr, steamgifts.ErrAuthExpired) {
		p.logger.Error(ctx, "session expired during safety check", checkErr)
		p.sink.Broadcast(ctx, events.KindSessionInvalid, map[string]string{"reason": checkErr.Error()})
		return result, checkErr
	}

	p.logger.Error(ctx, "safety check failed", checkErr)
	if settings.SafetyErrorPolicy == store.SafetyErrorPolicyRetry {
		if err := p.store.TouchSafetyCheck(ctx, g.ID); err != nil {
			return result, fmt.Errorf("failed to defer safety check: %w", err)
		}
		result.Reason = "check_failed"
		return result, nil
	}

	// mark_safe: record a neutral verdict so a broken page cannot stall the queue
	if err := p.store.UpdateGiveawaySafety(ctx, g.ID, true, store.NeutralSafetyScore); err != nil {
		return result, fmt.Errorf("failed to save fallback safety verdict: %w", err)
	}
	result.Checked = 1
	result.Safe = 1
	result.Reason = "check_failed"
	return result, nil
}

func (p *SafetyProcessor) hide(ctx context.Context, g store.Giveaway) bool {
	outcome, err := p.site.Hide(ctx, g.Code)
	if err == nil && !outcome.Hidden {
		err = errors.New("site did not confirm hide")
		if outcome.Message != "" {
			err = fmt.Errorf("site refused hide: %s", outcome.Message)
		}
	}
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to hide unsafe giveaway", err)
		p.activity(ctx, store.ActivityLevelError,
			fmt.Sprintf("Failed to hide unsafe giveaway: %s", g.DisplayName),
			store.JSONB{"code": g.Code, "error": err.Error()})
		return false
	}

	if err := p.store.HideGiveaway(ctx, g.ID); err != nil {
		p.logger.Error(ctx, "failed to mark giveaway hidden", err)
		return false
	}
	p.logger.Info(ctx, "hid unsafe giveaway")
	p.activity(ctx, store.ActivityLevelInfo,
		fmt.Sprintf("Hidden unsafe giveaway on SteamGifts: %s", g.DisplayName),
		store.JSONB{"code": g.Code, "game_name": g.DisplayName})
	return true
}

func (p *SafetyProcessor) activity(ctx context.Context, level, message string, details store.JSONB) {
	_, err := p.store.CreateActivityLog(ctx, store.CreateActivityLogParams{
		Level:     level,
		EventType: store.ActivityEventSafety,
		Message:   message,
		Details:   details,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to write activity log", err)
	}
}

func skipped(reason string) CycleResult {
	return CycleResult{Skipped: true, Reason: reason}
}
