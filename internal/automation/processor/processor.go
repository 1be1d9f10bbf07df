package processor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"autojoin-server/internal/clients/steamgifts"
	entries "autojoin-server/internal/entries/processor"
	"autojoin-server/internal/events"
	"autojoin-server/internal/metrics"
	"autojoin-server/internal/observability"
	scanner "autojoin-server/internal/scanner/processor"
	"autojoin-server/internal/store"
)

// State is the live stage of the automation cycle
type State string

const (
	StateIdle            State = "idle"
	StateScanning        State = "scanning"
	StateSyncingWishlist State = "syncing_wishlist"
	StateSyncingWins     State = "syncing_wins"
	StateCheckingBudget  State = "checking_budget"
	StateEntering        State = "entering"
	StateError           State = "error"
)

// Reasons a cycle or its entry stage did not run
const (
	SkipAutomationDisabled  = "automation_disabled"
	SkipNotAuthenticated    = "not_authenticated"
	SkipAutojoinDisabled    = "autojoin_disabled"
	SkipBelowStartThreshold = "below_start_threshold"
)

// CycleResult reports one automation cycle. Stage results are kept when a later stage fails.
type CycleResult struct {
	Skipped        bool                `json:"skipped"`
	Reason         string              `json:"reason,omitempty"`
	Scan           scanner.ScanResult  `json:"scan"`
	Wishlist       scanner.ScanResult  `json:"wishlist"`
	DLC            *scanner.ScanResult `json:"dlc,omitempty"`
	NewWins        int                 `json:"new_wins"`
	SyncedEntries  int                 `json:"synced_entries"`
	Points         *int                `json:"points,omitempty"`
	EntriesSkipped string              `json:"entries_skipped,omitempty"`
	Entries        *entries.Result     `json:"entries,omitempty"`
	FailedStage    State               `json:"failed_stage,omitempty"`
	Error          string              `json:"error,omitempty"`
	Duration       time.Duration       `json:"duration"`
}

// Succeeded reports whether the cycle ran every stage without error
func (r CycleResult) Succeeded() bool {
	return !r.Skipped && r.Error == ""
}

type AutomationProcessor struct {
	scanner  Scanner
	engine   EntryEngine
	balance  BalanceReader
	store    Store
	sink     EventSink
	winCheck WinCheckScheduler
	metrics  *metrics.Metrics
	logger   *observability.Logger
	now      func() time.Time

	mu    sync.RWMutex
	state State
}

func New(scanner Scanner, engine EntryEngine, balance BalanceReader, store Store, sink EventSink, winCheck WinCheckScheduler, m *metrics.Metrics, logger *observability.Logger) *AutomationProcessor {
	return &AutomationProcessor{
		scanner:  scanner,
		engine:   engine,
		balance:  balance,
		store:    store,
		sink:     sink,
		winCheck: winCheck,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
		state:    StateIdle,
	}
}

// State returns the stage the cycle is currently in
func (p *AutomationProcessor) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

func (p *AutomationProcessor) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// RunCycle runs scan, sync, budget check and entry in order. When gated, a disabled automation
// skips the cycle. Failures are recorded and reported in the result, never returned.
func (p *AutomationProcessor) RunCycle(ctx context.Context, gated bool) (result CycleResult) {
	start := p.now()
	defer func() {
		result.Duration = p.now().Sub(start)
	}()

	settings, err := p.store.GetSettings(ctx)
	if err != nil {
		result = p.fail(ctx, result, StateIdle, fmt.Errorf("failed to load settings: %w", err))
		return result
	}
	if gated && !settings.AutomationEnabled {
		result = p.skip(ctx, SkipAutomationDisabled)
		return result
	}
	if !settings.HasSession() {
		result = p.skip(ctx, SkipNotAuthenticated)
		return result
	}

	p.logger.Info(ctx, "Starting automation cycle")

	stages := []struct {
		state State
		run   func(context.Context, store.Settings, *CycleResult) error
	}{
		{StateScanning, p.scan},
		{StateSyncingWishlist, p.syncWishlist},
		{StateSyncingWins, p.syncWins},
		{StateCheckingBudget, p.checkBudget},
		{StateEntering, p.enter},
	}
	for _, stage := range stages {
		p.setState(stage.state)
		stageCtx := observability.WithFields(ctx, observability.Field{Key: "stage", Value: string(stage.state)})
		if err := stage.run(stageCtx, settings, &result); err != nil {
			result = p.fail(stageCtx, result, stage.state, err)
			return result
		}
		p.sink.Broadcast(ctx, events.KindScanProgress, map[string]any{"stage": string(stage.state)})
	}

	p.complete(ctx, &result)
	return result
}

func (p *AutomationProcessor) scan(ctx context.Context, s store.Settings, r *CycleResult) error {
	res, err := p.scanner.Scan(ctx, s.MaxScanPages)
	r.Scan = res
	if err != nil {
		return fmt.Errorf("failed to scan giveaways: %w", err)
	}
	p.sink.Broadcast(ctx, events.KindScanCompleted, map[string]any{
		"new":     res.New,
		"updated": res.Updated,
		"pages":   res.Pages,
	})
	p.activity(ctx, store.ActivityLevelInfo, store.ActivityEventScan,
		fmt.Sprintf("Scanned %d pages: %d new, %d updated", res.Pages, res.New, res.Updated),
		store.JSONB{"new": res.New, "updated": res.Updated, "pages": res.Pages})
	return nil
}

func (p *AutomationProcessor) syncWishlist(ctx context.Context, s store.Settings, r *CycleResult) error {
	res, err := p.scanner.ScanWishlist(ctx, 1)
	r.Wishlist = res
	if err != nil {
		return fmt.Errorf("failed to sync wishlist: %w", err)
	}
	if !s.DLCEnabled {
		return nil
	}
	dlc, err := p.scanner.ScanDLC(ctx, 1)
	r.DLC = &dlc
	if err != nil {
		return fmt.Errorf("failed to scan dlc giveaways: %w", err)
	}
	return nil
}

func (p *AutomationProcessor) syncWins(ctx context.Context, _ store.Settings, r *CycleResult) error {
	wins, err := p.scanner.SyncWins(ctx, 1)
	r.NewWins = wins
	if err != nil {
		return fmt.Errorf("failed to sync wins: %w", err)
	}
	if wins > 0 {
		p.activity(ctx, store.ActivityLevelInfo, store.ActivityEventWin,
			fmt.Sprintf("Won %d new giveaway(s)", wins), store.JSONB{"count": wins})
	}

	synced, err := p.scanner.SyncEntered(ctx, 1)
	r.SyncedEntries = synced
	if err != nil {
		return fmt.Errorf("failed to sync entered giveaways: %w", err)
	}
	if err := p.store.TouchSettingsSynced(ctx, p.now().UTC()); err != nil {
		p.logger.WarnWithError(ctx, "failed to record sync time", err)
	}
	return nil
}

func (p *AutomationProcessor) checkBudget(ctx context.Context, s store.Settings, r *CycleResult) error {
	points, err := p.balance.GetBalance(ctx)
	if err != nil {
		return fmt.Errorf("failed to read points balance: %w", err)
	}
	r.Points = &points
	p.metrics.SetPoints(points)
	p.sink.Broadcast(ctx, events.KindStatsUpdate, map[string]any{"points": points})

	switch {
	case !s.AutojoinEnabled:
		r.EntriesSkipped = SkipAutojoinDisabled
	case points < s.AutojoinStartAt:
		r.EntriesSkipped = SkipBelowStartThreshold
		p.logger.Info(ctx, fmt.Sprintf("Skipping entries: %dP is below the start threshold of %dP", points, s.AutojoinStartAt))
	}
	return nil
}

func (p *AutomationProcessor) enter(ctx context.Context, s store.Settings, r *CycleResult) error {
	if r.EntriesSkipped != "" || r.Points == nil {
		return nil
	}

	candidates, err := p.store.ListEntryCandidates(ctx)
	if err != nil {
		return fmt.Errorf("failed to list entry candidates: %w", err)
	}
	res, err := p.engine.SelectAndEnter(ctx, candidates, s, *r.Points)
	r.Entries = &res
	remaining := res.PointsRemaining
	r.Points = &remaining
	p.metrics.SetPoints(remaining)

	if res.Entered > 0 && p.winCheck != nil {
		if err := p.winCheck.ScheduleWinCheck(context.WithoutCancel(ctx)); err != nil {
			p.logger.WarnWithError(ctx, "failed to reschedule win check", err)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to enter giveaways: %w", err)
	}
	return nil
}

func (p *AutomationProcessor) complete(ctx context.Context, r *CycleResult) {
	entered := 0
	if r.Entries != nil {
		entered = r.Entries.Entered
	}
	if err := p.store.RecordCycleSuccess(ctx, entered, p.now().UTC()); err != nil {
		p.logger.Error(ctx, "failed to record cycle success", err)
	}
	p.setState(StateIdle)
	p.metrics.RecordCycle("completed")

	payload := map[string]any{
		"new":      r.Scan.New,
		"updated":  r.Scan.Updated,
		"new_wins": r.NewWins,
		"entered":  entered,
	}
	if r.Points != nil {
		payload["points"] = *r.Points
	}
	if r.EntriesSkipped != "" {
		payload["entries_skipped"] = r.EntriesSkipped
	}
	p.sink.Broadcast(ctx, events.KindCycleCompleted, payload)
	p.activity(ctx, store.ActivityLevelInfo, store.ActivityEventCycle,
		fmt.Sprintf("Automation cycle completed: %d new giveaways, %d entered", r.Scan.New, entered),
		store.JSONB(payload))
	p.logger.Info(ctx, fmt.Sprintf("Automation cycle completed: %d new, %d updated, %d entered", r.Scan.New, r.Scan.Updated, entered))
}

func (p *AutomationProcessor) fail(ctx context.Context, r CycleResult, stage State, err error) CycleResult {
	r.FailedStage = stage
	r.Error = err.Error()
	p.setState(StateError)
	p.metrics.RecordCycle("failed")
	p.logger.Error(ctx, "automation cycle failed", err)

	// failure bookkeeping must land even when the cycle was cancelled
	wctx := context.WithoutCancel(ctx)
	if err := p.store.IncrementSchedulerErrors(wctx); err != nil {
		p.logger.Error(wctx, "failed to count cycle error", err)
	}
	p.activity(wctx, store.ActivityLevelError, store.ActivityEventError,
		fmt.Sprintf("Automation cycle failed during %s: %s", stage, err.Error()),
		store.JSONB{"stage": string(stage), "error": err.Error()})

	kind := events.KindCycleFailed
	if stage == StateScanning {
		kind = events.KindScanFailed
	}
	p.sink.Broadcast(wctx, kind, map[string]any{"stage": string(stage), "error": err.Error()})

	if errors.Is(err, steamgifts.ErrAuthExpired) {
		p.sink.Broadcast(wctx, events.KindSessionInvalid, map[string]any{"reason": err.Error()})
		p.activity(wctx, store.ActivityLevelError, store.ActivityEventSession,
			"Session expired: update the site session in settings", nil)
	}
	return r
}

func (p *AutomationProcessor) skip(ctx context.Context, reason string) CycleResult {
	p.metrics.RecordCycle("skipped")
	p.logger.Debug(ctx, fmt.Sprintf("Automation cycle skipped: %s", reason))
	return CycleResult{Skipped: true, Reason: reason}
}

func (p *AutomationProcessor) activity(ctx context.Context, level, eventType, message string, details store.JSONB) {
	_, err := p.store.CreateActivityLog(ctx, store.CreateActivityLogParams{
		Level:     level,
		EventType: eventType,
		Message:   message,
		Details:   details,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to write activity log", err)
	}
}
