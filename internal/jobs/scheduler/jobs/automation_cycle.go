package jobs

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"autojoin-server/internal/jobs/scheduler"
	"autojoin-server/internal/observability"
)

const AutomationCycleJobID = "automation_cycle"

// AutomationCycleJob runs the automation cycle every scan interval and persists the next run time
type AutomationCycleJob struct {
	cycle  AutomationCycle
	store  Store
	sched  Scheduler
	logger *observability.Logger

	every atomic.Int64
}

// NewAutomationCycleJob creates the job with the given interval
func NewAutomationCycleJob(cycle AutomationCycle, store Store, sched Scheduler, logger *observability.Logger, every time.Duration) *AutomationCycleJob {
	if every <= 0 {
		every = 30 * time.Minute
	}
	j := &AutomationCycleJob{
		cycle:  cycle,
		store:  store,
		sched:  sched,
		logger: logger,
	}
	j.every.Store(int64(every))
	return j
}

// Name returns the job name
func (j *AutomationCycleJob) Name() string {
	return AutomationCycleJobID
}

// Trigger returns the current scan interval
func (j *AutomationCycleJob) Trigger() scheduler.Trigger {
	return scheduler.Interval(time.Duration(j.every.Load()))
}

// SetInterval changes the interval used by the next registration
func (j *AutomationCycleJob) SetInterval(every time.Duration) {
	j.every.Store(int64(every))
}

// Run executes one scheduled cycle. Cycle failures are recorded by the cycle itself and not returned.
func (j *AutomationCycleJob) Run(ctx context.Context) error {
	return j.run(ctx, true)
}

func (j *AutomationCycleJob) runUngated(ctx context.Context) error {
	return j.run(ctx, false)
}

func (j *AutomationCycleJob) run(ctx context.Context, gated bool) error {
	result := j.cycle.RunCycle(ctx, gated)

	switch {
	case result.Skipped:
		j.logger.Debug(ctx, fmt.Sprintf("Automation cycle skipped: %s", result.Reason))
	case result.Error != "":
		j.logger.Warn(ctx, fmt.Sprintf("Automation cycle ended in %s after %v", result.FailedStage, result.Duration))
	default:
		j.logger.Info(ctx, fmt.Sprintf("Automation cycle finished in %v", result.Duration))
	}

	j.persistNextRun(context.WithoutCancel(ctx))
	return nil
}

// RunNow fires the cycle immediately, bypassing the automation toggle
func (j *AutomationCycleJob) RunNow() error {
	return j.sched.RunJobWith(AutomationCycleJobID, j.runUngated)
}

func (j *AutomationCycleJob) persistNextRun(ctx context.Context) {
	var next *time.Time
	if info, ok := j.sched.GetJob(AutomationCycleJobID); ok {
		next = info.NextRun
	}
	if err := j.store.UpdateNextScanAt(ctx, next); err != nil {
		j.logger.Error(ctx, "failed to persist next scan time", err)
	}
}
