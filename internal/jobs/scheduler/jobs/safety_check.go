package jobs

import (
	"context"
	"fmt"
	"time"

	"autojoin-server/internal/jobs/scheduler"
	"autojoin-server/internal/observability"
)

const SafetyCheckJobID = "safety_check"

// SafetyCheckJob screens one unchecked giveaway per tick
type SafetyCheckJob struct {
	safety SafetyCycle
	logger *observability.Logger
	every  time.Duration
}

func NewSafetyCheckJob(safety SafetyCycle, logger *observability.Logger, every time.Duration) *SafetyCheckJob {
	if every <= 0 {
		every = 45 * time.Second
	}
	return &SafetyCheckJob{safety: safety, logger: logger, every: every}
}

func (j *SafetyCheckJob) Name() string {
	return SafetyCheckJobID
}

func (j *SafetyCheckJob) Trigger() scheduler.Trigger {
	return scheduler.Interval(j.every)
}

func (j *SafetyCheckJob) Run(ctx context.Context) error {
	result, err := j.safety.RunCycle(ctx)
	if err != nil {
		return fmt.Errorf("failed to run safety check: %w", err)
	}
	if result.Skipped {
		j.logger.Debug(ctx, fmt.Sprintf("Safety check skipped: %s", result.Reason))
		return nil
	}
	j.logger.Info(ctx, fmt.Sprintf("Safety check of %s: %d safe, %d unsafe, %d hidden", result.Code, result.Safe, result.Unsafe, result.Hidden))
	return nil
}
