package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autojoin-server/internal/jobs/scheduler"
	"autojoin-server/internal/observability"
	"autojoin-server/internal/store"
)

const WinCheckJobID = "win_check"

// WinCheckJob syncs wins shortly after the soonest entered giveaway ends, then
// schedules itself for the next one.
type WinCheckJob struct {
	wins   WinSyncer
	store  Store
	sched  Scheduler
	logger *observability.Logger
	delay  time.Duration
	now    func() time.Time
}

func NewWinCheckJob(wins WinSyncer, store Store, sched Scheduler, logger *observability.Logger, delay time.Duration) *WinCheckJob {
	if delay <= 0 {
		delay = 5 * time.Minute
	}
	return &WinCheckJob{
		wins:   wins,
		store:  store,
		sched:  sched,
		logger: logger,
		delay:  delay,
		now:    time.Now,
	}
}

func (j *WinCheckJob) Name() string {
	return WinCheckJobID
}

func (j *WinCheckJob) Run(ctx context.Context) error {
	wins, err := j.wins.SyncWins(ctx, 1)
	if err != nil {
		// still move on to the next giveaway so one failure does not stall win tracking
		if schedErr := j.ScheduleWinCheck(context.WithoutCancel(ctx)); schedErr != nil {
			j.logger.Error(ctx, "failed to reschedule win check", schedErr)
		}
		return fmt.Errorf("failed to sync wins: %w", err)
	}
	if wins > 0 {
		j.logger.Info(ctx, fmt.Sprintf("Win check found %d new win(s)", wins))
	}
	return j.ScheduleWinCheck(context.WithoutCancel(ctx))
}

// ScheduleWinCheck points the once-job at the soonest entered giveaway's end plus the delay.
// Without such a giveaway the job is removed.
func (j *WinCheckJob) ScheduleWinCheck(ctx context.Context) error {
	now := j.now()
	g, err := j.store.GetNextExpiringEnteredGiveaway(ctx, now.Add(-j.delay))
	if errors.Is(err, store.ErrNotFound) {
		if j.sched.RemoveJob(WinCheckJobID) {
			j.logger.Debug(ctx, "No entered giveaways pending, win check removed")
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to find next expiring giveaway: %w", err)
	}

	at := now
	if g.EndTime != nil {
		at = g.EndTime.Add(j.delay)
	}
	if !at.After(now) {
		at = now.Add(time.Minute)
	}
	if err := j.sched.AddJob(WinCheckJobID, j.Run, scheduler.Once(at)); err != nil {
		return fmt.Errorf("failed to schedule win check: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "giveaway_code", Value: g.Code})
	j.logger.Info(ctx, fmt.Sprintf("Win check scheduled for %s", at.UTC().Format(time.RFC3339)))
	return nil
}
