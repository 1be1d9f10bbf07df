package jobs

import (
	"context"
	"time"

	automation "autojoin-server/internal/automation/processor"
	"autojoin-server/internal/jobs/scheduler"
	safety "autojoin-server/internal/safety/processor"
	"autojoin-server/internal/store"
)

// Scheduler is the subset of *scheduler.Scheduler the jobs drive
type Scheduler interface {
	AddJob(id string, fn scheduler.JobFunc, trigger scheduler.Trigger) error
	RemoveJob(id string) bool
	GetJob(id string) (scheduler.JobInfo, bool)
	RunJob(id string) error
	RunJobWith(id string, fn scheduler.JobFunc) error
}

// AutomationCycle runs the scan and entry pipeline
type AutomationCycle interface {
	RunCycle(ctx context.Context, gated bool) automation.CycleResult
}

// SafetyCycle checks one unchecked giveaway
type SafetyCycle interface {
	RunCycle(ctx context.Context) (safety.CycleResult, error)
}

// WinSyncer imports wins from the site
type WinSyncer interface {
	SyncWins(ctx context.Context, pages int) (int, error)
}

// CatalogRefresher refreshes stale catalog rows
type CatalogRefresher interface {
	RefreshStale(ctx context.Context, limit int) (int, error)
}

// Store defines the database operations the jobs need
type Store interface {
	UpdateNextScanAt(ctx context.Context, at *time.Time) error
	GetNextExpiringEnteredGiveaway(ctx context.Context, after time.Time) (store.Giveaway, error)
}
