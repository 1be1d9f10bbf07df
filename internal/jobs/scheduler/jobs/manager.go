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

// Config holds the cadence of the jobs that Settings does not drive
type Config struct {
	SafetyCheckInterval time.Duration
	CatalogRefreshCron  string
	CatalogRefreshBatch int
}

// Manager owns the application jobs and keeps their registrations in line with Settings
type Manager struct {
	sched      Scheduler
	automation *AutomationCycleJob
	safety     *SafetyCheckJob
	winCheck   *WinCheckJob
	catalog    *CatalogRefreshJob
	logger     *observability.Logger
}

// NewManager builds the remaining jobs against the given scheduler. The win check is built
// separately because the automation cycle reschedules it. Nothing is registered until RegisterAll.
func NewManager(
	sched Scheduler,
	cycle AutomationCycle,
	safety SafetyCycle,
	winCheck *WinCheckJob,
	catalog CatalogRefresher,
	store Store,
	cfg Config,
	logger *observability.Logger,
) *Manager {
	return &Manager{
		sched:      sched,
		automation: NewAutomationCycleJob(cycle, store, sched, logger, 0),
		safety:     NewSafetyCheckJob(safety, logger, cfg.SafetyCheckInterval),
		winCheck:   winCheck,
		catalog:    NewCatalogRefreshJob(catalog, logger, cfg.CatalogRefreshCron, cfg.CatalogRefreshBatch),
		logger:     logger,
	}
}

// RegisterAll adds the recurring jobs for the current settings and schedules the first win check
func (m *Manager) RegisterAll(ctx context.Context, settings store.Settings) error {
	if err := m.RescheduleAutomation(ctx, time.Duration(settings.ScanIntervalMinutes)*time.Minute); err != nil {
		return err
	}
	if err := m.SetSafetyCheckEnabled(ctx, settings.SafetyCheckEnabled); err != nil {
		return err
	}
	if err := m.register(m.catalog); err != nil {
		return err
	}
	if err := m.winCheck.ScheduleWinCheck(ctx); err != nil {
		// a missing win check is recovered by the next cycle that enters something
		m.logger.Error(ctx, "failed to schedule initial win check", err)
	}
	return nil
}

// RescheduleAutomation replaces the automation job with a new interval
func (m *Manager) RescheduleAutomation(ctx context.Context, every time.Duration) error {
	m.automation.SetInterval(every)
	if err := m.register(m.automation); err != nil {
		return err
	}
	m.automation.persistNextRun(ctx)
	return nil
}

// SetSafetyCheckEnabled adds or removes the safety job
func (m *Manager) SetSafetyCheckEnabled(ctx context.Context, enabled bool) error {
	if enabled {
		return m.register(m.safety)
	}
	if m.sched.RemoveJob(SafetyCheckJobID) {
		m.logger.Info(ctx, "Safety check job removed")
	}
	return nil
}

// ScheduleWinCheck moves the win check to the soonest entered giveaway
func (m *Manager) ScheduleWinCheck(ctx context.Context) error {
	return m.winCheck.ScheduleWinCheck(ctx)
}

// RunAutomationNow fires an ungated automation cycle
func (m *Manager) RunAutomationNow() error {
	return m.automation.RunNow()
}

// RunSafetyNow fires the safety job. When the job is disabled one check runs inline instead.
func (m *Manager) RunSafetyNow(ctx context.Context) error {
	err := m.sched.RunJob(SafetyCheckJobID)
	if errors.Is(err, scheduler.ErrJobNotFound) {
		return m.safety.Run(ctx)
	}
	return err
}

func (m *Manager) register(j scheduler.Job) error {
	if err := m.sched.AddJob(j.Name(), j.Run, j.Trigger()); err != nil {
		return fmt.Errorf("failed to register %s: %w", j.Name(), err)
	}
	return nil
}
