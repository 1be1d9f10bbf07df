package processor

import (
	"context"
	"fmt"
	"time"

	"autojoin-server/internal/clients/steamgifts"
	"autojoin-server/internal/observability"
	"autojoin-server/internal/store"
)

type SettingsProcessor struct {
	store  Store
	jobs   JobScheduler
	logger *observability.Logger
}

func New(store Store, logger *observability.Logger) *SettingsProcessor {
	return &SettingsProcessor{store: store, logger: logger}
}

// SetJobScheduler attaches the scheduler that follows cadence changes. Jobs are built after
// the site client, which reads its session from here, so this is wired late.
func (p *SettingsProcessor) SetJobScheduler(jobs JobScheduler) {
	p.jobs = jobs
}

func (p *SettingsProcessor) GetSettings(ctx context.Context) (store.Settings, error) {
	settings, err := p.store.GetSettings(ctx)
	if err != nil {
		return store.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings validates and persists a partial update, then moves the jobs whose cadence
// changed. A rejected update returns a *store.ValidationError and changes nothing.
func (p *SettingsProcessor) UpdateSettings(ctx context.Context, params store.UpdateSettingsParams) (store.Settings, error) {
	before, err := p.store.GetSettings(ctx)
	if err != nil {
		return store.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	updated, err := p.store.UpdateSettings(ctx, params)
	if err != nil {
		return store.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}

	if p.jobs != nil {
		if before.ScanIntervalMinutes != updated.ScanIntervalMinutes {
			every := time.Duration(updated.ScanIntervalMinutes) * time.Minute
			if err := p.jobs.RescheduleAutomation(ctx, every); err != nil {
				p.logger.Error(ctx, "failed to reschedule automation cycle", err)
			}
		}
		if before.SafetyCheckEnabled != updated.SafetyCheckEnabled {
			if err := p.jobs.SetSafetyCheckEnabled(ctx, updated.SafetyCheckEnabled); err != nil {
				p.logger.Error(ctx, "failed to toggle safety check job", err)
			}
		}
	}

	message := "Settings updated"
	if params.PHPSessID != nil {
		message = "Settings updated (session changed)"
	}
	_, err = p.store.CreateActivityLog(ctx, store.CreateActivityLogParams{
		Level:     store.ActivityLevelInfo,
		EventType: store.ActivityEventSettings,
		Message:   message,
		Details: store.JSONB{
			"scan_interval_minutes": updated.ScanIntervalMinutes,
			"automation_enabled":    updated.AutomationEnabled,
			"autojoin_enabled":      updated.AutojoinEnabled,
			"safety_check_enabled":  updated.SafetyCheckEnabled,
		},
	})
	if err != nil {
		p.logger.Error(ctx, "failed to write activity log", err)
	}

	p.logger.Info(ctx, message)
	return updated, nil
}

// Session implements steamgifts.SessionSource from the settings row
func (p *SettingsProcessor) Session(ctx context.Context) (steamgifts.Session, error) {
	settings, err := p.store.GetSettings(ctx)
	if err != nil {
		return steamgifts.Session{}, fmt.Errorf("failed to load session: %w", err)
	}

	sess := steamgifts.Session{UserAgent: settings.UserAgent}
	if settings.PHPSessID != nil {
		sess.PHPSessID = *settings.PHPSessID
	}
	if settings.XSRFToken != nil {
		sess.XSRFToken = *settings.XSRFToken
	}
	return sess, nil
}
