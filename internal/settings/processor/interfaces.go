package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"autojoin-server/internal/store"
)

// Store defines the database operations required by SettingsProcessor
type Store interface {
	GetSettings(ctx context.Context) (store.Settings, error)
	UpdateSettings(ctx context.Context, params store.UpdateSettingsParams) (store.Settings, error)
	CreateActivityLog(ctx context.Context, params store.CreateActivityLogParams) (store.ActivityLog, error)
}

// JobScheduler applies settings that change job cadence
type JobScheduler interface {
	RescheduleAutomation(ctx context.Context, every time.Duration) error
	SetSafetyCheckEnabled(ctx context.Context, enabled bool) error
}
