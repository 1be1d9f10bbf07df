package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"autojoin-server/internal/clients/steamgifts"
	"autojoin-server/internal/store"

	"github.com/google/uuid"
)

// SiteClient defines the site operations used by the safety check
type SiteClient interface {
	GetDetailPage(ctx context.Context, code string) (string, error)
	Hide(ctx context.Context, code string) (steamgifts.HideOutcome, error)
}

// Store defines the database operations required by SafetyProcessor
type Store interface {
	GetSettings(ctx context.Context) (store.Settings, error)
	GetNextUncheckedGiveaway(ctx context.Context) (store.Giveaway, error)
	UpdateGiveawaySafety(ctx context.Context, id uuid.UUID, isSafe bool, score int) error
	TouchSafetyCheck(ctx context.Context, id uuid.UUID) error
	HideGiveaway(ctx context.Context, id uuid.UUID) error
	CreateActivityLog(ctx context.Context, params store.CreateActivityLogParams) (store.ActivityLog, error)
}

// EventSink receives automation events
type EventSink interface {
	Broadcast(ctx context.Context, kind string, payload any)
}
