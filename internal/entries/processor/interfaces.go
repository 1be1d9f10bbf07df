package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"autojoin-server/internal/clients/steamgifts"
	"autojoin-server/internal/store"

	"github.com/google/uuid"
)

// SiteClient submits entries
type SiteClient interface {
	SubmitEntry(ctx context.Context, code string) (steamgifts.EntryOutcome, error)
}

// Store defines the database operations required by EntryProcessor
type Store interface {
	GetSettings(ctx context.Context) (store.Settings, error)
	GetGiveawayByCode(ctx context.Context, code string) (store.Giveaway, error)
	CreatePendingEntry(ctx context.Context, giveawayID uuid.UUID, pointsSpent int, entryType string) (store.Entry, error)
	CompleteEntrySuccess(ctx context.Context, entryID uuid.UUID, at time.Time) error
	CompleteEntryFailure(ctx context.Context, entryID uuid.UUID, message string) error
	CreateActivityLog(ctx context.Context, params store.CreateActivityLogParams) (store.ActivityLog, error)
}

// GameInfoProvider resolves catalog metadata for eligibility filters
type GameInfoProvider interface {
	Resolve(ctx context.Context, id int64) (store.Game, error)
}

// EventSink receives automation events
type EventSink interface {
	Broadcast(ctx context.Context, kind string, payload any)
}
