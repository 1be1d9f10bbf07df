package catalog

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=catalog

import (
	"context"
	"time"

	"autojoin-server/internal/clients/steamstore"
	"autojoin-server/internal/store"
)

// Store defines the database operations required by the catalog Service
type Store interface {
	GetGame(ctx context.Context, id int64) (store.Game, error)
	UpsertGame(ctx context.Context, game store.Game) (store.Game, error)
	ListStaleGames(ctx context.Context, cutoff time.Time, limit int) ([]store.Game, error)
}

// StoreAPI is the remote catalog the Service refreshes from
type StoreAPI interface {
	AppDetails(ctx context.Context, appID int64) (steamstore.AppDetails, error)
	ReviewSummary(ctx context.Context, appID int64) (steamstore.ReviewSummary, error)
}

// Cache is the read-through layer in front of the database
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
