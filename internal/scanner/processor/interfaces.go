package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"autojoin-server/internal/clients/steamgifts"
	"autojoin-server/internal/store"

	"github.com/google/uuid"
)

// SiteClient defines the listing pages the scanner reads
type SiteClient interface {
	ListGiveaways(ctx context.Context, page int, filter steamgifts.Filter) ([]steamgifts.Listing, error)
	ListWon(ctx context.Context, page int) ([]steamgifts.Listing, error)
	ListEntered(ctx context.Context, page int) ([]steamgifts.Listing, error)
}

// Store defines the database operations required by ScannerProcessor
type Store interface {
	GetGiveawaysByCodes(ctx context.Context, codes []string) ([]store.Giveaway, error)
	CreateGiveaway(ctx context.Context, params store.CreateGiveawayParams) (store.Giveaway, error)
	UpdateGiveawayListing(ctx context.Context, id uuid.UUID, params store.UpdateGiveawayListingParams) (store.Giveaway, error)
	MarkGiveawayWon(ctx context.Context, id uuid.UUID, wonAt time.Time) error
	RecordExternalEntry(ctx context.Context, giveawayID uuid.UUID, pointsSpent int, at time.Time) (bool, error)
}

// GameInfoProvider resolves catalog metadata for newly discovered giveaways
type GameInfoProvider interface {
	Resolve(ctx context.Context, id int64) (store.Game, error)
}
