package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"autojoin-server/internal/clients/steamstore"
	"autojoin-server/internal/config"
	"autojoin-server/internal/observability"
	"autojoin-server/internal/store"
)

// ErrNotFound means the catalog item could not be resolved locally or remotely
var ErrNotFound = errors.New("catalog item unresolved")

// Service resolves catalog metadata through cache, database and the remote store, in that order
type Service struct {
	store      Store
	api        StoreAPI
	cache      Cache
	staleAfter time.Duration
	cacheTTL   time.Duration
	logger     *observability.Logger
	now        func() time.Time
}

func New(store Store, api StoreAPI, cache Cache, cfg config.CatalogConfig, logger *observability.Logger) *Service {
	return &Service{
		store:      store,
		api:        api,
		cache:      cache,
		staleAfter: cfg.StaleAfter,
		cacheTTL:   cfg.CacheTTL,
		logger:     logger,
		now:        time.Now,
	}
}

func cacheKey(id int64) string {
	return "game:" + strconv.FormatInt(id, 10)
}

// Resolve returns fresh metadata for a catalog item. A stale row is served when the remote store fails.
func (s *Service) Resolve(ctx context.Context, id int64) (store.Game, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "catalog_item_id", Value: id})

	var cached store.Game
	if err := s.cache.GetJSON(ctx, cacheKey(id), &cached); err == nil && !cached.IsStale(s.now(), s.staleAfter) {
		return cached, nil
	}

	existing, err := s.store.GetGame(ctx, id)
	hasRow := err == nil
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return store.Game{}, fmt.Errorf("failed to get game: %w", err)
	}
	if hasRow && !existing.IsStale(s.now(), s.staleAfter) {
		s.remember(ctx, existing)
		return existing, nil
	}

	game, err := s.refresh(ctx, id)
	if err != nil {
		if hasRow {
			s.logger.WarnWithError(ctx, "serving stale catalog row", err)
			return existing, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return store.Game{}, err
		}
		return store.Game{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return game, nil
}

// RefreshStale re-fetches up to limit rows older than the staleness window, oldest first.
// Individual failures are logged and skipped.
func (s *Service) RefreshStale(ctx context.Context, limit int) (int, error) {
	stale, err := s.store.ListStaleGames(ctx, s.now().Add(-s.staleAfter), limit)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale games: %w", err)
	}

	refreshed := 0
	for _, g := range stale {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}
		if _, err := s.refresh(ctx, g.ID); err != nil {
			gctx := observability.WithFields(ctx, observability.Field{Key: "catalog_item_id", Value: g.ID})
			s.logger.WarnWithError(gctx, "failed to refresh catalog row", err)
			continue
		}
		refreshed++
	}
	return refreshed, nil
}

func (s *Service) refresh(ctx context.Context, id int64) (store.Game, error) {
	details, err := s.api.AppDetails(ctx, id)
	if err != nil {
		return store.Game{}, err
	}

	game := store.Game{
		ID:              id,
		Name:            details.Name,
		Type:            gameType(details.Type),
		ReleaseDate:     details.ReleaseDate,
		LastRefreshedAt: s.now().UTC(),
	}

	// review data only matters for base games
	if game.Type == store.GameTypeGame {
		reviews, err := s.api.ReviewSummary(ctx, id)
		switch {
		case err == nil:
			score := min(max(reviews.Score, 0), 10)
			game.ReviewScore = &score
			game.TotalPositive = &reviews.Positive
			game.TotalNegative = &reviews.Negative
			game.TotalReviews = &reviews.Total
		case errors.Is(err, steamstore.ErrNotFound):
		default:
			return store.Game{}, err
		}
	}

	saved, err := s.store.UpsertGame(ctx, game)
	if err != nil {
		return store.Game{}, err
	}
	s.remember(ctx, saved)
	return saved, nil
}

func (s *Service) remember(ctx context.Context, game store.Game) {
	if err := s.cache.SetJSON(ctx, cacheKey(game.ID), game, s.cacheTTL); err != nil {
		s.logger.WarnWithError(ctx, "failed to cache catalog row", err)
	}
}

func gameType(raw string) string {
	switch raw {
	case "dlc":
		return store.GameTypeDLC
	case "bundle", "package":
		return store.GameTypeBundle
	default:
		return store.GameTypeGame
	}
}
