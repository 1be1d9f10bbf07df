package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const gameColumns = `id, name, type, release_date, review_score, total_positive, total_negative, total_reviews, last_refreshed_at`

const sqlGetGame = `SELECT ` + gameColumns + ` FROM games WHERE id = $1`

// GetGame returns the cached catalog row for id
func (s *Store) GetGame(ctx context.Context, id int64) (Game, error) {
	var g Game
	if err := s.db.GetContext(ctx, &g, sqlGetGame, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Game{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get game", err)
		return Game{}, fmt.Errorf("failed to get game: %w", err)
	}
	return g, nil
}

const sqlUpsertGame = `
INSERT INTO games (id, name, type, release_date, review_score, total_positive, total_negative, total_reviews, last_refreshed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	type = EXCLUDED.type,
	release_date = EXCLUDED.release_date,
	review_score = EXCLUDED.review_score,
	total_positive = EXCLUDED.total_positive,
	total_negative = EXCLUDED.total_negative,
	total_reviews = EXCLUDED.total_reviews,
	last_refreshed_at = EXCLUDED.last_refreshed_at
RETURNING ` + gameColumns

// UpsertGame writes a freshly fetched catalog row
func (s *Store) UpsertGame(ctx context.Context, game Game) (Game, error) {
	var g Game
	err := s.db.GetContext(ctx, &g, sqlUpsertGame,
		game.ID,
		game.Name,
		game.Type,
		game.ReleaseDate,
		game.ReviewScore,
		game.TotalPositive,
		game.TotalNegative,
		game.TotalReviews,
		game.LastRefreshedAt,
	)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert game", err)
		return Game{}, fmt.Errorf("failed to upsert game: %w", err)
	}
	return g, nil
}

const sqlListStaleGames = `
SELECT ` + gameColumns + `
FROM games
WHERE last_refreshed_at < $1
ORDER BY last_refreshed_at
LIMIT $2
`

// ListStaleGames returns up to limit rows refreshed before cutoff, oldest first
func (s *Store) ListStaleGames(ctx context.Context, cutoff time.Time, limit int) ([]Game, error) {
	games := []Game{}
	if err := s.db.SelectContext(ctx, &games, sqlListStaleGames, cutoff, limit); err != nil {
		s.logger.Error(ctx, "failed to list stale games", err)
		return nil, fmt.Errorf("failed to list stale games: %w", err)
	}
	return games, nil
}
