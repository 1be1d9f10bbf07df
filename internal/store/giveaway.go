package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const giveawayColumns = `id, code, url, catalog_item_id, display_name, points_cost, copies, end_time,
	discovered_at, entered_at, is_hidden, is_entered, is_wishlisted, is_won, won_at,
	is_safe, safety_score, last_safety_check_at, updated_at`

// CreateGiveawayParams represents parameters for recording a newly discovered giveaway
type CreateGiveawayParams struct {
	Code          string
	CatalogItemID *int64
	DisplayName   string
	PointsCost    int
	Copies        int
	EndTime       *time.Time
	IsWishlisted  bool
}

// UpdateGiveawayListingParams carries the mutable listing fields of a rescanned giveaway
type UpdateGiveawayListingParams struct {
	CatalogItemID *int64
	DisplayName   string
	PointsCost    int
	Copies        int
	EndTime       *time.Time
	IsWishlisted  bool
}

const sqlCreateGiveaway = `
INSERT INTO giveaways (code, url, catalog_item_id, display_name, points_cost, copies, end_time, is_wishlisted)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (code) DO NOTHING
RETURNING ` + giveawayColumns

// CreateGiveaway inserts a giveaway discovered by a scan. When another run inserted the same
// code first, the stored row is returned unchanged.
func (s *Store) CreateGiveaway(ctx context.Context, params CreateGiveawayParams) (Giveaway, error) {
	copies := params.Copies
	if copies < 1 {
		copies = 1
	}
	var g Giveaway
	err := s.db.GetContext(ctx, &g, sqlCreateGiveaway,
		params.Code,
		GiveawayURL(params.Code),
		params.CatalogItemID,
		params.DisplayName,
		params.PointsCost,
		copies,
		params.EndTime,
		params.IsWishlisted,
	)
	if isNoRows(err) {
		return s.GetGiveawayByCode(ctx, params.Code)
	}
	if err != nil {
		s.logger.Error(ctx, "failed to create giveaway", err)
		return Giveaway{}, fmt.Errorf("failed to create giveaway: %w", err)
	}
	return g, nil
}

const sqlGetGiveawayByCode = `SELECT ` + giveawayColumns + ` FROM giveaways WHERE code = $1`

// GetGiveawayByCode retrieves a giveaway by its site code
func (s *Store) GetGiveawayByCode(ctx context.Context, code string) (Giveaway, error) {
	var g Giveaway
	err := s.db.GetContext(ctx, &g, sqlGetGiveawayByCode, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Giveaway{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get giveaway by code", err)
		return Giveaway{}, fmt.Errorf("failed to get giveaway by code: %w", err)
	}
	return g, nil
}

const sqlGetGiveawaysByCodes = `SELECT ` + giveawayColumns + ` FROM giveaways WHERE code = ANY($1::text[])`

// GetGiveawaysByCodes retrieves every known giveaway among codes. Unknown codes are absent from the result.
func (s *Store) GetGiveawaysByCodes(ctx context.Context, codes []string) ([]Giveaway, error) {
	if len(codes) == 0 {
		return []Giveaway{}, nil
	}
	var giveaways []Giveaway
	err := s.db.SelectContext(ctx, &giveaways, sqlGetGiveawaysByCodes, pq.Array(codes))
	if err != nil {
		s.logger.Error(ctx, "failed to get giveaways by codes", err)
		return nil, fmt.Errorf("failed to get giveaways by codes: %w", err)
	}
	return giveaways, nil
}

// catalog_item_id is only ever filled in, never cleared; is_wishlisted is sticky for the same reason
const sqlUpdateGiveawayListing = `
UPDATE giveaways
SET catalog_item_id = COALESCE(catalog_item_id, $2),
	display_name = $3,
	points_cost = $4,
	copies = $5,
	end_time = COALESCE($6, end_time),
	is_wishlisted = is_wishlisted OR $7,
	updated_at = NOW()
WHERE id = $1
RETURNING ` + giveawayColumns

// UpdateGiveawayListing refreshes the listing fields of an existing giveaway. code and discovered_at never change.
func (s *Store) UpdateGiveawayListing(ctx context.Context, id uuid.UUID, params UpdateGiveawayListingParams) (Giveaway, error) {
	copies := params.Copies
	if copies < 1 {
		copies = 1
	}
	var g Giveaway
	err := s.db.GetContext(ctx, &g, sqlUpdateGiveawayListing,
		id,
		params.CatalogItemID,
		params.DisplayName,
		params.PointsCost,
		copies,
		params.EndTime,
		params.IsWishlisted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Giveaway{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update giveaway listing", err)
		return Giveaway{}, fmt.Errorf("failed to update giveaway listing: %w", err)
	}
	return g, nil
}

const sqlMarkGiveawayWon = `
UPDATE giveaways
SET is_won = TRUE, won_at = COALESCE(won_at, $2), updated_at = NOW()
WHERE id = $1
`

// MarkGiveawayWon flags a giveaway as won. The first won_at is kept.
func (s *Store) MarkGiveawayWon(ctx context.Context, id uuid.UUID, wonAt time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlMarkGiveawayWon, id, wonAt)
	if err != nil {
		s.logger.Error(ctx, "failed to mark giveaway won", err)
		return fmt.Errorf("failed to mark giveaway won: %w", err)
	}
	return requireAffected(res)
}

const sqlMarkGiveawayEntered = `
UPDATE giveaways
SET is_entered = TRUE, entered_at = $2, updated_at = NOW()
WHERE id = $1 AND is_entered = FALSE
`

const sqlInsertCompletedEntry = `
INSERT INTO entries (giveaway_id, points_spent, entry_type, status, entered_at)
VALUES ($1, $2, $3, 'success', $4)
`

// RecordExternalEntry marks a giveaway entered together with a successful manual entry.
// It is used for entries made outside the automation and is a no-op when already entered.
func (s *Store) RecordExternalEntry(ctx context.Context, giveawayID uuid.UUID, pointsSpent int, at time.Time) (bool, error) {
	recorded := false
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, sqlMarkGiveawayEntered, giveawayID, at)
		if err != nil {
			return fmt.Errorf("failed to mark giveaway entered: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if n == 0 {
			return nil
		}
		if _, err := tx.ExecContext(ctx, sqlInsertCompletedEntry, giveawayID, pointsSpent, EntryTypeManual, at); err != nil {
			return fmt.Errorf("failed to insert entry: %w", err)
		}
		recorded = true
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "failed to record external entry", err)
		return false, err
	}
	return recorded, nil
}

const sqlUpdateGiveawaySafety = `
UPDATE giveaways
SET is_safe = $2, safety_score = $3, last_safety_check_at = NOW(), updated_at = NOW()
WHERE id = $1
`

// UpdateGiveawaySafety stores the outcome of a safety check
func (s *Store) UpdateGiveawaySafety(ctx context.Context, id uuid.UUID, isSafe bool, score int) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateGiveawaySafety, id, isSafe, score)
	if err != nil {
		s.logger.Error(ctx, "failed to update giveaway safety", err)
		return fmt.Errorf("failed to update giveaway safety: %w", err)
	}
	return requireAffected(res)
}

const sqlTouchSafetyCheck = `UPDATE giveaways SET last_safety_check_at = NOW() WHERE id = $1`

// TouchSafetyCheck stamps an attempted check without recording a verdict
func (s *Store) TouchSafetyCheck(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlTouchSafetyCheck, id)
	if err != nil {
		s.logger.Error(ctx, "failed to touch safety check", err)
		return fmt.Errorf("failed to touch safety check: %w", err)
	}
	return requireAffected(res)
}

const sqlHideGiveaway = `UPDATE giveaways SET is_hidden = TRUE, updated_at = NOW() WHERE id = $1`

// HideGiveaway marks a giveaway hidden
func (s *Store) HideGiveaway(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlHideGiveaway, id)
	if err != nil {
		s.logger.Error(ctx, "failed to hide giveaway", err)
		return fmt.Errorf("failed to hide giveaway: %w", err)
	}
	return requireAffected(res)
}

const sqlGetNextUncheckedGiveaway = `
SELECT ` + giveawayColumns + `
FROM giveaways
WHERE is_safe IS NULL
	AND is_hidden = FALSE
	AND is_entered = FALSE
	AND (end_time IS NULL OR end_time > NOW())
ORDER BY last_safety_check_at NULLS FIRST, discovered_at
LIMIT 1
`

// GetNextUncheckedGiveaway returns the next active giveaway awaiting a safety check
func (s *Store) GetNextUncheckedGiveaway(ctx context.Context) (Giveaway, error) {
	var g Giveaway
	err := s.db.GetContext(ctx, &g, sqlGetNextUncheckedGiveaway)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Giveaway{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get next unchecked giveaway", err)
		return Giveaway{}, fmt.Errorf("failed to get next unchecked giveaway: %w", err)
	}
	return g, nil
}

const sqlListEntryCandidates = `
SELECT ` + giveawayColumns + `
FROM giveaways
WHERE is_hidden = FALSE
	AND is_entered = FALSE
	AND (is_safe IS NULL OR is_safe = TRUE)
	AND (end_time IS NULL OR end_time > NOW())
ORDER BY points_cost, code
`

// ListEntryCandidates returns giveaways that may still be entered, cheapest first
func (s *Store) ListEntryCandidates(ctx context.Context) ([]Giveaway, error) {
	var giveaways []Giveaway
	err := s.db.SelectContext(ctx, &giveaways, sqlListEntryCandidates)
	if err != nil {
		s.logger.Error(ctx, "failed to list entry candidates", err)
		return nil, fmt.Errorf("failed to list entry candidates: %w", err)
	}
	return giveaways, nil
}

const sqlGetNextExpiringEnteredGiveaway = `
SELECT ` + giveawayColumns + `
FROM giveaways
WHERE is_entered = TRUE
	AND is_won = FALSE
	AND end_time IS NOT NULL
	AND end_time > $1
ORDER BY end_time
LIMIT 1
`

// GetNextExpiringEnteredGiveaway returns the entered, not yet won giveaway ending soonest after the given instant
func (s *Store) GetNextExpiringEnteredGiveaway(ctx context.Context, after time.Time) (Giveaway, error) {
	var g Giveaway
	err := s.db.GetContext(ctx, &g, sqlGetNextExpiringEnteredGiveaway, after)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Giveaway{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get next expiring entered giveaway", err)
		return Giveaway{}, fmt.Errorf("failed to get next expiring entered giveaway: %w", err)
	}
	return g, nil
}

const sqlCountGiveaways = `
SELECT
	COUNT(*) AS total,
	COUNT(*) FILTER (WHERE end_time IS NULL OR end_time > NOW()) AS active,
	COUNT(*) FILTER (WHERE is_entered) AS entered,
	COUNT(*) FILTER (WHERE is_won) AS won,
	COUNT(*) FILTER (WHERE is_hidden) AS hidden,
	COUNT(*) FILTER (WHERE is_safe = FALSE) AS unsafe
FROM giveaways
`

// CountGiveaways aggregates giveaway totals for the stats surface
func (s *Store) CountGiveaways(ctx context.Context) (GiveawayCounts, error) {
	var counts GiveawayCounts
	if err := s.db.GetContext(ctx, &counts, sqlCountGiveaways); err != nil {
		s.logger.Error(ctx, "failed to count giveaways", err)
		return GiveawayCounts{}, fmt.Errorf("failed to count giveaways: %w", err)
	}
	return counts, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
