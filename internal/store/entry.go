package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrEntryNotPending is returned when completing an entry that already left the pending state
var ErrEntryNotPending = errors.New("entry is not pending")

const entryColumns = `id, giveaway_id, points_spent, entry_type, status, entered_at, error_message`

const sqlCreatePendingEntry = `
INSERT INTO entries (giveaway_id, points_spent, entry_type, status)
VALUES ($1, $2, $3, 'pending')
RETURNING ` + entryColumns

// CreatePendingEntry records an attempt before it is submitted to the site
func (s *Store) CreatePendingEntry(ctx context.Context, giveawayID uuid.UUID, pointsSpent int, entryType string) (Entry, error) {
	var e Entry
	err := s.db.GetContext(ctx, &e, sqlCreatePendingEntry, giveawayID, pointsSpent, entryType)
	if err != nil {
		s.logger.Error(ctx, "failed to create pending entry", err)
		return Entry{}, fmt.Errorf("failed to create pending entry: %w", err)
	}
	return e, nil
}

const sqlCompleteEntrySuccess = `
UPDATE entries SET status = 'success', entered_at = $2
WHERE id = $1 AND status = 'pending'
RETURNING giveaway_id
`

const sqlSetGiveawayEntered = `
UPDATE giveaways SET is_entered = TRUE, entered_at = $2, updated_at = NOW()
WHERE id = $1
`

// CompleteEntrySuccess moves a pending entry to success and marks its giveaway entered in one transaction
func (s *Store) CompleteEntrySuccess(ctx context.Context, entryID uuid.UUID, at time.Time) error {
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		var giveawayID uuid.UUID
		if err := tx.GetContext(ctx, &giveawayID, sqlCompleteEntrySuccess, entryID, at); err != nil {
			if isNoRows(err) {
				return ErrEntryNotPending
			}
			return fmt.Errorf("failed to complete entry: %w", err)
		}
		if _, err := tx.ExecContext(ctx, sqlSetGiveawayEntered, giveawayID, at); err != nil {
			return fmt.Errorf("failed to mark giveaway entered: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "failed to complete entry as success", err)
		return err
	}
	return nil
}

const sqlCompleteEntryFailure = `
UPDATE entries SET status = 'failed', error_message = $2, points_spent = 0
WHERE id = $1 AND status = 'pending'
`

// CompleteEntryFailure moves a pending entry to failed with the site's message. A failed entry spent nothing.
func (s *Store) CompleteEntryFailure(ctx context.Context, entryID uuid.UUID, message string) error {
	res, err := s.db.ExecContext(ctx, sqlCompleteEntryFailure, entryID, message)
	if err != nil {
		s.logger.Error(ctx, "failed to complete entry as failure", err)
		return fmt.Errorf("failed to complete entry as failure: %w", err)
	}
	if err := requireAffected(res); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrEntryNotPending
		}
		return err
	}
	return nil
}

const sqlCountEntriesByStatus = `SELECT status AS key, COUNT(*) AS count FROM entries GROUP BY status`

// CountEntriesByStatus returns the number of entries per status
func (s *Store) CountEntriesByStatus(ctx context.Context) (map[string]int, error) {
	var rows []countRow
	if err := s.db.SelectContext(ctx, &rows, sqlCountEntriesByStatus); err != nil {
		s.logger.Error(ctx, "failed to count entries by status", err)
		return nil, fmt.Errorf("failed to count entries by status: %w", err)
	}
	return countsToMap(rows), nil
}
