package store

import (
	"context"
	"fmt"
	"time"
)

const schedulerStateColumns = `id, last_scan_at, next_scan_at, total_scans, total_entries, total_errors, updated_at`

const sqlGetSchedulerState = `
INSERT INTO scheduler_state (id) VALUES (1)
ON CONFLICT (id) DO UPDATE SET id = scheduler_state.id
RETURNING ` + schedulerStateColumns

// GetSchedulerState returns the singleton scheduler counters, creating the row on first use
func (s *Store) GetSchedulerState(ctx context.Context) (SchedulerState, error) {
	var state SchedulerState
	if err := s.db.GetContext(ctx, &state, sqlGetSchedulerState); err != nil {
		s.logger.Error(ctx, "failed to get scheduler state", err)
		return SchedulerState{}, fmt.Errorf("failed to get scheduler state: %w", err)
	}
	return state, nil
}

const sqlRecordCycleSuccess = `
INSERT INTO scheduler_state (id, last_scan_at, total_scans, total_entries)
VALUES (1, $1, 1, $2)
ON CONFLICT (id) DO UPDATE SET
	last_scan_at = EXCLUDED.last_scan_at,
	total_scans = scheduler_state.total_scans + 1,
	total_entries = scheduler_state.total_entries + EXCLUDED.total_entries,
	updated_at = NOW()
`

// RecordCycleSuccess counts a completed automation cycle and its successful entries
func (s *Store) RecordCycleSuccess(ctx context.Context, entered int, at time.Time) error {
	if _, err := s.db.ExecContext(ctx, sqlRecordCycleSuccess, at, entered); err != nil {
		s.logger.Error(ctx, "failed to record cycle success", err)
		return fmt.Errorf("failed to record cycle success: %w", err)
	}
	return nil
}

const sqlIncrementSchedulerErrors = `
INSERT INTO scheduler_state (id, total_errors) VALUES (1, 1)
ON CONFLICT (id) DO UPDATE SET total_errors = scheduler_state.total_errors + 1, updated_at = NOW()
`

// IncrementSchedulerErrors counts a failed automation cycle
func (s *Store) IncrementSchedulerErrors(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqlIncrementSchedulerErrors); err != nil {
		s.logger.Error(ctx, "failed to increment scheduler errors", err)
		return fmt.Errorf("failed to increment scheduler errors: %w", err)
	}
	return nil
}

const sqlUpdateNextScanAt = `
INSERT INTO scheduler_state (id, next_scan_at) VALUES (1, $1)
ON CONFLICT (id) DO UPDATE SET next_scan_at = EXCLUDED.next_scan_at, updated_at = NOW()
`

// UpdateNextScanAt persists when the automation cycle fires next. A nil time clears it.
func (s *Store) UpdateNextScanAt(ctx context.Context, at *time.Time) error {
	if _, err := s.db.ExecContext(ctx, sqlUpdateNextScanAt, at); err != nil {
		s.logger.Error(ctx, "failed to update next scan time", err)
		return fmt.Errorf("failed to update next scan time: %w", err)
	}
	return nil
}

const sqlResetSchedulerStats = `
INSERT INTO scheduler_state (id) VALUES (1)
ON CONFLICT (id) DO UPDATE SET
	total_scans = 0,
	total_entries = 0,
	total_errors = 0,
	last_scan_at = NULL,
	updated_at = NOW()
RETURNING ` + schedulerStateColumns

// ResetSchedulerStats zeroes the counters and returns the fresh row
func (s *Store) ResetSchedulerStats(ctx context.Context) (SchedulerState, error) {
	var state SchedulerState
	if err := s.db.GetContext(ctx, &state, sqlResetSchedulerStats); err != nil {
		s.logger.Error(ctx, "failed to reset scheduler stats", err)
		return SchedulerState{}, fmt.Errorf("failed to reset scheduler stats: %w", err)
	}
	return state, nil
}
