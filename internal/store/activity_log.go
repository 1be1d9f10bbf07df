package store

import (
	"context"
	"fmt"
)

// CreateActivityLogParams represents parameters for appending an activity log line
type CreateActivityLogParams struct {
	Level     string
	EventType string
	Message   string
	Details   JSONB
}

const activityLogColumns = `id, level, event_type, message, details, created_at`

const sqlCreateActivityLog = `
INSERT INTO activity_logs (level, event_type, message, details)
VALUES ($1, $2, $3, $4)
RETURNING ` + activityLogColumns

// CreateActivityLog appends an operator-facing log line
func (s *Store) CreateActivityLog(ctx context.Context, params CreateActivityLogParams) (ActivityLog, error) {
	var log ActivityLog
	err := s.db.GetContext(ctx, &log, sqlCreateActivityLog, params.Level, params.EventType, params.Message, params.Details)
	if err != nil {
		s.logger.Error(ctx, "failed to create activity log", err)
		return ActivityLog{}, fmt.Errorf("failed to create activity log: %w", err)
	}
	return log, nil
}

const sqlListRecentActivityLogs = `
SELECT ` + activityLogColumns + `
FROM activity_logs
ORDER BY created_at DESC
LIMIT $1
`

// ListRecentActivityLogs returns the newest limit log lines, newest first
func (s *Store) ListRecentActivityLogs(ctx context.Context, limit int) ([]ActivityLog, error) {
	logs := []ActivityLog{}
	if err := s.db.SelectContext(ctx, &logs, sqlListRecentActivityLogs, limit); err != nil {
		s.logger.Error(ctx, "failed to list activity logs", err)
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	return logs, nil
}

const sqlCountActivityLogsByLevel = `SELECT level AS key, COUNT(*) AS count FROM activity_logs GROUP BY level`

// CountActivityLogsByLevel returns the number of log lines per level
func (s *Store) CountActivityLogsByLevel(ctx context.Context) (map[string]int, error) {
	var rows []countRow
	if err := s.db.SelectContext(ctx, &rows, sqlCountActivityLogsByLevel); err != nil {
		s.logger.Error(ctx, "failed to count activity logs by level", err)
		return nil, fmt.Errorf("failed to count activity logs by level: %w", err)
	}
	return countsToMap(rows), nil
}

const sqlCountActivityLogsByEventType = `SELECT event_type AS key, COUNT(*) AS count FROM activity_logs GROUP BY event_type`

// CountActivityLogsByEventType returns the number of log lines per event type
func (s *Store) CountActivityLogsByEventType(ctx context.Context) (map[string]int, error) {
	var rows []countRow
	if err := s.db.SelectContext(ctx, &rows, sqlCountActivityLogsByEventType); err != nil {
		s.logger.Error(ctx, "failed to count activity logs by event type", err)
		return nil, fmt.Errorf("failed to count activity logs by event type: %w", err)
	}
	return countsToMap(rows), nil
}

const sqlClearActivityLogs = `DELETE FROM activity_logs`

// ClearActivityLogs deletes every log line and reports how many were removed
func (s *Store) ClearActivityLogs(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlClearActivityLogs)
	if err != nil {
		s.logger.Error(ctx, "failed to clear activity logs", err)
		return 0, fmt.Errorf("failed to clear activity logs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}
