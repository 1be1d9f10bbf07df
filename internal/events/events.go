package events

import (
	"time"
)

// Event kinds pushed to dashboard clients and the event topic
const (
	KindScanProgress   = "scan_progress"
	KindScanCompleted  = "scan_completed"
	KindScanFailed     = "scan_failed"
	KindEntrySuccess   = "entry_success"
	KindEntryFailure   = "entry_failure"
	KindSessionInvalid = "session_invalid"
	KindStatsUpdate    = "stats_update"
	KindCycleCompleted = "cycle_completed"
	KindCycleFailed    = "cycle_failed"
)

// Event is the envelope every kind is delivered in
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}
