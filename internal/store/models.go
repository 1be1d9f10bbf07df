package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// Giveaway is one listing discovered on the site
type Giveaway struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	Code              string     `db:"code" json:"code"`
	URL               string     `db:"url" json:"url"`
	CatalogItemID     *int64     `db:"catalog_item_id" json:"catalog_item_id,omitempty"`
	DisplayName       string     `db:"display_name" json:"display_name"`
	PointsCost        int        `db:"points_cost" json:"points_cost"`
	Copies            int        `db:"copies" json:"copies"`
	EndTime           *time.Time `db:"end_time" json:"end_time,omitempty"`
	DiscoveredAt      time.Time  `db:"discovered_at" json:"discovered_at"`
	EnteredAt         *time.Time `db:"entered_at" json:"entered_at,omitempty"`
	IsHidden          bool       `db:"is_hidden" json:"is_hidden"`
	IsEntered         bool       `db:"is_entered" json:"is_entered"`
	IsWishlisted      bool       `db:"is_wishlisted" json:"is_wishlisted"`
	IsWon             bool       `db:"is_won" json:"is_won"`
	WonAt             *time.Time `db:"won_at" json:"won_at,omitempty"`
	IsSafe            *bool      `db:"is_safe" json:"is_safe,omitempty"`
	SafetyScore       *int       `db:"safety_score" json:"safety_score,omitempty"`
	LastSafetyCheckAt *time.Time `db:"last_safety_check_at" json:"last_safety_check_at,omitempty"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// IsActive reports whether the giveaway is still open at now. Unknown end time counts as open.
func (g Giveaway) IsActive(now time.Time) bool {
	return g.EndTime == nil || now.Before(*g.EndTime)
}

// KnownUnsafe reports whether a safety check classified the giveaway as unsafe.
func (g Giveaway) KnownUnsafe() bool {
	return g.IsSafe != nil && !*g.IsSafe
}

// GiveawayURL builds the canonical detail page URL for a code.
func GiveawayURL(code string) string {
	return fmt.Sprintf("https://www.steamgifts.com/giveaway/%s/", code)
}

// Entry is one attempt to spend points on a giveaway
type Entry struct {
	ID           uuid.UUID `db:"id" json:"id"`
	GiveawayID   uuid.UUID `db:"giveaway_id" json:"giveaway_id"`
	PointsSpent  int       `db:"points_spent" json:"points_spent"`
	EntryType    string    `db:"entry_type" json:"entry_type"`
	Status       string    `db:"status" json:"status"`
	EnteredAt    time.Time `db:"entered_at" json:"entered_at"`
	ErrorMessage *string   `db:"error_message" json:"error_message,omitempty"`
}

// Settings is the singleton operator policy row
type Settings struct {
	ID                   int        `db:"id" json:"-"`
	PHPSessID            *string    `db:"phpsessid" json:"-"`
	UserAgent            string     `db:"user_agent" json:"user_agent" validate:"required"`
	XSRFToken            *string    `db:"xsrf_token" json:"-"`
	AutomationEnabled    bool       `db:"automation_enabled" json:"automation_enabled"`
	AutojoinEnabled      bool       `db:"autojoin_enabled" json:"autojoin_enabled"`
	SafetyCheckEnabled   bool       `db:"safety_check_enabled" json:"safety_check_enabled"`
	AutoHideUnsafe       bool       `db:"auto_hide_unsafe" json:"auto_hide_unsafe"`
	SafetyErrorPolicy    string     `db:"safety_error_policy" json:"safety_error_policy" validate:"oneof=mark_safe retry"`
	AutojoinStartAt      int        `db:"autojoin_start_at" json:"autojoin_start_at" validate:"gte=0"`
	AutojoinStopAt       int        `db:"autojoin_stop_at" json:"autojoin_stop_at" validate:"gte=0,ltefield=AutojoinStartAt"`
	MinPrice             int        `db:"min_price" json:"min_price" validate:"gte=0"`
	MinScore             int        `db:"min_score" json:"min_score" validate:"gte=0,lte=10"`
	MinReviews           int        `db:"min_reviews" json:"min_reviews" validate:"gte=0"`
	MaxGameAgeYears      *int       `db:"max_game_age_years" json:"max_game_age_years,omitempty" validate:"omitempty,gte=1"`
	DLCEnabled           bool       `db:"dlc_enabled" json:"dlc_enabled"`
	ScanIntervalMinutes  int        `db:"scan_interval_minutes" json:"scan_interval_minutes" validate:"gte=1,lte=1440"`
	MaxScanPages         int        `db:"max_scan_pages" json:"max_scan_pages" validate:"gte=1,lte=50"`
	MaxEntriesPerCycle   *int       `db:"max_entries_per_cycle" json:"max_entries_per_cycle,omitempty" validate:"omitempty,gte=1"`
	EntryDelayMinSeconds int        `db:"entry_delay_min_seconds" json:"entry_delay_min_seconds" validate:"gte=0"`
	EntryDelayMaxSeconds int        `db:"entry_delay_max_seconds" json:"entry_delay_max_seconds" validate:"gtefield=EntryDelayMinSeconds"`
	LastSyncedAt         *time.Time `db:"last_synced_at" json:"last_synced_at,omitempty"`
	UpdatedAt            time.Time  `db:"updated_at" json:"updated_at"`
}

// HasSession reports whether session material is configured.
func (s Settings) HasSession() bool {
	return s.PHPSessID != nil && *s.PHPSessID != ""
}

// SchedulerState is the singleton row of automation counters
type SchedulerState struct {
	ID           int        `db:"id" json:"-"`
	LastScanAt   *time.Time `db:"last_scan_at" json:"last_scan_at,omitempty"`
	NextScanAt   *time.Time `db:"next_scan_at" json:"next_scan_at,omitempty"`
	TotalScans   int        `db:"total_scans" json:"total_scans"`
	TotalEntries int        `db:"total_entries" json:"total_entries"`
	TotalErrors  int        `db:"total_errors" json:"total_errors"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// ActivityLog is an append-only operator-facing log line
type ActivityLog struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Level     string    `db:"level" json:"level"`
	EventType string    `db:"event_type" json:"event_type"`
	Message   string    `db:"message" json:"message"`
	Details   JSONB     `db:"details" json:"details,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Game is cached catalog metadata for one catalog item
type Game struct {
	ID              int64      `db:"id" json:"id"`
	Name            string     `db:"name" json:"name"`
	Type            string     `db:"type" json:"type"`
	ReleaseDate     *time.Time `db:"release_date" json:"release_date,omitempty"`
	ReviewScore     *int       `db:"review_score" json:"review_score,omitempty"`
	TotalPositive   *int       `db:"total_positive" json:"total_positive,omitempty"`
	TotalNegative   *int       `db:"total_negative" json:"total_negative,omitempty"`
	TotalReviews    *int       `db:"total_reviews" json:"total_reviews,omitempty"`
	LastRefreshedAt time.Time  `db:"last_refreshed_at" json:"last_refreshed_at"`
}

// IsStale reports whether the row is older than maxAge at now.
func (g Game) IsStale(now time.Time, maxAge time.Duration) bool {
	return now.Sub(g.LastRefreshedAt) > maxAge
}

// GiveawayCounts aggregates the giveaway table for the stats surface
type GiveawayCounts struct {
	Total   int `db:"total" json:"total"`
	Active  int `db:"active" json:"active"`
	Entered int `db:"entered" json:"entered"`
	Won     int `db:"won" json:"won"`
	Hidden  int `db:"hidden" json:"hidden"`
	Unsafe  int `db:"unsafe" json:"unsafe"`
}

type countRow struct {
	Key   string `db:"key"`
	Count int    `db:"count"`
}

func countsToMap(rows []countRow) map[string]int {
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Count
	}
	return out
}
