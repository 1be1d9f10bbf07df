package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var _ Storer = (*Store)(nil)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	DB() *sqlx.DB
	Migrate() error
	Close() error

	// Giveaway operations
	CreateGiveaway(ctx context.Context, params CreateGiveawayParams) (Giveaway, error)
	GetGiveawayByCode(ctx context.Context, code string) (Giveaway, error)
	GetGiveawaysByCodes(ctx context.Context, codes []string) ([]Giveaway, error)
	UpdateGiveawayListing(ctx context.Context, id uuid.UUID, params UpdateGiveawayListingParams) (Giveaway, error)
	MarkGiveawayWon(ctx context.Context, id uuid.UUID, wonAt time.Time) error
	RecordExternalEntry(ctx context.Context, giveawayID uuid.UUID, pointsSpent int, at time.Time) (bool, error)
	UpdateGiveawaySafety(ctx context.Context, id uuid.UUID, isSafe bool, score int) error
	TouchSafetyCheck(ctx context.Context, id uuid.UUID) error
	HideGiveaway(ctx context.Context, id uuid.UUID) error
	GetNextUncheckedGiveaway(ctx context.Context) (Giveaway, error)
	ListEntryCandidates(ctx context.Context) ([]Giveaway, error)
	GetNextExpiringEnteredGiveaway(ctx context.Context, after time.Time) (Giveaway, error)
	CountGiveaways(ctx context.Context) (GiveawayCounts, error)

	// Entry operations
	CreatePendingEntry(ctx context.Context, giveawayID uuid.UUID, pointsSpent int, entryType string) (Entry, error)
	CompleteEntrySuccess(ctx context.Context, entryID uuid.UUID, at time.Time) error
	CompleteEntryFailure(ctx context.Context, entryID uuid.UUID, message string) error
	CountEntriesByStatus(ctx context.Context) (map[string]int, error)

	// Game catalog operations
	GetGame(ctx context.Context, id int64) (Game, error)
	UpsertGame(ctx context.Context, game Game) (Game, error)
	ListStaleGames(ctx context.Context, cutoff time.Time, limit int) ([]Game, error)

	// Settings operations
	GetSettings(ctx context.Context) (Settings, error)
	UpdateSettings(ctx context.Context, params UpdateSettingsParams) (Settings, error)
	TouchSettingsSynced(ctx context.Context, at time.Time) error

	// Scheduler state operations
	GetSchedulerState(ctx context.Context) (SchedulerState, error)
	RecordCycleSuccess(ctx context.Context, entered int, at time.Time) error
	IncrementSchedulerErrors(ctx context.Context) error
	UpdateNextScanAt(ctx context.Context, at *time.Time) error
	ResetSchedulerStats(ctx context.Context) (SchedulerState, error)

	// Activity log operations
	CreateActivityLog(ctx context.Context, params CreateActivityLogParams) (ActivityLog, error)
	ListRecentActivityLogs(ctx context.Context, limit int) ([]ActivityLog, error)
	CountActivityLogsByLevel(ctx context.Context) (map[string]int, error)
	CountActivityLogsByEventType(ctx context.Context) (map[string]int, error)
	ClearActivityLogs(ctx context.Context) (int64, error)
}
