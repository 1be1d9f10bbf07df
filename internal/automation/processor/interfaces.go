package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	entries "autojoin-server/internal/entries/processor"
	scanner "autojoin-server/internal/scanner/processor"
	"autojoin-server/internal/store"
)

// Scanner refreshes the local giveaway table from the site
type Scanner interface {
	Scan(ctx context.Context, pages int) (scanner.ScanResult, error)
	ScanWishlist(ctx context.Context, pages int) (scanner.ScanResult, error)
	ScanDLC(ctx context.Context, pages int) (scanner.ScanResult, error)
	SyncWins(ctx context.Context, pages int) (int, error)
	SyncEntered(ctx context.Context, pages int) (int, error)
}

// EntryEngine spends points on eligible candidates
type EntryEngine interface {
	SelectAndEnter(ctx context.Context, candidates []store.Giveaway, settings store.Settings, points int) (entries.Result, error)
}

// BalanceReader reads the account's points
type BalanceReader interface {
	GetBalance(ctx context.Context) (int, error)
}

// Store defines the database operations required by AutomationProcessor
type Store interface {
	GetSettings(ctx context.Context) (store.Settings, error)
	ListEntryCandidates(ctx context.Context) ([]store.Giveaway, error)
	RecordCycleSuccess(ctx context.Context, entered int, at time.Time) error
	IncrementSchedulerErrors(ctx context.Context) error
	TouchSettingsSynced(ctx context.Context, at time.Time) error
	CreateActivityLog(ctx context.Context, params store.CreateActivityLogParams) (store.ActivityLog, error)
}

// EventSink receives automation events
type EventSink interface {
	Broadcast(ctx context.Context, kind string, payload any)
}

// WinCheckScheduler moves the win check to the soonest entered giveaway's end
type WinCheckScheduler interface {
	ScheduleWinCheck(ctx context.Context) error
}
