//go:build integration

package store

import (
	"fmt"
	"os"
	"testing"

	"autojoin-server/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a migrated test database
type TestDB struct {
	db     *sqlx.DB
	logger *observability.Logger
	Store  *Store
}

// SetupTestDB connects to the PostgreSQL instance described by TEST_DB_* and applies the embedded migrations
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbHost := getTestEnv("TEST_DB_HOST", "localhost")
	dbPort := getTestEnv("TEST_DB_PORT", "5432")
	dbUser := getTestEnv("TEST_DB_USER", "autojoin")
	dbPass := getTestEnv("TEST_DB_PASSWORD", "autojoin")
	dbName := getTestEnv("TEST_DB_NAME", "autojoin_test")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPass, dbHost, dbPort, dbName)

	logger := observability.NewNopLogger()
	store, err := New(connStr, logger)
	if err != nil {
		t.Fatalf("failed to setup test database: %v", err)
	}
	if err := store.Migrate(); err != nil {
		store.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	tdb := &TestDB{db: store.DB(), logger: logger, Store: store}
	tdb.Truncate(t)
	return tdb
}

func getTestEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()
	_, err := tdb.db.Exec(`TRUNCATE entries, giveaways, activity_logs, games, settings, scheduler_state CASCADE`)
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	tdb.db.Close()
}
