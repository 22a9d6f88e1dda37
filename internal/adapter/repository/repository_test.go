package repository_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/eslsoft/prepnet/internal/infrastructure/database"
)

// newTestDB opens a fresh in-memory database with the schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// newSeededDB additionally loads the default curriculum and accounts.
func newSeededDB(t *testing.T) *sql.DB {
	t.Helper()

	db := newTestDB(t)
	if err := database.Seed(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}
