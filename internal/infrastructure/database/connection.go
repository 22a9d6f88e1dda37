package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/eslsoft/prepnet/internal/infrastructure/config"
	_ "github.com/mattn/go-sqlite3"
)

// Open constructs the application's SQLite handle with an explicit close
// lifecycle. The single handle is shared by every repository; SQLite provides
// the necessary isolation for the short independent statements we run.
func Open(cfg *config.Config) (*sql.DB, func(), error) {
	db, err := sql.Open("sqlite3", cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
	}

	if cfg.Database.LogSQL {
		log.Printf("sqlite store opened at %s", cfg.Database.Path)
	}

	return db, func() { _ = db.Close() }, nil
}
