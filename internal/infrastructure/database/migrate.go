package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		unique_id TEXT PRIMARY KEY,
		role TEXT NOT NULL CHECK (role IN ('master', 'student')),
		password_hash BLOB,
		first_name TEXT,
		last_name TEXT,
		date_of_birth TEXT,
		github_synced BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		profile_analytics TEXT NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS topics (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		difficulty_level TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id TEXT PRIMARY KEY,
		topic_id TEXT NOT NULL,
		question_text TEXT NOT NULL,
		option_a TEXT NOT NULL,
		option_b TEXT NOT NULL,
		option_c TEXT NOT NULL,
		option_d TEXT NOT NULL,
		correct_answer INTEGER NOT NULL CHECK (correct_answer IN (0, 1, 2, 3)),
		explanation TEXT,
		FOREIGN KEY (topic_id) REFERENCES topics (id)
	)`,
	`CREATE TABLE IF NOT EXISTS test_results (
		id TEXT PRIMARY KEY,
		student_id TEXT NOT NULL,
		topic_id TEXT NOT NULL,
		topic_title TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		score INTEGER NOT NULL,
		time_taken INTEGER,
		github_synced BOOLEAN NOT NULL DEFAULT FALSE,
		submitted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (student_id) REFERENCES users (unique_id),
		FOREIGN KEY (topic_id) REFERENCES topics (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_test_results_student ON test_results (student_id, submitted_at)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_topic ON questions (topic_id)`,
}

// Migrate creates the four application tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
