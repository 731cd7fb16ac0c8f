package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list can be re-applied on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		email      TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		password   TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_entries (
		owner_email TEXT NOT NULL REFERENCES users(email) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		weekday     TEXT NOT NULL,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_entries_owner ON schedule_entries(owner_email)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		session_key TEXT PRIMARY KEY,
		activity_id TEXT NOT NULL,
		owner_email TEXT NOT NULL,
		subject     TEXT NOT NULL DEFAULT '',
		weekday     TEXT NOT NULL DEFAULT '',
		date        TEXT NOT NULL,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'OPEN'
		            CHECK(status IN ('OPEN','CLOSED')),
		duration    TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_owner_status ON sessions(owner_email, status)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_owner_activity ON sessions(owner_email, activity_id)`,
}
