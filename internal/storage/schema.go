package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			quadrant TEXT NOT NULL,

			due_date DATETIME,
			created_at DATETIME NOT NULL,

			completed INTEGER DEFAULT 0,
			completed_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS user (
			key TEXT PRIMARY KEY,
			xp INTEGER DEFAULT 0,
			level INTEGER DEFAULT 1,
			tasks_completed INTEGER DEFAULT 0,
			streak INTEGER DEFAULT 1,
			last_login DATETIME,
			is_premium INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS badges (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			icon TEXT NOT NULL,
			description TEXT NOT NULL,
			unlocked INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_completed_at ON tasks(completed_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
