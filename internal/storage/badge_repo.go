package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type BadgeRepo struct {
	db *sql.DB
}

func NewBadgeRepo(db *sql.DB) *BadgeRepo {
	return &BadgeRepo{db: db}
}

// EnsureSeed inserts any missing badge rows. Records persisted before the
// badge table existed get the default set this way; already-stored unlock
// state is never overwritten.
func (r *BadgeRepo) EnsureSeed(ctx context.Context, defaults []Badge) error {
	for _, b := range defaults {
		_, err := r.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO badges (id, name, icon, description, unlocked)
			VALUES (?, ?, ?, ?, ?)
		`, b.ID, b.Name, b.Icon, b.Description, boolToInt(b.Unlocked))
		if err != nil {
			return fmt.Errorf("badge seed: %w", err)
		}
	}
	return nil
}

func (r *BadgeRepo) ListAll(ctx context.Context) ([]Badge, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, icon, description, unlocked
		FROM badges
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("badge list: %w", err)
	}
	defer rows.Close()

	var out []Badge
	for rows.Next() {
		var b Badge
		var unlocked int
		if err := rows.Scan(&b.ID, &b.Name, &b.Icon, &b.Description, &unlocked); err != nil {
			return nil, fmt.Errorf("badge scan: %w", err)
		}
		b.Unlocked = unlocked != 0
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("badge rows: %w", err)
	}
	return out, nil
}

// SetUnlocked marks a badge earned. Unlocks are one-directional.
func (r *BadgeRepo) SetUnlocked(ctx context.Context, ex Execer, id string) error {
	_, err := ex.ExecContext(ctx, `UPDATE badges SET unlocked = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("badge unlock: %w", err)
	}
	return nil
}
