package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const metaKeyOnboarded = "onboarded"

type MetaRepo struct {
	db *sql.DB
}

func NewMetaRepo(db *sql.DB) *MetaRepo {
	return &MetaRepo{db: db}
}

func (r *MetaRepo) HasOnboarded(ctx context.Context) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, metaKeyOnboarded)
	var v string
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("meta get: %w", err)
	}
	return v == "true", nil
}

func (r *MetaRepo) MarkOnboarded(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES (?, 'true')
		ON CONFLICT(key) DO UPDATE SET value = 'true'
	`, metaKeyOnboarded)
	if err != nil {
		return fmt.Errorf("meta set: %w", err)
	}
	return nil
}
