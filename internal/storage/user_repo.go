package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const MainUserKey = "main_user"

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Get(ctx context.Context, key string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, xp, level, tasks_completed, streak, last_login, is_premium
		FROM user
		WHERE key = ?
	`, key)

	var (
		u         User
		lastLogin sql.NullTime
		premium   int
	)
	if err := row.Scan(&u.Key, &u.XP, &u.Level, &u.TasksCompleted, &u.Streak, &lastLogin, &premium); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("user get: %w", err)
	}
	if lastLogin.Valid {
		v := lastLogin.Time
		u.LastLogin = &v
	}
	u.IsPremium = premium != 0
	return &u, nil
}

func (r *UserRepo) GetOrCreateMain(ctx context.Context) (*User, error) {
	u, err := r.Get(ctx, MainUserKey)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO user (key) VALUES (?)`, MainUserKey); err != nil {
		return nil, fmt.Errorf("user insert: %w", err)
	}
	return r.Get(ctx, MainUserKey)
}

func (r *UserRepo) Update(ctx context.Context, ex Execer, u *User) error {
	_, err := ex.ExecContext(ctx, `
		UPDATE user
		SET xp = ?, level = ?, tasks_completed = ?, streak = ?, last_login = ?, is_premium = ?
		WHERE key = ?
	`, u.XP, u.Level, u.TasksCompleted, u.Streak, u.LastLogin, boolToInt(u.IsPremium), u.Key)
	if err != nil {
		return fmt.Errorf("user update: %w", err)
	}
	return nil
}
