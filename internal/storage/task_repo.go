package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

type TaskInsert struct {
	Title       string
	Description *string
	Quadrant    string
	DueDate     *time.Time
	CreatedAt   time.Time
}

func (r *TaskRepo) Insert(ctx context.Context, in TaskInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (title, description, quadrant, due_date, created_at, completed, completed_at)
		VALUES (?, ?, ?, ?, ?, 0, NULL)
	`, in.Title, in.Description, in.Quadrant, in.DueDate, in.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	return id, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, quadrant, due_date, created_at, completed, completed_at
		FROM tasks
		WHERE id = ?
	`, id)
	return scanTask(row)
}

// ListAll returns every task, newest first. Display order is most-recent-first.
func (r *TaskRepo) ListAll(ctx context.Context) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, quadrant, due_date, created_at, completed, completed_at
		FROM tasks
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

// CountPending returns the number of tasks not yet completed.
func (r *TaskRepo) CountPending(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE completed = 0`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("task pending count: %w", err)
	}
	return n, nil
}

// Update mutates the editable fields only; completion state and created_at
// are untouched.
func (r *TaskRepo) Update(ctx context.Context, id int64, title string, description *string, quadrant string, dueDate *time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, quadrant = ?, due_date = ?
		WHERE id = ?
	`, title, description, quadrant, dueDate, id)
	if err != nil {
		return false, fmt.Errorf("task update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("task update rows: %w", err)
	}
	return n > 0, nil
}

func (r *TaskRepo) UpdateQuadrant(ctx context.Context, id int64, quadrant string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET quadrant = ? WHERE id = ?`, quadrant, id)
	if err != nil {
		return false, fmt.Errorf("task update quadrant: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("task update quadrant rows: %w", err)
	}
	return n > 0, nil
}

// SetCompletion flips the completion pair. completedAt must be non-nil
// exactly when completed is true.
func (r *TaskRepo) SetCompletion(ctx context.Context, ex Execer, id int64, completed bool, completedAt *time.Time) error {
	_, err := ex.ExecContext(ctx, `
		UPDATE tasks SET completed = ?, completed_at = ? WHERE id = ?
	`, boolToInt(completed), completedAt, id)
	if err != nil {
		return fmt.Errorf("task set completion: %w", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("task delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("task delete rows: %w", err)
	}
	return n > 0, nil
}

// ReplaceAll wipes the ledger and inserts the given tasks, preserving ids.
// Used by JSON backup restore.
func (r *TaskRepo) ReplaceAll(ctx context.Context, db *sql.DB, tasks []Task) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
			return fmt.Errorf("task wipe: %w", err)
		}
		for _, t := range tasks {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO tasks (id, title, description, quadrant, due_date, created_at, completed, completed_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, t.ID, t.Title, t.Description, t.Quadrant, t.DueDate, t.CreatedAt, boolToInt(t.Completed), t.CompletedAt)
			if err != nil {
				return fmt.Errorf("task restore insert: %w", err)
			}
		}
		return nil
	})
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*Task, error) {
	var (
		id          int64
		title       string
		description sql.NullString
		quadrant    string
		dueDate     sql.NullTime
		createdAt   time.Time
		completed   int
		completedAt sql.NullTime
	)

	if err := row.Scan(&id, &title, &description, &quadrant, &dueDate, &createdAt, &completed, &completedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}

	var desc *string
	if description.Valid {
		v := description.String
		desc = &v
	}
	var due *time.Time
	if dueDate.Valid {
		v := dueDate.Time
		due = &v
	}
	var comp *time.Time
	if completedAt.Valid {
		v := completedAt.Time
		comp = &v
	}

	return &Task{
		ID:          id,
		Title:       title,
		Description: desc,
		Quadrant:    quadrant,
		DueDate:     due,
		CreatedAt:   createdAt,
		Completed:   completed != 0,
		CompletedAt: comp,
	}, nil
}
