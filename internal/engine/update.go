package engine

import (
	"context"
	"time"
)

type UpdateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Quadrant    Quadrant
}

// UpdateTask mutates the editable fields of a task in place. Completion
// state and created_at never change here.
func (s *Service) UpdateTask(ctx context.Context, id int64, in UpdateTaskInput) error {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return err
	}
	q := in.Quadrant
	if !q.IsValid() {
		q = DefaultQuadrant
	}

	var desc *string
	if in.Description != "" {
		d := in.Description
		desc = &d
	}

	ok, err := s.tasks.Update(ctx, id, title, desc, string(q), in.DueDate)
	if err != nil {
		return err
	}
	if !ok {
		return NotFoundError{ID: id}
	}
	return nil
}

// CycleQuadrant advances the task's quadrant one step in the fixed cyclic
// order and returns the new value.
func (s *Service) CycleQuadrant(ctx context.Context, id int64) (Quadrant, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if t == nil {
		return "", NotFoundError{ID: id}
	}

	next := Quadrant(t.Quadrant).Next()
	if _, err := s.tasks.UpdateQuadrant(ctx, id, string(next)); err != nil {
		return "", err
	}
	return next, nil
}

// DeleteTask removes the task. Deleting an absent id is an error, same as
// update: the caller asked for a specific task that does not exist.
func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	ok, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return NotFoundError{ID: id}
	}
	return nil
}
