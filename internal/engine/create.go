package engine

import (
	"context"
	"time"

	"github.com/Mjlc31/EASYDAY/internal/storage"
)

// MaxFreePendingTasks is the free-tier cap on simultaneously pending
// tasks. Premium has no cap.
const MaxFreePendingTasks = 8

type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Quadrant    Quadrant
}

func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) (*storage.Task, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}

	q := in.Quadrant
	if !q.IsValid() {
		q = DefaultQuadrant
	}

	u, err := s.getUser(ctx)
	if err != nil {
		return nil, err
	}
	if !u.IsPremium {
		pending, err := s.tasks.CountPending(ctx)
		if err != nil {
			return nil, err
		}
		if pending >= MaxFreePendingTasks {
			return nil, QuotaError{Limit: MaxFreePendingTasks}
		}
	}

	var desc *string
	if in.Description != "" {
		d := in.Description
		desc = &d
	}

	id, err := s.tasks.Insert(ctx, storage.TaskInsert{
		Title:       title,
		Description: desc,
		Quadrant:    string(q),
		DueDate:     in.DueDate,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return nil, err
	}
	return s.tasks.Get(ctx, id)
}
