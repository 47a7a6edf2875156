package engine

import (
	"context"
	"database/sql"

	"github.com/Mjlc31/EASYDAY/internal/storage"
)

// ToggleResult describes one completion toggle: the post-transition task,
// the direction, and what it did to the user stats.
type ToggleResult struct {
	Task       storage.Task
	Completing bool

	// Award is set for completing transitions only.
	Award *Award
	// XPDeducted is set for uncompleting transitions only.
	XPDeducted int

	NewBadges []storage.Badge
}

// ToggleTask flips a task's completion state and applies the progression
// rules. The ledger flip and the stats update land in the same SQL
// transaction: a crash can not split them.
func (s *Service) ToggleTask(ctx context.Context, id int64) (*ToggleResult, error) {
	u, err := s.getUser(ctx)
	if err != nil {
		return nil, err
	}

	before, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if before == nil {
		return nil, NotFoundError{ID: id}
	}

	now := s.now()

	after := *before
	after.Completed = !before.Completed
	if after.Completed {
		after.CompletedAt = &now
	} else {
		after.CompletedAt = nil
	}

	// Build the post-flip ledger snapshot in memory; the all-quadrants
	// bonus scans siblings including the toggled task.
	ledger, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ledger {
		if ledger[i].ID == id {
			ledger[i] = after
		}
	}

	res := &ToggleResult{Task: after, Completing: after.Completed}
	ev := CompletionEvent{Task: after, Completing: after.Completed, At: now}

	if ev.Completing {
		award := ApplyCompletion(u, ev, ledger)
		res.Award = &award

		persisted, err := s.badges.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		res.NewBadges = NewBadgeChecker(u, ledger, now).NewlyEarned(persisted)
	} else {
		res.XPDeducted = ApplyReversal(u)
	}

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.tasks.SetCompletion(ctx, tx, id, after.Completed, after.CompletedAt); err != nil {
			return err
		}
		if err := s.users.Update(ctx, tx, u); err != nil {
			return err
		}
		for _, b := range res.NewBadges {
			if err := s.badges.SetUnlocked(ctx, tx, b.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
