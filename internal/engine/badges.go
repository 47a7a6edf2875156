package engine

import (
	"time"

	"github.com/Mjlc31/EASYDAY/internal/analytics"
	"github.com/Mjlc31/EASYDAY/internal/storage"
)

const (
	BadgeMonk               = "monk"
	BadgeNoExcuses          = "no_excuses"
	BadgeAntiProcrastinator = "anti_procrastinator"
	BadgeUnstoppable        = "unstoppable"
)

// DefaultBadges is the badge set seeded for new (or pre-badge) user
// records. All locked.
func DefaultBadges() []storage.Badge {
	return []storage.Badge{
		{ID: BadgeMonk, Name: "Discipline Monk", Icon: "🧘", Description: "30 days of unbroken focus"},
		{ID: BadgeNoExcuses, Name: "Zero Excuses", Icon: "⛔", Description: "Finish something every day for 7 days"},
		{ID: BadgeAntiProcrastinator, Name: "Anti-Procrastinator", Icon: "⚡", Description: "3 days without postponing anything"},
		{ID: BadgeUnstoppable, Name: "Unstoppable", Icon: "🚀", Description: "Reach level 5"},
	}
}

// BadgeChecker evaluates unlock conditions against cumulative stats.
type BadgeChecker struct {
	user  *storage.User
	tasks []storage.Task
	now   time.Time
}

func NewBadgeChecker(user *storage.User, tasks []storage.Task, now time.Time) *BadgeChecker {
	return &BadgeChecker{user: user, tasks: tasks, now: now}
}

func (c *BadgeChecker) Earned(id string) bool {
	switch id {
	case BadgeMonk:
		return c.user.Streak >= 30
	case BadgeNoExcuses:
		return analytics.ConsecutiveCompletionDays(c.tasks, c.now, 30) >= 7
	case BadgeAntiProcrastinator:
		return analytics.ConsecutiveCompletionDays(c.tasks, c.now, 30) >= 3
	case BadgeUnstoppable:
		return c.user.Level >= 5
	default:
		return false
	}
}

// NewlyEarned returns the badges that are earned now but not yet unlocked
// in the persisted set. Unlocks are one-directional: a badge already
// unlocked is never re-evaluated.
func (c *BadgeChecker) NewlyEarned(badges []storage.Badge) []storage.Badge {
	var out []storage.Badge
	for _, b := range badges {
		if b.Unlocked {
			continue
		}
		if c.Earned(b.ID) {
			b.Unlocked = true
			out = append(out, b)
		}
	}
	return out
}
