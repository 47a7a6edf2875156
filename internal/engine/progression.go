package engine

import (
	"math"
	"time"

	"github.com/Mjlc31/EASYDAY/internal/analytics"
	"github.com/Mjlc31/EASYDAY/internal/storage"
)

const (
	// BaseXP is awarded for any completion (and is the flat amount
	// clawed back on uncomplete).
	BaseXP = 5

	// Q1SameDayBonus rewards killing an urgent+important task the same
	// local day it was created.
	Q1SameDayBonus = 15

	// DayCompleteBonus is the flat award when today's completions cover
	// all four quadrants.
	DayCompleteBonus = 20

	// PerfectWeekBonus rewards seven consecutive days with completions.
	PerfectWeekBonus = 80

	// PremiumMultiplier scales the additive bonuses for premium users,
	// floored to an integer. It does not apply to DayCompleteBonus.
	PremiumMultiplier = 1.5
)

// LevelThresholds is the ascending XP table. Level 1 is the floor.
var LevelThresholds = []int{0, 100, 300, 700, 1500, 3000}

// LevelTitles are display names per level, 1-indexed.
var LevelTitles = []string{
	"Beginner",
	"Consistent",
	"Executor",
	"Dominant",
	"UNSTOPPABLE",
}

// LevelForXP returns the highest level whose threshold is <= xp.
func LevelForXP(xp int) int {
	level := 1
	for i, req := range LevelThresholds {
		if xp >= req {
			level = i + 1
		}
	}
	return level
}

// NextLevelXP returns the threshold for the level after the given one, or
// -1 when maxed out.
func NextLevelXP(level int) int {
	if level < 1 || level >= len(LevelThresholds) {
		return -1
	}
	return LevelThresholds[level]
}

// LevelTitle returns the display title for a level.
func LevelTitle(level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(LevelTitles) {
		level = len(LevelTitles)
	}
	return LevelTitles[level-1]
}

// CompletionEvent is the sole handoff between the task ledger and the
// progression engine: a post-transition task snapshot plus the direction.
type CompletionEvent struct {
	Task       storage.Task
	Completing bool
	At         time.Time
}

// Award describes the XP effect of one completing transition.
type Award struct {
	XPGained     int
	SameDayBonus bool
	AllQuadrants bool
	LevelBefore  int
	LevelAfter   int
}

func (a Award) LevelUp() bool {
	return a.LevelAfter > a.LevelBefore
}

// ApplyCompletion mutates the user stats for a completing transition.
// ledger must be the post-flip snapshot: the all-quadrants check scans
// siblings completed today, including the toggled task itself.
//
// Deterministic and replayable: everything derives from the event, the
// ledger, and the prior stats.
func ApplyCompletion(u *storage.User, ev CompletionEvent, ledger []storage.Task) Award {
	levelBefore := u.Level

	gained := BaseXP

	sameDay := false
	if ev.Task.Quadrant == string(Q1) && analytics.SameLocalDay(ev.Task.CreatedAt, ev.At) {
		gained += Q1SameDayBonus
		sameDay = true
	}

	if u.IsPremium {
		gained = int(math.Floor(float64(gained) * PremiumMultiplier))
	}

	// Flat, not multiplied, and awarded again on every qualifying event
	// in the same day. Accepted input behavior.
	allQuadrants := false
	if quadrantsCompletedOn(ledger, ev.At) == len(Quadrants) {
		gained += DayCompleteBonus
		allQuadrants = true
	}

	u.XP += gained
	u.TasksCompleted++
	if lv := LevelForXP(u.XP); lv > u.Level {
		u.Level = lv
	}

	return Award{
		XPGained:     gained,
		SameDayBonus: sameDay,
		AllQuadrants: allQuadrants,
		LevelBefore:  levelBefore,
		LevelAfter:   u.Level,
	}
}

// ApplyReversal mutates the user stats for an uncompleting transition and
// returns the XP actually deducted. Only the flat base award is clawed
// back; bonuses granted at completion time stay. Level never decreases.
func ApplyReversal(u *storage.User) int {
	deducted := BaseXP
	if u.XP < deducted {
		deducted = u.XP
	}
	u.XP -= deducted
	if u.TasksCompleted > 0 {
		u.TasksCompleted--
	}
	return deducted
}

// quadrantsCompletedOn counts the distinct quadrants among tasks completed
// on the same local day as at.
func quadrantsCompletedOn(ledger []storage.Task, at time.Time) int {
	seen := map[string]bool{}
	for _, t := range ledger {
		if t.Completed && t.CompletedAt != nil && analytics.SameLocalDay(*t.CompletedAt, at) {
			seen[t.Quadrant] = true
		}
	}
	return len(seen)
}
