package engine

import (
	"testing"
	"time"

	"github.com/Mjlc31/EASYDAY/internal/storage"
)

func TestLevelForXPBoundaries(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{699, 3},
		{700, 4},
		{1500, 5},
		{2999, 5},
		{3000, 6},
		{99999, 6},
	}
	for _, c := range cases {
		if got := LevelForXP(c.xp); got != c.want {
			t.Fatalf("LevelForXP(%d)=%d, want %d", c.xp, got, c.want)
		}
	}
}

func TestNextLevelXP(t *testing.T) {
	if got := NextLevelXP(1); got != 100 {
		t.Fatalf("NextLevelXP(1)=%d, want 100", got)
	}
	if got := NextLevelXP(5); got != 3000 {
		t.Fatalf("NextLevelXP(5)=%d, want 3000", got)
	}
	if got := NextLevelXP(6); got != -1 {
		t.Fatalf("NextLevelXP(6)=%d, want -1", got)
	}
}

func TestApplyCompletionPremiumFloor(t *testing.T) {
	at := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	task := storage.Task{ID: 1, Quadrant: string(Q2), CreatedAt: at, Completed: true, CompletedAt: &at}

	u := &storage.User{Key: storage.MainUserKey, Level: 1, IsPremium: true}
	award := ApplyCompletion(u, CompletionEvent{Task: task, Completing: true, At: at}, []storage.Task{task})

	// floor(5 * 1.5) = 7, never rounded up
	if award.XPGained != 7 {
		t.Fatalf("premium base award=%d, want 7", award.XPGained)
	}
	if u.XP != 7 || u.TasksCompleted != 1 {
		t.Fatalf("user after award: xp=%d completed=%d", u.XP, u.TasksCompleted)
	}
}

func TestApplyCompletionLevelNeverDrops(t *testing.T) {
	at := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	task := storage.Task{ID: 1, Quadrant: string(Q3), CreatedAt: at, Completed: true, CompletedAt: &at}

	// Stored level above what the XP table says; award must not pull it down.
	u := &storage.User{Key: storage.MainUserKey, XP: 10, Level: 3}
	award := ApplyCompletion(u, CompletionEvent{Task: task, Completing: true, At: at}, []storage.Task{task})
	if award.LevelAfter != 3 || u.Level != 3 {
		t.Fatalf("level dropped: after=%d user=%d", award.LevelAfter, u.Level)
	}
}

func TestApplyReversalFloorsAtZero(t *testing.T) {
	u := &storage.User{Key: storage.MainUserKey, XP: 3, Level: 2, TasksCompleted: 0}
	deducted := ApplyReversal(u)
	if deducted != 3 {
		t.Fatalf("deducted=%d, want 3", deducted)
	}
	if u.XP != 0 {
		t.Fatalf("xp=%d, want 0", u.XP)
	}
	if u.TasksCompleted != 0 {
		t.Fatalf("tasks completed went negative: %d", u.TasksCompleted)
	}
	if u.Level != 2 {
		t.Fatalf("reversal must not touch level, got %d", u.Level)
	}
}

func TestQuadrantCycle(t *testing.T) {
	want := map[Quadrant]Quadrant{Q1: Q2, Q2: Q3, Q3: Q4, Q4: Q1}
	for from, to := range want {
		if got := from.Next(); got != to {
			t.Fatalf("%s.Next()=%s, want %s", from, got, to)
		}
	}
	if got := Quadrant("bogus").Next(); got != DefaultQuadrant {
		t.Fatalf("unknown quadrant cycles to %s, want %s", got, DefaultQuadrant)
	}
}

func TestParseQuadrant(t *testing.T) {
	q, err := ParseQuadrant(" q3 ")
	if err != nil {
		t.Fatalf("ParseQuadrant: %v", err)
	}
	if q != Q3 {
		t.Fatalf("parsed %s, want Q3", q)
	}
	if _, err := ParseQuadrant("Q5"); err == nil {
		t.Fatalf("expected error for Q5")
	}
}
