package engine

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mjlc31/EASYDAY/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func setPremium(t *testing.T, svc *Service) {
	t.Helper()
	ctx := context.Background()
	u, err := svc.UserRepo().GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	u.IsPremium = true
	if err := svc.UserRepo().Update(ctx, svc.DB(), u); err != nil {
		t.Fatalf("update user: %v", err)
	}
}

func mainUser(t *testing.T, svc *Service) *storage.User {
	t.Helper()
	u, err := svc.UserRepo().GetOrCreateMain(context.Background())
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	return u
}

func TestCreateTaskQuota(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	for i := 0; i < MaxFreePendingTasks; i++ {
		if _, err := svc.CreateTask(ctx, CreateTaskInput{Title: "task", Quadrant: Q2}); err != nil {
			t.Fatalf("create #%d: %v", i+1, err)
		}
	}

	_, err := svc.CreateTask(ctx, CreateTaskInput{Title: "one too many", Quadrant: Q2})
	var qe QuotaError
	if !errors.As(err, &qe) {
		t.Fatalf("expected QuotaError, got %v", err)
	}
	if qe.Limit != MaxFreePendingTasks {
		t.Fatalf("quota limit=%d, want %d", qe.Limit, MaxFreePendingTasks)
	}

	setPremium(t, svc)
	if _, err := svc.CreateTask(ctx, CreateTaskInput{Title: "premium has no cap", Quadrant: Q2}); err != nil {
		t.Fatalf("premium create: %v", err)
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.CreateTask(ctx, CreateTaskInput{Title: "   "}); err == nil {
		t.Fatalf("expected error for blank title")
	}

	task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "  trim me  ", Quadrant: Quadrant("nope")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Title != "trim me" {
		t.Fatalf("title=%q, want %q", task.Title, "trim me")
	}
	if task.Quadrant != string(DefaultQuadrant) {
		t.Fatalf("quadrant=%q, want %q", task.Quadrant, DefaultQuadrant)
	}
	if task.Completed {
		t.Fatalf("new task must start pending")
	}
}

func TestToggleAsymmetry(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	svc.SetClock(func() time.Time { return day })

	task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "urgent fire", Quadrant: Q1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err := svc.ToggleTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("toggle complete: %v", err)
	}
	if !res.Completing || res.Award == nil {
		t.Fatalf("expected completing result with award")
	}
	if !res.Award.SameDayBonus {
		t.Fatalf("expected same-day bonus for Q1 completed on creation day")
	}
	if res.Award.XPGained != BaseXP+Q1SameDayBonus {
		t.Fatalf("xp gained=%d, want %d", res.Award.XPGained, BaseXP+Q1SameDayBonus)
	}

	u := mainUser(t, svc)
	if u.XP != BaseXP+Q1SameDayBonus {
		t.Fatalf("xp=%d, want %d", u.XP, BaseXP+Q1SameDayBonus)
	}
	if u.TasksCompleted != 1 {
		t.Fatalf("tasks completed=%d, want 1", u.TasksCompleted)
	}

	// Uncompleting claws back only the flat base award; the bonus stays.
	res2, err := svc.ToggleTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("toggle uncomplete: %v", err)
	}
	if res2.Completing || res2.Award != nil {
		t.Fatalf("expected uncompleting result without award")
	}
	if res2.XPDeducted != BaseXP {
		t.Fatalf("xp deducted=%d, want %d", res2.XPDeducted, BaseXP)
	}

	u = mainUser(t, svc)
	if u.XP != Q1SameDayBonus {
		t.Fatalf("xp after undo=%d, want %d", u.XP, Q1SameDayBonus)
	}
	if u.TasksCompleted != 0 {
		t.Fatalf("tasks completed after undo=%d, want 0", u.TasksCompleted)
	}

	got, err := svc.TaskRepo().Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Completed || got.CompletedAt != nil {
		t.Fatalf("task should be pending again with cleared completed_at")
	}
}

func TestToggleAllQuadrantsBonus(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	svc.SetClock(func() time.Time { return day })

	ids := make(map[Quadrant]int64, len(Quadrants))
	for _, q := range Quadrants {
		task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "cover " + string(q), Quadrant: q})
		if err != nil {
			t.Fatalf("create %s: %v", q, err)
		}
		ids[q] = task.ID
	}

	// Q1 first so its same-day bonus lands before the coverage check.
	order := []Quadrant{Q1, Q2, Q3}
	for _, q := range order {
		res, err := svc.ToggleTask(ctx, ids[q])
		if err != nil {
			t.Fatalf("toggle %s: %v", q, err)
		}
		if res.Award.AllQuadrants {
			t.Fatalf("all-quadrant bonus fired early on %s", q)
		}
	}

	res, err := svc.ToggleTask(ctx, ids[Q4])
	if err != nil {
		t.Fatalf("toggle Q4: %v", err)
	}
	if !res.Award.AllQuadrants {
		t.Fatalf("expected all-quadrant bonus on the fourth completion")
	}
	if res.Award.XPGained != BaseXP+DayCompleteBonus {
		t.Fatalf("xp gained=%d, want %d", res.Award.XPGained, BaseXP+DayCompleteBonus)
	}

	// 4 base awards, one same-day bonus, one coverage bonus.
	wantTotal := 4*BaseXP + Q1SameDayBonus + DayCompleteBonus
	if u := mainUser(t, svc); u.XP != wantTotal {
		t.Fatalf("total xp=%d, want %d", u.XP, wantTotal)
	}

	// Unchecking one of them claws back the flat base only.
	if _, err := svc.ToggleTask(ctx, ids[Q1]); err != nil {
		t.Fatalf("uncheck Q1: %v", err)
	}
	u := mainUser(t, svc)
	if u.XP != wantTotal-BaseXP {
		t.Fatalf("xp after uncheck=%d, want %d", u.XP, wantTotal-BaseXP)
	}
	if u.TasksCompleted != 3 {
		t.Fatalf("tasks completed after uncheck=%d, want 3", u.TasksCompleted)
	}
}

func TestPremiumMultiplierSkipsDayBonus(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setPremium(t, svc)

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	svc.SetClock(func() time.Time { return day })

	ids := make([]int64, 0, len(Quadrants))
	for _, q := range Quadrants {
		task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "cover " + string(q), Quadrant: q})
		if err != nil {
			t.Fatalf("create %s: %v", q, err)
		}
		ids = append(ids, task.ID)
	}

	var last *ToggleResult
	for _, id := range ids {
		res, err := svc.ToggleTask(ctx, id)
		if err != nil {
			t.Fatalf("toggle %d: %v", id, err)
		}
		last = res
	}

	// Base 5 scales to 7 (floored); the flat 20 is added unscaled.
	want := int(math.Floor(float64(BaseXP)*PremiumMultiplier)) + DayCompleteBonus
	if last.Award.XPGained != want {
		t.Fatalf("final xp gained=%d, want %d", last.Award.XPGained, want)
	}
}

func TestToggleNotFound(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	_, err := svc.ToggleTask(context.Background(), 404)
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.ID != 404 {
		t.Fatalf("not found id=%d, want 404", nf.ID)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "draft", Quadrant: Q3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.UpdateTask(ctx, task.ID, UpdateTaskInput{Title: "final", Description: "ship it", Quadrant: Q1}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := svc.TaskRepo().Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "final" || got.Quadrant != string(Q1) {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.Description == nil || *got.Description != "ship it" {
		t.Fatalf("description not applied: %+v", got.Description)
	}
	if !got.CreatedAt.Equal(task.CreatedAt) {
		t.Fatalf("update must not touch created_at")
	}

	var nf NotFoundError
	if err := svc.UpdateTask(ctx, 404, UpdateTaskInput{Title: "ghost"}); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError from update, got %v", err)
	}

	if err := svc.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteTask(ctx, task.ID); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError from second delete, got %v", err)
	}
}

func TestCycleQuadrant(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "mover", Quadrant: Q4})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	next, err := svc.CycleQuadrant(ctx, task.ID)
	if err != nil {
		t.Fatalf("cycle: %v", err)
	}
	if next != Q1 {
		t.Fatalf("Q4 cycles to %s, want Q1", next)
	}
	got, err := svc.TaskRepo().Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Quadrant != string(Q1) {
		t.Fatalf("persisted quadrant=%q, want Q1", got.Quadrant)
	}
}

func TestTouchLoginStreak(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	day1 := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)
	svc.SetClock(func() time.Time { return day1 })
	u, err := svc.TouchLogin(ctx)
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	if u.Streak != 1 {
		t.Fatalf("first login streak=%d, want 1", u.Streak)
	}

	// Same-day login is a no-op.
	svc.SetClock(func() time.Time { return day1.Add(6 * time.Hour) })
	u, err = svc.TouchLogin(ctx)
	if err != nil {
		t.Fatalf("same-day login: %v", err)
	}
	if u.Streak != 1 {
		t.Fatalf("same-day streak=%d, want 1", u.Streak)
	}

	svc.SetClock(func() time.Time { return day1.AddDate(0, 0, 1) })
	u, err = svc.TouchLogin(ctx)
	if err != nil {
		t.Fatalf("next-day login: %v", err)
	}
	if u.Streak != 2 {
		t.Fatalf("next-day streak=%d, want 2", u.Streak)
	}

	svc.SetClock(func() time.Time { return day1.AddDate(0, 0, 4) })
	u, err = svc.TouchLogin(ctx)
	if err != nil {
		t.Fatalf("gap login: %v", err)
	}
	if u.Streak != 1 {
		t.Fatalf("streak after gap=%d, want 1", u.Streak)
	}
}

func TestBadgeUnlockOnLevelFive(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	setPremium(t, svc)

	u := mainUser(t, svc)
	u.XP = LevelThresholds[4] - 1 // one completion away from level 5
	if err := svc.UserRepo().Update(ctx, svc.DB(), u); err != nil {
		t.Fatalf("seed xp: %v", err)
	}

	task, err := svc.CreateTask(ctx, CreateTaskInput{Title: "threshold push", Quadrant: Q2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	res, err := svc.ToggleTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if !res.Award.LevelUp() || res.Award.LevelAfter != 5 {
		t.Fatalf("level after=%d (up=%v), want level 5 up", res.Award.LevelAfter, res.Award.LevelUp())
	}

	found := false
	for _, b := range res.NewBadges {
		if b.ID == BadgeUnstoppable {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s badge in %v", BadgeUnstoppable, res.NewBadges)
	}

	badges, err := svc.BadgeRepo().ListAll(ctx)
	if err != nil {
		t.Fatalf("list badges: %v", err)
	}
	for _, b := range badges {
		if b.ID == BadgeUnstoppable && !b.Unlocked {
			t.Fatalf("badge unlock not persisted")
		}
	}
}
