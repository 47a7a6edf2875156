package engine

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Mjlc31/EASYDAY/internal/analytics"
	"github.com/Mjlc31/EASYDAY/internal/storage"
)

type Service struct {
	db     *sql.DB
	tasks  *storage.TaskRepo
	users  *storage.UserRepo
	badges *storage.BadgeRepo
	meta   *storage.MetaRepo

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:     db,
		tasks:  storage.NewTaskRepo(db),
		users:  storage.NewUserRepo(db),
		badges: storage.NewBadgeRepo(db),
		meta:   storage.NewMetaRepo(db),
		now:    time.Now,
	}
}

func (s *Service) TaskRepo() *storage.TaskRepo   { return s.tasks }
func (s *Service) UserRepo() *storage.UserRepo   { return s.users }
func (s *Service) BadgeRepo() *storage.BadgeRepo { return s.badges }
func (s *Service) MetaRepo() *storage.MetaRepo   { return s.meta }
func (s *Service) DB() *sql.DB                   { return s.db }

// SetClock overrides the service clock. Test hook.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}

// getUser loads the main user record, seeding the default badge set when
// missing, and reconciles the stored level with the XP table (one-way:
// the level never drops).
func (s *Service) getUser(ctx context.Context) (*storage.User, error) {
	u, err := s.users.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.badges.EnsureSeed(ctx, DefaultBadges()); err != nil {
		return nil, err
	}
	if computed := LevelForXP(u.XP); computed > u.Level {
		u.Level = computed
		if err := s.users.Update(ctx, s.db, u); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// TouchLogin applies the daily streak rollover: a login the day after the
// last one extends the streak, a longer gap resets it to 1, a same-day
// login is a no-op. This lives outside the completion transaction.
func (s *Service) TouchLogin(ctx context.Context) (*storage.User, error) {
	u, err := s.getUser(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch {
	case u.LastLogin == nil:
		// First session; streak stays at its default.
	case analytics.SameLocalDay(*u.LastLogin, now):
		return u, nil
	case analytics.DayKey(*u.LastLogin) == analytics.DayKey(now.AddDate(0, 0, -1)):
		u.Streak++
	default:
		u.Streak = 1
	}

	u.LastLogin = &now
	if err := s.users.Update(ctx, s.db, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Upgrade flips the premium flag after the (mock) checkout succeeds.
func (s *Service) Upgrade(ctx context.Context) error {
	u, err := s.getUser(ctx)
	if err != nil {
		return err
	}
	u.IsPremium = true
	return s.users.Update(ctx, s.db, u)
}
