package root

import (
	"context"
	"fmt"
	"io"

	"github.com/Mjlc31/EASYDAY/internal/config"
	"github.com/Mjlc31/EASYDAY/internal/engine"
	"github.com/Mjlc31/EASYDAY/internal/insight"
	"github.com/Mjlc31/EASYDAY/internal/storage"
	"github.com/Mjlc31/EASYDAY/internal/ui"
)

func openService(ctx context.Context) (*engine.Service, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	svc := engine.NewService(db)
	// Streak rollover happens on open, outside any completion transaction.
	if _, err := svc.TouchLogin(ctx); err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return svc, cfg, cleanup, nil
}

func newInsightClient(cfg *config.Config) *insight.Client {
	return insight.NewClient(cfg.InsightBaseURL, cfg.InsightAPIKey, cfg.InsightModel)
}

// maybeWelcome prints a short onboarding note the first time the ledger is
// touched, then never again.
func maybeWelcome(ctx context.Context, svc *engine.Service, out io.Writer) {
	done, err := svc.MetaRepo().HasOnboarded(ctx)
	if err != nil || done {
		return
	}
	fmt.Fprintln(out, ui.Heading(ui.IconMatrix, "Welcome to EasyDay"))
	fmt.Fprintln(out, ui.Muted.Render("Sort tasks into four quadrants: Q1 do now, Q2 schedule, Q3 delegate, Q4 eliminate."))
	fmt.Fprintln(out, ui.Muted.Render(ui.IconBolt+" Finishing tasks earns XP. Skipping them earns a roast. Try: ezd add \"First task\" -q q1"))
	fmt.Fprintln(out, "")
	_ = svc.MetaRepo().MarkOnboarded(ctx)
}
