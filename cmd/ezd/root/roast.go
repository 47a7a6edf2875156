package root

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mjlc31/EASYDAY/internal/analytics"
	"github.com/Mjlc31/EASYDAY/internal/insight"
	"github.com/Mjlc31/EASYDAY/internal/ui"
)

func newRoastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roast",
		Short: "Get brutal AI feedback on your productivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			u, err := svc.UserRepo().GetOrCreateMain(ctx)
			if err != nil {
				return err
			}

			// Free users only get roasted sometimes; the rest of the
			// time the paywall does the judging.
			if !u.IsPremium && rand.Float64() > 0.3 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconLock+" The brutal feedback is mostly a PRO thing."))
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("ezd upgrade, or keep guessing how badly you're doing."))
				return nil
			}

			tasks, err := svc.TaskRepo().ListAll(ctx)
			if err != nil {
				return err
			}

			rc := insight.RoastContext{
				Pending:        analytics.PendingCount(tasks),
				UrgentPending:  analytics.UrgentPendingCount(tasks),
				CompletedToday: analytics.CompletedTodayCount(tasks, time.Now()),
				Streak:         u.Streak,
			}

			msg, err := newInsightClient(cfg).Roast(ctx, rc)
			if err != nil {
				msg = insight.FallbackRoast
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBrain, "Brutal feedback"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Bad.Render("\""+msg+"\""))
			return nil
		},
	}

	return cmd
}
