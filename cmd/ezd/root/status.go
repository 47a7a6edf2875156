package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mjlc31/EASYDAY/internal/analytics"
	"github.com/Mjlc31/EASYDAY/internal/engine"
	"github.com/Mjlc31/EASYDAY/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show XP, level, streak, badges and quota",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			maybeWelcome(ctx, svc, cmd.OutOrStdout())

			u, err := svc.UserRepo().GetOrCreateMain(ctx)
			if err != nil {
				return err
			}
			tasks, err := svc.TaskRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			badges, err := svc.BadgeRepo().ListAll(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "EasyDay Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d (%s)", u.Level, engine.LevelTitle(u.Level))))

			next := engine.NextLevelXP(u.Level)
			if next > 0 {
				toGo := next - u.XP
				if toGo < 0 {
					toGo = 0
				}
				fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d (next level at %d, %d to go)", u.XP, next, toGo)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d (maxed out)", u.XP)))
			}

			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFire, u.Streak)))
			fmt.Fprintln(out, ui.LabelValue("Completed", u.TasksCompleted))

			pending := analytics.PendingCount(tasks)
			if u.IsPremium {
				fmt.Fprintln(out, ui.LabelValue("Plan", ui.Gold.Render(ui.IconCrown+" PRO")))
				fmt.Fprintln(out, ui.LabelValue("Pending", pending))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Plan", "free"))
				fmt.Fprintln(out, ui.LabelValue("Pending", fmt.Sprintf("%d / %d", pending, engine.MaxFreePendingTasks)))
			}

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Badges"))
			for _, b := range badges {
				if b.Unlocked {
					fmt.Fprintf(out, "- %s %s %s\n", b.Icon, ui.Good.Render(b.Name), ui.Muted.Render(b.Description))
				} else {
					fmt.Fprintf(out, "- %s %s %s\n", ui.IconLock, ui.Muted.Render(b.Name), ui.Dim.Render(b.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
