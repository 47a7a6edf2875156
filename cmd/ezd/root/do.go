package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Mjlc31/EASYDAY/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Toggle a task's completion",
		Args:  requireIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := svc.ToggleTask(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Completing {
				fmt.Fprintf(out, "%s #%d %s %s\n",
					ui.Good.Render(ui.IconDone+" Done"), res.Task.ID, res.Task.Title,
					ui.Gold.Render(fmt.Sprintf("(+%d XP)", res.Award.XPGained)))
				if res.Award.SameDayBonus {
					fmt.Fprintln(out, ui.Muted.Render("  includes same-day Q1 bonus"))
				}
				if res.Award.AllQuadrants {
					fmt.Fprintln(out, ui.Gold.Render("  "+ui.IconTrophy+" all four quadrants today, day complete bonus"))
				}
				if res.Award.LevelUp() {
					fmt.Fprintf(out, "  %s level %d → %d\n", ui.BadgeLevelUp, res.Award.LevelBefore, res.Award.LevelAfter)
				}
				for _, b := range res.NewBadges {
					fmt.Fprintf(out, "  %s badge unlocked: %s %s\n", ui.Gold.Render(ui.IconTrophy), b.Icon, b.Name)
				}
			} else {
				fmt.Fprintf(out, "%s #%d %s %s\n",
					ui.Warn.Render(ui.IconUndo+" Unchecked"), res.Task.ID, res.Task.Title,
					ui.Muted.Render(fmt.Sprintf("(-%d XP)", res.XPDeducted)))
			}
			return nil
		},
	}

	return cmd
}
