package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mjlc31/EASYDAY/internal/analytics"
	"github.com/Mjlc31/EASYDAY/internal/insight"
	"github.com/Mjlc31/EASYDAY/internal/ui"
)

// History window sizes by plan. The projector itself takes any N; the
// entitlement lives here at the boundary.
const (
	freeHistoryDays    = 21
	premiumHistoryDays = 180
)

func newHistoryCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Daily completion heatmap and time-of-day patterns",
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
			tasks, err := svc.TaskRepo().ListAll(ctx)
			if err != nil {
				return err
			}

			window := freeHistoryDays
			if u.IsPremium {
				window = premiumHistoryDays
			}
			if days > 0 && days < window {
				window = days
			}

			now := time.Now()
			out := cmd.OutOrStdout()

			dist := analytics.TimeOfDayDistribution(tasks)
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Rhythm"))
			fmt.Fprintf(out, "- 🌅 Morning (05h-12h): %d\n", dist.Morning)
			fmt.Fprintf(out, "- 🌇 Afternoon (12h-18h): %d\n", dist.Afternoon)
			fmt.Fprintf(out, "- 🌙 Night (18h-05h): %d\n", dist.Night)
			fmt.Fprintln(out, "")

			if u.IsPremium {
				msg, err := newInsightClient(cfg).TimingInsight(ctx, dist)
				if err != nil {
					msg = insight.FallbackTiming
				}
				fmt.Fprintln(out, ui.H2.Render(ui.IconBrain+" Rhythm insight"))
				fmt.Fprintln(out, ui.Muted.Render("\""+msg+"\""))
				fmt.Fprintln(out, "")
			}

			fmt.Fprintln(out, ui.H2.Render("📆 Heatmap"))
			for _, cell := range analytics.Heatmap(tasks, now, window) {
				bar := strings.Repeat("█", cell.Count)
				if cell.Count == 0 {
					fmt.Fprintf(out, "%s %s\n", ui.Muted.Render(cell.Date), ui.Dim.Render("·"))
					continue
				}
				fmt.Fprintf(out, "%s %s %d\n", ui.Muted.Render(cell.Date), ui.Good.Render(bar), cell.Count)
			}
			if !u.IsPremium {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.Dim.Render(ui.IconLock+" Free plan shows the last 21 days. ezd upgrade for the full history."))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Trailing window size (capped by plan)")

	return cmd
}
