package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mjlc31/EASYDAY/internal/analytics"
	"github.com/Mjlc31/EASYDAY/internal/insight"
	"github.com/Mjlc31/EASYDAY/internal/ui"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the weekly AI report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.TaskRepo().ListAll(ctx)
			if err != nil {
				return err
			}

			history := analytics.WeeklyHistory(tasks, time.Now())
			msg, err := newInsightClient(cfg).WeeklyReport(ctx, history)
			if err != nil {
				msg = insight.FallbackReport
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Weekly report"))
			for _, d := range history {
				fmt.Fprintf(out, "%s  %d done\n", ui.Muted.Render(d.Date), d.Completed)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, msg)
			return nil
		},
	}

	return cmd
}
