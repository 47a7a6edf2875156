package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mjlc31/EASYDAY/internal/engine"
	"github.com/Mjlc31/EASYDAY/internal/ui"
)

func newListCmd() *cobra.Command {
	var quadrant string
	var showDone bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by quadrant",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			maybeWelcome(ctx, svc, cmd.OutOrStdout())

			var filter engine.Quadrant
			if quadrant != "" {
				filter, err = engine.ParseQuadrant(quadrant)
				if err != nil {
					return err
				}
			}

			tasks, err := svc.TaskRepo().ListAll(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, q := range engine.Quadrants {
				if filter != "" && q != filter {
					continue
				}
				fmt.Fprintf(out, "%s %s\n", ui.QuadrantTag(string(q)), ui.H2.Render(q.Title()))

				n := 0
				for _, t := range tasks {
					if t.Quadrant != string(q) {
						continue
					}
					if t.Completed && !showDone {
						continue
					}
					n++
					line := fmt.Sprintf("  %s #%d %s", ui.CheckMark(t.Completed), t.ID, t.Title)
					if t.DueDate != nil {
						line += " " + ui.Muted.Render("(due "+t.DueDate.Format("2006-01-02")+")")
					}
					fmt.Fprintln(out, line)
				}
				if n == 0 {
					fmt.Fprintln(out, ui.Dim.Render("  (nothing here)"))
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&quadrant, "quadrant", "q", "", "Only show one quadrant (q1|q2|q3|q4)")
	cmd.Flags().BoolVarP(&showDone, "all", "a", false, "Include completed tasks")

	return cmd
}
