package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mjlc31/EASYDAY/internal/engine"
	"github.com/Mjlc31/EASYDAY/internal/ui"
)

func newAddCmd() *cobra.Command {
	var desc string
	var due string
	var quadrant string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to the matrix",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			maybeWelcome(ctx, svc, cmd.OutOrStdout())

			q, err := engine.ParseQuadrant(quadrant)
			if err != nil {
				return err
			}
			dueDate, err := parseDueDate(due)
			if err != nil {
				return err
			}

			task, err := svc.CreateTask(ctx, engine.CreateTaskInput{
				Title:       args[0],
				Description: desc,
				DueDate:     dueDate,
				Quadrant:    q,
			})
			if err != nil {
				var quota engine.QuotaError
				if errors.As(err, &quota) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" "+quota.Error()))
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Finish something first, or go unlimited: ezd upgrade"))
					return nil
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), task.ID, task.Title, ui.QuadrantTag(task.Quadrant))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&quadrant, "quadrant", "q", "q2", "Quadrant (q1|q2|q3|q4)")

	return cmd
}

func parseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", s)
	}
	return &t, nil
}
