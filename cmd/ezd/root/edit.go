package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Mjlc31/EASYDAY/internal/engine"
	"github.com/Mjlc31/EASYDAY/internal/ui"
)

func newEditCmd() *cobra.Command {
	var title string
	var desc string
	var due string
	var quadrant string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's fields",
		Args:  requireIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			t, err := svc.TaskRepo().Get(ctx, id)
			if err != nil {
				return err
			}
			if t == nil {
				return engine.NotFoundError{ID: id}
			}

			// Unset flags keep the current values; a flag passed as ""
			// clears the field.
			if !cmd.Flags().Changed("title") {
				title = t.Title
			}
			if !cmd.Flags().Changed("desc") && t.Description != nil {
				desc = *t.Description
			}
			q := engine.Quadrant(t.Quadrant)
			if quadrant != "" {
				q, err = engine.ParseQuadrant(quadrant)
				if err != nil {
					return err
				}
			}
			dueDate := t.DueDate
			if cmd.Flags().Changed("due") {
				dueDate, err = parseDueDate(due)
				if err != nil {
					return err
				}
			}

			if err := svc.UpdateTask(ctx, id, engine.UpdateTaskInput{
				Title:       title,
				Description: desc,
				DueDate:     dueDate,
				Quadrant:    q,
			}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconDone+" Updated"), id, title, ui.QuadrantTag(string(q)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "New description")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&quadrant, "quadrant", "q", "", "New quadrant (q1|q2|q3|q4)")

	return cmd
}

func requireIDArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("id is required")
	}
	if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
		return errors.New("id must be an integer")
	}
	return nil
}
