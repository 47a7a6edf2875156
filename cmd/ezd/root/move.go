package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Mjlc31/EASYDAY/internal/ui"
)

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Cycle a task to the next quadrant (Q1→Q2→Q3→Q4→Q1)",
		Args:  requireIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			next, err := svc.CycleQuadrant(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d → %s\n", ui.Good.Render("Moved"), id, ui.QuadrantTag(string(next)))
			return nil
		},
	}

	return cmd
}
