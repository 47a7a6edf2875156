package root

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mjlc31/EASYDAY/internal/engine"
	"github.com/Mjlc31/EASYDAY/internal/export"
	"github.com/Mjlc31/EASYDAY/internal/ui"
)

func newImportCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Restore the task ledger from a JSON backup",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("backup file is required")
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

			existing, err := svc.TaskRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			if len(existing) > 0 && !force {
				return fmt.Errorf("ledger has %d tasks; pass --force to overwrite them", len(existing))
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open backup: %w", err)
			}
			defer f.Close()

			tasks, err := export.ReadJSON(f)
			if err != nil {
				return err
			}
			// A restored ledger feeds the quadrant-coverage bonus, so
			// every quadrant value must be one of the four.
			for i, t := range tasks {
				q, err := engine.ParseQuadrant(t.Quadrant)
				if err != nil {
					return fmt.Errorf("backup task %d: %w", t.ID, err)
				}
				tasks[i].Quadrant = string(q)
			}
			if err := svc.TaskRepo().ReplaceAll(ctx, svc.DB(), tasks); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d tasks restored\n", ui.Good.Render(ui.IconDone+" Imported"), len(tasks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite the current ledger")

	return cmd
}
