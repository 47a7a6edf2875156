package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mjlc31/EASYDAY/internal/export"
	"github.com/Mjlc31/EASYDAY/internal/ui"
)

func newExportCmd() *cobra.Command {
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the task ledger (CSV or JSON)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			u, err := svc.UserRepo().GetOrCreateMain(ctx)
			if err != nil {
				return err
			}
			if !u.IsPremium {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconLock+" Exports are a PRO feature."))
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("ezd upgrade to take your data anywhere."))
				return nil
			}

			tasks, err := svc.TaskRepo().ListAll(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "csv":
				err = export.WriteCSV(w, tasks)
			case "json":
				err = export.WriteJSON(w, tasks)
			default:
				return fmt.Errorf("unknown format %q (want csv or json)", format)
			}
			if err != nil {
				return err
			}

			if outPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d tasks → %s\n", ui.Good.Render(ui.IconDone+" Exported"), len(tasks), outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Export format (csv|json)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")

	return cmd
}
