package root

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mjlc31/EASYDAY/internal/ui"
)

func newUpgradeCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade to PRO (mock checkout)",
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
			if u.IsPremium {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(ui.IconCrown+" Already PRO."))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCrown, "EasyDay PRO"))
			fmt.Fprintln(out, "- unlimited pending tasks")
			fmt.Fprintln(out, "- full history heatmap + rhythm insights")
			fmt.Fprintln(out, "- brutal feedback on demand")
			fmt.Fprintln(out, "- CSV/JSON export")
			fmt.Fprintln(out, "- 1.5x XP on everything")
			fmt.Fprintln(out, "")

			if !yes {
				fmt.Fprint(out, "Confirm upgrade? [y/N] ")
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if strings.ToLower(strings.TrimSpace(line)) != "y" {
					fmt.Fprintln(out, ui.Muted.Render("Staying free. Staying limited."))
					return nil
				}
			}

			// Mock checkout: no real settlement, the flag just flips.
			if err := svc.Upgrade(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Gold.Render(ui.IconCrown+" Welcome to PRO."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
