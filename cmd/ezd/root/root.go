package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mjlc31/EASYDAY/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "ezd",
	Short:         "EasyDay, the four-quadrant task tracker with XP pressure",
	Long:          "EasyDay is a local-first CLI/TUI task tracker built on the Eisenhower matrix, with XP, levels, streaks and badges pushing you to actually finish things.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newEditCmd(),
		newDoCmd(),
		newRmCmd(),
		newMoveCmd(),
		newListCmd(),
		newStatusCmd(),
		newHistoryCmd(),
		newRoastCmd(),
		newReportCmd(),
		newExportCmd(),
		newImportCmd(),
		newUpgradeCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
