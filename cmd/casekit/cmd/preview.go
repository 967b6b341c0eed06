package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/casekit/internal/tui"
)

var previewSource string

var previewCmd = &cobra.Command{
	Use:   "preview [name]",
	Short: "Interactive live preview of all styles",
	Long: `Starts a terminal UI that converts the typed name into every style
while typing.

Navigation:
  Tab/Shift+Tab  - change the source style
  Ctrl+L         - clear the input
  Esc/Ctrl+C     - quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewSource, "from", "f", AutoStyle, "initial source style")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := tui.Config{Registry: app.registry, Source: previewSource}
	if len(args) == 1 {
		cfg.Initial = args[0]
	}

	if err := tui.Run(cfg); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "preview failed: %v\n", err)
		return err
	}
	return nil
}
