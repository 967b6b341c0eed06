package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/casekit/utils/namecase"
	"github.com/msto63/casekit/utils/stringx"
)

var stylesSample string

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available styles",
	Long: `Lists the built-in and configured styles with a sample conversion.

Examples:
  casekit styles
  casekit styles --sample "user profile id"`,
	Args: cobra.NoArgs,
	RunE: runStyles,
}

func init() {
	rootCmd.AddCommand(stylesCmd)

	stylesCmd.Flags().StringVar(&stylesSample, "sample", "parseHTTPRequest", "name converted into every style")
}

func runStyles(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	names := app.registry.Names()

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	for _, name := range names {
		nc, err := app.registry.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  %s  %s\n",
			stringx.PadRight(name, width, ' '),
			stringx.PadRight(stringx.ToStyle(stylesSample, nc), 24, ' '),
			describe(nc))
	}
	return nil
}

func describe(nc namecase.NamingCase) string {
	if s, ok := nc.(fmt.Stringer); ok {
		return stringx.Truncate(s.String(), 48, "...")
	}
	return fmt.Sprintf("%T", nc)
}
