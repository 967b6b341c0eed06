package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	ckerror "github.com/msto63/casekit/core/error"
	"github.com/msto63/casekit/utils/namecase"
)

var (
	splitStyle  string
	splitOutput string
)

// alternating word colours for text output
var splitWordStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true),
}

var splitCmd = &cobra.Command{
	Use:   "split name...",
	Short: "Show the words of names",
	Long: `Splits names into words with the given style and prints the words
with their byte offsets.

Examples:
  casekit split parseHTTPRequest
  casekit split --style lower-hyphen --output json a-b-
  casekit split --style upper-camel --output yaml IPAddress`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().StringVarP(&splitStyle, "style", "s", AutoStyle, "style used to split, or auto")
	splitCmd.Flags().StringVarP(&splitOutput, "output", "o", "text", "output format: text, json or yaml")
}

type splitWord struct {
	Text  string `json:"text" yaml:"text"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

type splitResult struct {
	Name  string      `json:"name" yaml:"name"`
	Style string      `json:"style" yaml:"style"`
	Words []splitWord `json:"words" yaml:"words"`
}

func runSplit(cmd *cobra.Command, args []string) error {
	style, err := lookupStyle(splitStyle)
	if err != nil {
		return err
	}

	results := make([]splitResult, 0, len(args))
	for _, name := range args {
		spans, err := namecase.Spans(style, name)
		if err != nil {
			app.logger.LogError(err)
			return err
		}

		result := splitResult{Name: name, Style: namecase.NormalizeName(splitStyle), Words: make([]splitWord, len(spans))}
		for i, span := range spans {
			result.Words[i] = splitWord{Text: span.String(), Start: span.Start, End: span.End}
		}
		results = append(results, result)
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(splitOutput) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(results)
	case "text":
		for _, result := range results {
			words := make([]string, len(result.Words))
			for i, w := range result.Words {
				words[i] = splitWordStyles[i%len(splitWordStyles)].Render(fmt.Sprintf("%q", w.Text))
			}
			fmt.Fprintf(out, "%s: %s\n", result.Name, strings.Join(words, " "))
		}
		return nil
	}

	return ckerror.Newf("unknown output format %q (want text, json or yaml)", splitOutput).
		WithCode(ckerror.CodeInvalidInput).
		WithOperation("cmd.split")
}
