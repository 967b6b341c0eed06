package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	ckerror "github.com/msto63/casekit/core/error"
	"github.com/msto63/casekit/internal/catalog"
	"github.com/msto63/casekit/utils/strtemplate"
)

var (
	renderSet    []string
	renderFile   string
	renderParams bool
)

var renderCmd = &cobra.Command{
	Use:   "render [template]",
	Short: "Render a string template",
	Long: `Renders a template. Parameters are written ${name} and can be piped
through filters: every style name plus upper, lower, trim, title, plural
and singular. Delimiters come from the [template] config table.

Examples:
  casekit render --set entity=user_profile 'type ${entity|upper-camel} struct{}'
  casekit render --set t=order_item 'SELECT * FROM ${t|plural}'
  casekit render --file model.tmpl --set entity=invoice
  casekit render --params 'func ${name|upper-camel}(${arg})'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringArrayVar(&renderSet, "set", nil, "parameter value as key=value (repeatable)")
	renderCmd.Flags().StringVar(&renderFile, "file", "", "read the template from a file")
	renderCmd.Flags().BoolVar(&renderParams, "params", false, "list the template parameters instead of rendering")
}

func runRender(cmd *cobra.Command, args []string) error {
	text, err := templateText(args)
	if err != nil {
		return err
	}

	syntax, err := catalog.TemplateSyntax(app.cfg)
	if err != nil {
		return err
	}

	tmpl, err := syntax.Parse(text)
	if err != nil {
		app.logger.LogError(err)
		return err
	}

	out := cmd.OutOrStdout()
	if renderParams {
		for _, name := range tmpl.Params() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	values, err := parseAssignments(renderSet)
	if err != nil {
		return err
	}

	filters := strtemplate.DefaultFilters().Merge(strtemplate.CaseFilters(app.registry))
	rendered, err := tmpl.Execute(values, filters)
	if err != nil {
		app.logger.LogError(err)
		return err
	}

	fmt.Fprint(out, rendered)
	if !strings.HasSuffix(rendered, "\n") {
		fmt.Fprintln(out)
	}
	return nil
}

func templateText(args []string) (string, error) {
	switch {
	case renderFile != "" && len(args) > 0:
		return "", ckerror.New("give either a template argument or --file, not both").
			WithCode(ckerror.CodeInvalidInput).
			WithOperation("cmd.render")
	case renderFile != "":
		data, err := os.ReadFile(renderFile)
		if err != nil {
			return "", ckerror.Wrap(err, "failed to read template file").
				WithCode(ckerror.CodeInvalidInput).
				WithOperation("cmd.render").
				WithDetail("file", renderFile)
		}
		return string(data), nil
	case len(args) == 1:
		return args[0], nil
	}
	return "", ckerror.New("no template given").
		WithCode(ckerror.CodeInvalidInput).
		WithOperation("cmd.render")
}

// parseAssignments turns key=value pairs into a resolver
func parseAssignments(pairs []string) (strtemplate.MapResolver, error) {
	values := make(strtemplate.MapResolver, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, ckerror.Newf("invalid --set value %q, want key=value", pair).
				WithCode(ckerror.CodeInvalidInput).
				WithOperation("cmd.parseAssignments")
		}
		values[key] = value
	}
	return values, nil
}
