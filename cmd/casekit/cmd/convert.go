package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	ckerror "github.com/msto63/casekit/core/error"
	cklog "github.com/msto63/casekit/core/log"
	"github.com/msto63/casekit/utils/namecase"
)

var (
	convertFrom     string
	convertTo       string
	convertPlural   bool
	convertSingular bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [name...]",
	Short: "Convert names into another style",
	Long: `Converts every name from the source style into the target style.
Names are taken from the arguments or, without arguments, one per line
from standard input.

With --from auto (the default) any mix of separators and camel humps is
accepted.

Examples:
  casekit convert --to upper-underscore maxRetryCount
  casekit convert --from lower-hyphen --to upper-camel first-second
  casekit convert --to upper-camel --plural user_profile
  cat fields.txt | casekit convert --to lower-camel`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertFrom, "from", "f", AutoStyle, "source style or auto")
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "target style")
	convertCmd.Flags().BoolVar(&convertPlural, "plural", false, "pluralize the last word")
	convertCmd.Flags().BoolVar(&convertSingular, "singular", false, "singularize the last word")
	_ = convertCmd.MarkFlagRequired("to")
	convertCmd.MarkFlagsMutuallyExclusive("plural", "singular")
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, err := lookupStyle(convertFrom)
	if err != nil {
		return err
	}
	to, err := lookupStyle(convertTo)
	if err != nil {
		return err
	}

	names, err := inputNames(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	convert := namecase.Convert
	switch {
	case convertPlural:
		convert = namecase.ConvertPlural
	case convertSingular:
		convert = namecase.ConvertSingular
	}

	timer := app.logger.StartTimer("convert").
		WithField("from", convertFrom).
		WithField("to", convertTo).
		WithField("names", len(names))
	defer timer.Stop()

	trace := app.logger.IsLevelEnabled(cklog.LevelTrace)
	out := cmd.OutOrStdout()
	for _, name := range names {
		converted, err := convert(name, from, to)
		if err != nil {
			app.logger.LogError(err)
			return ckerror.Wrap(err, fmt.Sprintf("cannot convert %q", name)).
				WithOperation("cmd.convert").
				WithDetail("name", name)
		}
		fmt.Fprintln(out, converted)
		if trace {
			app.logger.Trace("converted", cklog.Fields{"name": name, "result": converted})
		}
	}
	return nil
}

// inputNames returns args, or the non-blank lines of in when args is empty
func inputNames(in io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if in == os.Stdin && stdinIsTerminal() {
		return nil, ckerror.New("no names given as arguments or on standard input").
			WithCode(ckerror.CodeInvalidInput).
			WithOperation("cmd.inputNames")
	}

	var names []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			names = append(names, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, ckerror.Wrap(err, "failed to read standard input").
			WithCode(ckerror.CodeInvalidInput).
			WithOperation("cmd.inputNames")
	}
	return names, nil
}
