package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/casekit/core/config"
	ckerror "github.com/msto63/casekit/core/error"
	cklog "github.com/msto63/casekit/core/log"
	"github.com/msto63/casekit/internal/catalog"
	"github.com/msto63/casekit/utils/namecase"
	"github.com/msto63/casekit/utils/stringx"
)

// AutoStyle selects the free-form splitter instead of a registered style
const AutoStyle = "auto"

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

// app holds what PersistentPreRunE prepared for the subcommands
var app struct {
	cfg      *config.Config
	logger   *cklog.Logger
	registry *namecase.Registry
}

var rootCmd = &cobra.Command{
	Use:   "casekit",
	Short: "casekit - naming convention converter",
	Long: `casekit converts identifiers between naming conventions such as
lowerCamel, UpperCamel, kebab-case, snake_case and CONSTANT_CASE.

Built-in styles:
  lower-camel       firstSecond
  upper-camel       FirstSecond
  lower-hyphen      first-second
  upper-hyphen      FIRST-SECOND
  lower-underscore  first_second
  upper-underscore  FIRST_SECOND
  lower-dot         first.second
  title-space       First Second

Additional styles can be defined in casekit.toml under [styles.<name>].`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return ckerror.GetCode(err).ExitCode()
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./casekit.toml or $CASEKIT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console, text, logfmt or json")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	registry, err := catalog.NewRegistry(cfg)
	if err != nil {
		logger.LogError(err)
		return err
	}

	logger.Debug("configuration loaded", cklog.Fields{
		"file":   stringx.FirstNonBlank(cfg.FilePath(), "(none)"),
		"styles": len(registry.Names()),
	})

	app.cfg = cfg
	app.logger = logger.WithFields(cklog.Fields{
		"command": cmd.Name(),
		"version": Version,
	})
	app.registry = registry
	return nil
}

func loadConfig() (*config.Config, error) {
	options := config.DefaultDiscoveryOptions()
	if cfgFile == "" {
		return config.Discover(options)
	}
	return config.LoadWithOptions(cfgFile, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
}

func newLogger(cfg *config.Config, out io.Writer) (*cklog.Logger, error) {
	level, err := cklog.ParseLevel(cfg.GetString("log.level", "warn"))
	if err != nil {
		return nil, ckerror.Wrap(err, "invalid log level").
			WithCode(ckerror.CodeInvalidConfig).
			WithOperation("cmd.newLogger")
	}
	if verbose {
		level = cklog.LevelDebug
	}

	format, err := cklog.ParseFormat(stringx.FirstNonBlank(logFormat, cfg.GetString("log.format"), "console"))
	if err != nil {
		return nil, ckerror.Wrap(err, "invalid log format").
			WithCode(ckerror.CodeInvalidConfig).
			WithOperation("cmd.newLogger")
	}

	logger := cklog.NewWithConfig(cklog.Config{
		Level:  level,
		Format: format,
		Output: out,
		Name:   "casekit",
	})
	return logger.WithCorrelationID(uuid.NewString()), nil
}

// lookupStyle resolves a style name, AutoStyle included
func lookupStyle(name string) (namecase.NamingCase, error) {
	if strings.EqualFold(strings.TrimSpace(name), AutoStyle) {
		return stringx.FreeForm, nil
	}
	return app.registry.Get(name)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}

func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
