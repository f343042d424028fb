// =============================================================================
// Theatre Statements - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Every other command
// is attached to it.
//
// COBRA CLI STRUCTURE:
//   statements
//   ├── statement   (print a statement for one invoice)
//   ├── validate    (check inputs without producing a statement)
//   ├── list        (print persisted statements)
//   └── version     (print build information)
//
// CONFIGURATION:
//   Before any subcommand runs, the root command:
//   1. Loads the configuration file named by --config through viper
//   2. Applies STATEMENTS_* environment overrides and bound flags
//   3. Builds the zap logger (--verbose forces debug level)
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/ginjaninja78/theatre-statements/internal/config"
	"github.com/ginjaninja78/theatre-statements/internal/logger"
	"github.com/ginjaninja78/theatre-statements/internal/pricing"
	"github.com/ginjaninja78/theatre-statements/internal/source"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared by all commands of one invocation.
type app struct {
	v *viper.Viper

	// cfgFile holds the path to the configuration file (--config).
	cfgFile string

	// verbose enables debug logging (--verbose).
	verbose bool

	// flagKeys maps each command's flags to configuration keys. Only the
	// running command's flags are bound, since several commands share keys.
	flagKeys map[*cobra.Command]map[string]string

	cfg *config.Config
	log *logger.Logger
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

func newRootCmd() *cobra.Command {
	a := &app{
		v:        config.New(),
		flagKeys: make(map[*cobra.Command]map[string]string),
	}

	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Theatre Statements - billing statements for theatrical invoices",
		Long: `Theatre Statements computes what a customer owes for a run of performances
and the loyalty credits they earned, and prints the statement as text or XML.

XML statements are also saved under the statements directory
(Extratos/Extrato_<YYYYMMDD_HHMMSS>.xml by default).

Example Usage:
  statements statement --invoice invoice.json --plays plays.json
  statements statement --invoice invoice.csv --plays plays.xlsx --format xml --customer BigCo
  statements validate --invoice invoice.yaml --plays plays.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(
		&a.cfgFile,
		"config",
		"statements.yaml",
		"Path to the configuration file",
	)
	cmd.PersistentFlags().BoolVarP(
		&a.verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	cmd.AddCommand(newStatementCmd(a))
	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI. It is called by main.main().
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// init binds cmd's flags, loads configuration and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	for flag, key := range a.flagKeys[cmd] {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return errors.Wrapf(err, "binding flag --%s", flag)
		}
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.verbose {
		level = "debug"
	}
	log, err := logger.NewLogger(level)
	if err != nil {
		return errors.Wrap(err, "failed to build logger")
	}
	a.log = log

	a.log.Debug("configuration loaded",
		"config_file", a.v.ConfigFileUsed(),
		"output_dir", cfg.Output.Dir,
		"min_lines", cfg.Pricing.MinLines,
		"max_lines", cfg.Pricing.MaxLines,
	)
	return nil
}

// loader builds an input loader from the configuration.
func (a *app) loader() *source.Loader {
	l := source.New()
	l.CSV.Delimiter = a.cfg.Input.CSVDelimiter
	l.XLSX.Sheet = a.cfg.Input.Sheet
	return l
}

// engine builds the pricing engine from the configured line clamp.
func (a *app) engine() *pricing.Engine {
	return pricing.New(pricing.ClampLines{
		Min: a.cfg.Pricing.MinLines,
		Max: a.cfg.Pricing.MaxLines,
	})
}

// bindFlag ties a command flag to a configuration key. The binding takes
// effect when cmd runs.
func (a *app) bindFlag(cmd *cobra.Command, key, flag string) {
	if cmd.Flags().Lookup(flag) == nil {
		panic(fmt.Sprintf("binding unknown flag --%s", flag))
	}
	if a.flagKeys[cmd] == nil {
		a.flagKeys[cmd] = make(map[string]string)
	}
	a.flagKeys[cmd][flag] = key
}
