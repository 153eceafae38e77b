package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/hungarian/internal/config"
	"github.com/katalvlaran/hungarian/internal/logging"
)

// RootOptions holds the state shared by all commands. Config and Logger are
// filled in before any subcommand runs.
type RootOptions struct {
	ConfigPath string
	Maximize   bool

	Config config.Config
	Logger *zap.Logger

	v *viper.Viper
}

const longHelp = `Solve the assignment problem with the Hungarian method.

Given an n×n matrix where cell (i, j) is the cost of giving task j to
worker i, hungarian finds the one-to-one assignment with the smallest total
cost, or with --maximize the largest total profit.

How to use it:

  1. Write the matrix, one row per line, cells separated by spaces, commas
     or semicolons. YAML or JSON documents are accepted as well, with
     several problems under "problems:".
  2. Choose the objective: leave --maximize off to minimize, set it to
     maximize.
  3. Run "hungarian solve FILE" (or pipe the matrix to stdin).
  4. The result lists the assignment, the row→column pairs (1-based) and
     the total cost.

Matrices larger than --max-size (10 by default, 0 for no limit) are
rejected. Every cell must be a finite number.

Settings come from flags, HUNGARIAN_* environment variables and an
optional hungarian.yaml, in that order of precedence.`

// NewRootCommand creates the root command of the hungarian CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "hungarian",
		Short:         "Hungarian method assignment solver",
		Long:          longHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	// Global flags
	fs := cmd.PersistentFlags()
	fs.StringVar(&opts.ConfigPath, "config", "", "config file (default ./hungarian.yaml if present)")
	fs.BoolVarP(&opts.Maximize, "maximize", "m", false, "maximize the total instead of minimizing it")
	fs.String("objective", "min", "objective (min|max)")
	fs.String("format", "text", "output format (text|json|yaml)")
	fs.String("input-format", "auto", "input format (auto|yaml|json|grid)")
	fs.String("lang", "en", "language of text output (en|ru)")
	fs.Int("max-size", config.DefaultMaxSize, "largest accepted matrix order, 0 for no limit")
	fs.Int("workers", 4, "problems solved in parallel")
	fs.String("log-level", "warn", "log level (debug|info|warn|error)")
	fs.String("log-encoding", "console", "log encoding (console|json)")

	for key, flag := range map[string]string{
		config.KeyObjective:   "objective",
		config.KeyFormat:      "format",
		config.KeyInputFormat: "input-format",
		config.KeyLang:        "lang",
		config.KeyMaxSize:     "max-size",
		config.KeyWorkers:     "workers",
		config.KeyLogLevel:    "log-level",
		config.KeyLogEncoding: "log-encoding",
	} {
		_ = opts.v.BindPFlag(key, fs.Lookup(flag))
	}

	// Add subcommands
	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func (o *RootOptions) init() error {
	cfg, err := config.Load(o.v, o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "configuration", err)
	}
	if o.Maximize {
		cfg.Objective = "max"
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		return WrapExitError(ExitCommandError, "logger", err)
	}
	o.Config = cfg
	o.Logger = log
	log.Debug("configuration loaded",
		zap.String("config_file", o.v.ConfigFileUsed()),
		zap.String("objective", cfg.Objective),
		zap.Int("max_size", cfg.MaxSize),
		zap.Int("workers", cfg.Workers))

	return nil
}
