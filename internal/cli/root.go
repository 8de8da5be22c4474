/*
PURPOSE:
  Defines the root Cobra command for the NeuralForge CLI.
  Drives exactly one run of the application.

REQUIREMENTS:
  User-specified:
  - Parse flags, build { verbose }, construct the application, run it once.
  - Any failure of the run is fatal; nothing is retried.

  Implementation-discovered:
  - Cobra's own flag parsing is disabled; ParseOptions keeps unknown and
    malformed flags instead of rejecting them.
  - Cobra must not print errors itself so the entry point reports each
    failure exactly once.
  - A panic inside Execute is still a failed run.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/neuralforge/main.go
  - Calls: ParseOptions, config.Resolve, forge.Constructor

ERROR HANDLING:
  - Returns the application's error unchanged to main.go for exit code handling.
  - Invalid settings are logged as a warning and replaced by defaults.

IMPLEMENTATION RULES:
  - Only forward Options.Config() to the application.
  - Harness logging stays at debug level.

USAGE:
  err := cli.Execute(ctx, os.Args[1:], os.Stdout, forge.NewApplication)

RELATED FILES:
  - cmd/neuralforge/main.go
  - internal/cli/options.go
*/

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/daryltucker/neuralforge/internal/config"
	"github.com/daryltucker/neuralforge/internal/forge"
	"github.com/daryltucker/neuralforge/internal/output"
)

type rootCommand struct {
	newApp forge.Constructor
}

// NewRootCommand builds the root command around the given application constructor.
func NewRootCommand(newApp forge.Constructor) *cobra.Command {
	_, cmd := newRootCommand(newApp)
	return cmd
}

func newRootCommand(newApp forge.Constructor) (*rootCommand, *cobra.Command) {
	root := &rootCommand{newApp: newApp}

	cmd := &cobra.Command{
		Use:   "neuralforge [flags] [args]",
		Short: "Run NeuralForge once",
		Long: `Runs NeuralForge once and exits.

Flags:
  -v, --verbose        Enable verbose output
  -i, --input string   Input path
  -o, --output string  Output path

Unrecognized flags are accepted and ignored. Logging can be tuned with
NEURALFORGE_CONFIG, NEURALFORGE_LOG_LEVEL and NEURALFORGE_LOG_FORMAT.
The process exits with status 1 if the run fails.`,
		Example: `  neuralforge -v
  neuralforge --input a.txt --output b.txt`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE:               root.runE,
	}
	return root, cmd
}

// Execute runs the root command with args, logging to stdout.
// Cobra's command routing is bypassed: every argument, including tokens such
// as __complete, is handed to ParseOptions.
func Execute(ctx context.Context, args []string, stdout io.Writer, newApp forge.Constructor) error {
	root, cmd := newRootCommand(newApp)
	if args == nil {
		args = []string{}
	}
	cmd.SetContext(ctx)
	cmd.SetOut(stdout)
	return root.runE(cmd, args)
}

func (r *rootCommand) runE(cmd *cobra.Command, args []string) error {
	opts, err := ParseOptions(args)
	if err != nil {
		return err
	}

	logger, settingsErr := newLogger(cmd.OutOrStdout(), opts.Verbose)
	output.SetLogger(logger)
	defer func() { _ = logger.Sync() }()
	if settingsErr != nil {
		logger.Warn("Ignoring invalid settings, using defaults", zap.Error(settingsErr))
	}

	logger.Debug("Parsed options",
		zap.Bool("verbose", opts.Verbose),
		zap.Stringp("input", opts.Input),
		zap.Stringp("output", opts.Output),
		zap.Any("extra", opts.Extra),
		zap.Strings("args", opts.Args),
	)
	if opts.Input != nil || opts.Output != nil {
		logger.Debug("Input and output are not passed to the application")
	}

	app := r.newApp(opts.Config())
	if err := run(cmd.Context(), app); err != nil {
		logger.Debug("Run failed", zap.Error(err))
		return err
	}
	logger.Debug("Run complete")
	return nil
}

// newLogger builds the logger from the resolved settings. Settings never stop
// the run: on any error the defaults are used and the error is returned for
// reporting.
func newLogger(w io.Writer, verbose bool) (*zap.Logger, error) {
	settings, err := config.Resolve(viper.New())
	if err == nil {
		var logger *zap.Logger
		if logger, err = output.NewLogger(w, settings.LogLevel, settings.LogFormat, verbose); err == nil {
			return logger, nil
		}
	}

	defaults := config.DefaultConfig()
	logger, derr := output.NewLogger(w, defaults.LogLevel, defaults.LogFormat, verbose)
	if derr != nil {
		return zap.NewNop(), err
	}
	return logger, err
}

// run calls Execute once, turning a panic into an error.
func run(ctx context.Context, app forge.Application) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("execute panicked: %v", r)
		}
	}()
	return app.Execute(ctx)
}
