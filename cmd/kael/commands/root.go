// Package commands implements the CLI commands for kael.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pabloism0x/kael/cmd"
	"github.com/pabloism0x/kael/internal/config"
	"github.com/pabloism0x/kael/internal/errors"
	"github.com/pabloism0x/kael/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// cfg holds the loaded configuration, or defaults when no file exists.
var cfg = config.Default()

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("kael version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loaded, err := config.Load("")
	if err != nil {
		configLoadErr = err
		return
	}
	cfg = loaded
}

var rootCmd = &cobra.Command{
	Use:   "kael",
	Short: "Generate AI assistant configuration from a PRD",
	Long: `kael reads a product requirements document (PRD.md with YAML
frontmatter) and generates a complete AI assistant configuration tree:
the instructions document, settings, and matched skills, agents, and
slash commands for the project's stack.

Matching is deterministic. The same PRD always produces the same files,
so generated trees can be reviewed and committed.`,
	Example: `  # Generate from PRD.md in the current directory
  kael init

  # Regenerate the instructions document after editing the PRD
  kael generate

  # See what a PRD selects without writing anything
  kael list all --from PRD.md

  # Target a different assistant
  kael init --assistant gemini`,
	PersistentPreRunE: func(cobraCmd *cobra.Command, args []string) error {
		if err := setupLogging(cobraCmd); err != nil {
			return err
		}
		return checkConfig(cobraCmd, args)
	},
	Run: func(cobraCmd *cobra.Command, _ []string) {
		_ = cobraCmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cobraCmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv("KAEL_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cobraCmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cobraCmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cobraCmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cobraCmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces config load errors before any command runs.
func checkConfig(cobraCmd *cobra.Command, _ []string) error {
	if cobraCmd.Name() == "help" || cobraCmd.Name() == "version" {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
