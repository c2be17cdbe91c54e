package app

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the difftoml CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	if a.out != nil {
		rootCmd.SetOut(a.out)
	}
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "difftoml <file_a> <file_b>",
		Short:   "Display the difference between two config files",
		Version: a.version,
		Long: `difftoml compares two configuration documents and reports their
differences: keys unique to each side, keys with unequal values, and
(optionally) keys with equal values.

Input files are parsed by extension (.toml, .yaml, .yml); use --format
to force a parser. Finding differences is not an error: the exit code
is zero unless reading, parsing, or argument handling fails.

Examples:
  difftoml old.toml new.toml
  difftoml -e -c old.toml new.toml        # include equal keys, colorize
  difftoml -x id -x timestamp a.toml b.toml`,
		Args:              cobra.ExactArgs(2),
		PersistentPreRunE: a.setupCommand,
		RunE:              a.runDiff,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.Flags().BoolP("equal", "e", false, "also report entries with equal values")
	rootCmd.Flags().BoolP("color", "c", false, "colorize output")
	rootCmd.Flags().StringArrayP("exclude", "x", nil, "key name to exclude at any depth (repeatable)")
	rootCmd.Flags().String("format", "", "input format: auto, toml, yaml (default: by extension)")

	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/.difftoml.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("difftoml {{.Version}}\n")

	rootCmd.AddCommand(a.newVersionCommand())

	return rootCmd
}

// setupCommand is called before any command runs. It layers parsed flag
// values on top of the loaded configuration and reinitializes the logger.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// An explicit --config replaces the configuration loaded at startup;
	// flags below still apply on top of it.
	if configFile := mustGetString(cmd, "config"); configFile != "" {
		loaded, err := LoadConfigFromFile(configFile)
		if err != nil {
			return err
		}
		a.config = loaded
	}

	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	logLevel := mustGetString(cmd, "log-level")

	// The diff flags only exist on the root command
	var equal, colorize bool
	var format string
	var exclude []string
	if cmd.Flags().Lookup("equal") != nil {
		equal = mustGetBool(cmd, "equal")
		colorize = mustGetBool(cmd, "color")
		format = mustGetString(cmd, "format")
		exclude = mustGetStringArray(cmd, "exclude")
	}

	a.config.UpdateFromFlags(equal, colorize, noColor, verbose, quiet, format, logLevel, exclude)

	// An injected logger stays in place; otherwise rebuild with the
	// final flag-resolved configuration.
	if !a.customLogger {
		logger := NewLogger(a.config)
		a.logger = &logger
	}

	return nil
}

// newVersionCommand creates the version subcommand.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "difftoml %s (commit %s, built %s)\n", a.version, a.commit, a.date)
		},
	}
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetStringArray retrieves a string array flag value or panics if the
// flag doesn't exist. This should only be used for flags defined in this package.
func mustGetStringArray(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringArray(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
