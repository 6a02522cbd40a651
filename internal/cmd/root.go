package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/runger/minigrep/internal/config"
	mglog "github.com/runger/minigrep/internal/log"
	"github.com/runger/minigrep/internal/runner"
)

var (
	outputFormat string
	settingsPath string
	debugLogging bool
)

// lookupEnv is swapped out by tests.
var lookupEnv config.LookupEnvFunc = os.LookupEnv

var rootCmd = &cobra.Command{
	Use:   "minigrep <query> <filepath>",
	Short: "Print the lines of a file that contain a query",
	Long: `minigrep - print the lines of a file that contain a query

Matching is a plain substring test. Set MG_IGNORE_CASE (to any value,
even empty) to match case-insensitively. A query that starts with a dash
must follow "--".

Examples:
  minigrep duct poem.txt                     # ["safe, fast, productive."]
  MG_IGNORE_CASE=1 minigrep rUsT poem.txt    # ["Rust:", "Trust me."]
  minigrep --format lines to poem.txt        # one match per line
  minigrep --format json to poem.txt         # machine-readable output
  minigrep -- -v poem.txt                    # search for "-v"`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&outputFormat, "format", "", "output format: debug, lines, or json (default from settings, else debug)")
	rootCmd.Flags().StringVar(&settingsPath, "config", "", "path to a YAML settings file")
	rootCmd.Flags().BoolVar(&debugLogging, "debug", false, "enable debug logging on stderr")
	// Registered before cobra adds its own, which would claim -v.
	rootCmd.Flags().Bool("version", false, "print version information")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(versionTemplate())
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Build(append([]string{cmd.Name()}, args...), lookupEnv)
	if err != nil {
		if errors.Is(err, config.ErrMissingArgument) {
			cmd.PrintErrln(cmd.UsageString())
		}
		return err
	}

	settings, err := config.LoadSettingsFromFile(settingsPath)
	if err != nil {
		return err
	}

	formatName := settings.Output.Format
	if outputFormat != "" {
		formatName = outputFormat
	}
	format, err := runner.ParseFormat(formatName)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(settings.Log, debugLogging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	return runner.Run(cfg, runner.Options{
		Stdout: cmd.OutOrStdout(),
		Format: format,
		Logger: logger,
	})
}

// newLogger builds the diagnostic logger. Records go to stderr unless the
// settings name a log file.
func newLogger(ls config.LogSettings, debug bool, stderr io.Writer) (*slog.Logger, func(), error) {
	level, err := mglog.ParseLevel(ls.Level)
	if err != nil {
		return nil, nil, err
	}

	output := stderr
	closeFn := func() {}
	if ls.File != "" {
		w, err := mglog.OpenFile(mglog.FileConfig{
			Path:       ls.File,
			MaxSizeMB:  ls.MaxSizeMB,
			MaxBackups: ls.MaxBackups,
			MaxAgeDays: ls.MaxAgeDays,
			Compress:   ls.Compress,
		})
		if err != nil {
			return nil, nil, err
		}
		output = w
		closeFn = func() { _ = w.Close() }
	}

	return mglog.New(&mglog.Config{Output: output, Level: level, Debug: debug}), closeFn, nil
}
