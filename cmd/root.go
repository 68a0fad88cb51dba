package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	version string
	logFile string
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	logSink io.Closer
)

// errCancelled makes the process exit with status 1 without printing
// anything, so scripts can tell a cancelled menu from a choice.
var errCancelled = errors.New("cancelled")

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "termselect",
	Short: "Interactive list selection for the terminal",
	Long: `termselect shows a list of options in the terminal and prints the ones the user picks.

Arrow keys move the highlight, Space checks options in multi-select mode,
Enter confirms and Escape cancels.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		if !errors.Is(err, errCancelled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write debug logs as JSON to this file")
}

// closeLog closes the --log-file handle. It runs after every command,
// including ones that return an error.
func closeLog() {
	if logSink == nil {
		return
	}
	logSink.Close()
	logSink = nil
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	slog.SetDefault(logger)
}

// exitAborted ends the process after Ctrl+C, closing the log first.
func exitAborted(code int) {
	closeLog()
	os.Exit(code)
}

// setupLogging points the logger at --log-file. The terminal itself is
// never logged to while a menu owns it.
func setupLogging() error {
	if logFile == "" {
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logSink = f
	logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)
	return nil
}
