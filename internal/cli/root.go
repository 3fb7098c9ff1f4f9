// Package cli implements the habits command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersincine/habit-tracker/internal/config"
	"github.com/ersincine/habit-tracker/internal/habit"
	"github.com/ersincine/habit-tracker/internal/store"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Dir     string // record directory override
	Config  string // config file override

	// Clock allows overriding the wall clock (for testing).
	// If nil, defaults to habit.SystemClock.
	Clock habit.Clock
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the habits CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "habits",
		Short: "Track daily habits",
		Long: `Record a result for each daily habit, one entry per calendar day.

Habits are stored as flat records in a local directory. Each command maps
to one store operation: add, mark, backfill, list, show, remove.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			logLevel := slog.LevelWarn
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: logLevel,
			})
			slog.SetDefault(slog.New(handler))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Dir, "dir", "", "habit record directory (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "config file (default "+config.DefaultFile+")")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewMarkCommand(opts))
	cmd.AddCommand(NewBackfillCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// openStore resolves the record directory and returns a store handle.
func openStore(opts *RootOptions) (*store.Store, error) {
	dir, err := config.Resolve(opts.Dir, opts.Config)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to resolve record directory", err)
	}
	slog.Debug("opening store", "dir", dir)
	return store.New(dir, opts.clock()), nil
}

// clock returns the configured clock, defaulting to the system clock.
func (o *RootOptions) clock() habit.Clock {
	if o.Clock != nil {
		return o.Clock
	}
	return habit.SystemClock{}
}

// today is a convenience for the current date from the configured clock.
func (o *RootOptions) today() habit.Date {
	return o.clock().Today()
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		var silent bool
		if exitErr, ok := AsExitError(err); ok {
			silent = exitErr.Silent
		}
		if !silent {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return GetExitCode(err)
	}
	return ExitSuccess
}
