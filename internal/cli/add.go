package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ersincine/habit-tracker/internal/habit"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Description string
	Start       string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new habit",
		Long: `Create a new habit and save its record.

The start date defaults to today. A start date in the past is allowed;
the unrecorded days can be filled in afterwards with backfill.

Example:
  habits add "Read books" --description "30 minutes before bed"
  habits add Run --start 2024-1-1`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "free-form description (may be multi-line)")
	cmd.Flags().StringVar(&opts.Start, "start", "", "start date as Y-M-D (default today)")

	return cmd
}

func runAdd(opts *AddOptions, title string, cmd *cobra.Command) error {
	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}

	var start habit.Date
	if opts.Start != "" {
		start, err = habit.ParseDate(opts.Start)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --start", err)
		}
	}

	h, err := st.Create(title, opts.Description, start, nil)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create habit", err)
	}
	if err := st.Save(h); err != nil {
		return WrapExitError(ExitFailure, "failed to save habit", err)
	}
	slog.Debug("habit created", "id", h.ID, "title", h.Title, "start", h.Start)

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(map[string]interface{}{
			"id":    h.ID,
			"title": h.Title,
			"start": h.Start.String(),
		})
	}
	return out.Success(fmt.Sprintf("Created habit %d: %s (starts %s)", h.ID, h.Title, h.Start))
}
