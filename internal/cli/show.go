package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	sel := &selector{}

	cmd := &cobra.Command{
		Use:   "show <title>",
		Short: "Show one habit in full",
		Long: `Show a habit's record: start date, description, the result series
(one character per day from the start date) and how many days are missing.

Example:
  habits show "Read books"
  habits show --id 0`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := ""
			if len(args) == 1 {
				title = args[0]
			}
			return runShow(rootOpts, sel, title, cmd)
		},
	}

	addSelectorFlag(cmd, sel)

	return cmd
}

func runShow(opts *RootOptions, sel *selector, title string, cmd *cobra.Command) error {
	st, err := openStore(opts)
	if err != nil {
		return err
	}
	h, err := sel.resolve(cmd, st, title)
	if err != nil {
		return err
	}

	view, err := newHabitView(h, opts.today())
	if err != nil {
		return WrapExitError(ExitFailure, "failed to evaluate habit status", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(view)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Habit %d: %s\n", view.ID, view.Title)
	fmt.Fprintf(&b, "Start:  %s\n", view.Start)
	fmt.Fprintf(&b, "Series: %s\n", strings.Join(view.Series, ""))
	fmt.Fprintf(&b, "Status: %s", view.statusLabel())
	if view.Description != "" {
		fmt.Fprintf(&b, "\nDescription:\n")
		for i, line := range strings.Split(view.Description, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "  %s", line)
		}
	}
	return out.Success(b.String())
}
