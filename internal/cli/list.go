package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all habits with their status",
		Args:  cobra.NoArgs,
		Long: `List every stored habit with its id, title and status.

Status is one of: up to date (today recorded), today pending (only today
missing), behind (earlier days missing too).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	st, err := openStore(opts)
	if err != nil {
		return err
	}

	ids, err := st.ListIDs()
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list habits", err)
	}

	today := opts.today()
	views := make([]habitView, 0, len(ids))
	for _, id := range ids {
		h, err := st.Get(id)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to load habit", err)
		}
		view, err := newHabitView(h, today)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to evaluate habit status", err)
		}
		views = append(views, view)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(views)
	}

	if len(views) == 0 {
		return out.Success("No habits yet. Create one with: habits add <title>")
	}
	var b strings.Builder
	for i, view := range views {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-4d %-28s [%s]", view.ID, view.Title, view.statusLabel())
	}
	return out.Success(b.String())
}
