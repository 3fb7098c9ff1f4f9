package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// RemoveOptions holds flags for the remove command.
type RemoveOptions struct {
	*RootOptions
	Yes bool
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RemoveOptions{RootOptions: rootOpts}
	sel := &selector{}

	cmd := &cobra.Command{
		Use:   "remove <title>",
		Short: "Delete a habit permanently",
		Long: `Delete a habit's record. There is no undo and no tombstone; the
habit's id is never handed out again.

Asks for confirmation unless --yes is given. Declining is not an error:
the command prints a notice and exits with status 1.

Example:
  habits remove "Read books"
  habits remove --id 0 --yes`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := ""
			if len(args) == 1 {
				title = args[0]
			}
			return runRemove(opts, sel, title, cmd)
		},
	}

	addSelectorFlag(cmd, sel)
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func runRemove(opts *RemoveOptions, sel *selector, title string, cmd *cobra.Command) error {
	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	h, err := sel.resolve(cmd, st, title)
	if err != nil {
		return err
	}

	if !opts.Yes {
		fmt.Fprintf(cmd.OutOrStdout(), "The habit %q will be removed. Proceed? (y/N) ", h.Title)
		choice, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if strings.ToLower(strings.TrimSpace(choice)) != "y" {
			fmt.Fprintln(cmd.OutOrStdout(), "The habit is kept.")
			// Declined removal exits 1 by design, without an error report.
			return &ExitError{Code: ExitFailure, Silent: true}
		}
	}

	if err := st.Remove(h.ID); err != nil {
		return WrapExitError(ExitFailure, "failed to remove habit", err)
	}
	slog.Debug("habit removed", "id", h.ID, "title", h.Title)

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(map[string]interface{}{
			"id":      h.ID,
			"title":   h.Title,
			"removed": true,
		})
	}
	return out.Success(fmt.Sprintf("Removed habit %d: %s", h.ID, h.Title))
}
