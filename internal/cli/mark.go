package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// NewMarkCommand creates the mark command.
func NewMarkCommand(rootOpts *RootOptions) *cobra.Command {
	sel := &selector{}

	cmd := &cobra.Command{
		Use:   "mark <title> <result>",
		Short: "Record today's result",
		Long: `Record today's result for a habit.

The result is good, bad or unknown (or the short codes +, -, ?).
Recording is strictly sequential: if days before today are unrecorded,
mark refuses and the gap must be filled with backfill first.

Example:
  habits mark "Read books" good
  habits mark --id 0 +`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, resultArg, err := splitSelectorArgs(cmd, args)
			if err != nil {
				return err
			}
			return runMark(rootOpts, sel, title, resultArg, cmd)
		},
	}

	addSelectorFlag(cmd, sel)

	return cmd
}

// splitSelectorArgs separates the optional title from the trailing
// argument(s) on commands of the form "<title> <arg>..." where --id
// replaces the title.
func splitSelectorArgs(cmd *cobra.Command, args []string) (title string, rest string, err error) {
	if cmd.Flags().Changed("id") {
		if len(args) != 1 {
			return "", "", NewExitError(ExitCommandError, "with --id, pass exactly one result")
		}
		return "", args[0], nil
	}
	if len(args) != 2 {
		return "", "", NewExitError(ExitCommandError, "pass a title and a result (or use --id)")
	}
	return args[0], args[1], nil
}

func runMark(opts *RootOptions, sel *selector, title, resultArg string, cmd *cobra.Command) error {
	result, err := parseResultArg(resultArg)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid result", err)
	}

	st, err := openStore(opts)
	if err != nil {
		return err
	}
	h, err := sel.resolve(cmd, st, title)
	if err != nil {
		return err
	}

	today := opts.today()
	if err := h.MarkToday(today, result); err != nil {
		return WrapExitError(ExitFailure, "failed to mark today", err)
	}
	if err := st.Save(h); err != nil {
		return WrapExitError(ExitFailure, "failed to save habit", err)
	}
	slog.Debug("today marked", "id", h.ID, "title", h.Title, "result", result)

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(map[string]interface{}{
			"id":     h.ID,
			"title":  h.Title,
			"date":   today.String(),
			"result": result.String(),
		})
	}
	return out.Success(fmt.Sprintf("Marked %q for %s: %s", h.Title, today, result))
}
