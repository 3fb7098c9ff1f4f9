package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ersincine/habit-tracker/internal/habit"
)

// BackfillOptions holds flags for the backfill command.
type BackfillOptions struct {
	*RootOptions
	IncludingToday bool
}

// NewBackfillCommand creates the backfill command.
func NewBackfillCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BackfillOptions{RootOptions: rootOpts}
	sel := &selector{}

	cmd := &cobra.Command{
		Use:   "backfill <title> <result>...",
		Short: "Fill in results for missed days",
		Long: `Fill in results for days that have no recorded entry, oldest first.

The number of results must match the number of missing days exactly:
no partial fills. By default the gap runs up to yesterday; pass
--including-today to cover today as well.

Example:
  habits backfill "Read books" good good bad
  habits backfill --id 0 --including-today + - ?`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := ""
			resultArgs := args
			if !cmd.Flags().Changed("id") {
				if len(args) < 2 {
					return NewExitError(ExitCommandError, "pass a title and at least one result (or use --id)")
				}
				title, resultArgs = args[0], args[1:]
			}
			return runBackfill(opts, sel, title, resultArgs, cmd)
		},
	}

	addSelectorFlag(cmd, sel)
	cmd.Flags().BoolVar(&opts.IncludingToday, "including-today", false, "also cover today, not just days before it")

	return cmd
}

func runBackfill(opts *BackfillOptions, sel *selector, title string, resultArgs []string, cmd *cobra.Command) error {
	results := make([]habit.Result, len(resultArgs))
	for i, arg := range resultArgs {
		r, err := parseResultArg(arg)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid result", err)
		}
		results[i] = r
	}

	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	h, err := sel.resolve(cmd, st, title)
	if err != nil {
		return err
	}

	today := opts.today()
	if err := h.MarkMissingDays(today, results, opts.IncludingToday); err != nil {
		return WrapExitError(ExitFailure, "failed to backfill", err)
	}
	if err := st.Save(h); err != nil {
		return WrapExitError(ExitFailure, "failed to save habit", err)
	}
	slog.Debug("days backfilled", "id", h.ID, "title", h.Title, "count", len(results), "including_today", opts.IncludingToday)

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(map[string]interface{}{
			"id":     h.ID,
			"title":  h.Title,
			"filled": len(results),
		})
	}
	return out.Success(fmt.Sprintf("Backfilled %d day(s) for %q", len(results), h.Title))
}
