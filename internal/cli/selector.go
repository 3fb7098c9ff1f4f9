package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersincine/habit-tracker/internal/habit"
	"github.com/ersincine/habit-tracker/internal/store"
)

// selector picks one habit, by title positional or by --id.
type selector struct {
	id int
}

// addSelectorFlag registers the --id flag on commands that target one habit.
func addSelectorFlag(cmd *cobra.Command, sel *selector) {
	cmd.Flags().IntVar(&sel.id, "id", 0, "select the habit by id instead of title")
}

// resolve loads the selected habit. title must be empty when --id is set
// and non-empty otherwise.
func (sel *selector) resolve(cmd *cobra.Command, st *store.Store, title string) (*habit.Habit, error) {
	if cmd.Flags().Changed("id") {
		if title != "" {
			return nil, NewExitError(ExitCommandError, "pass either a title or --id, not both")
		}
		h, err := st.Get(sel.id)
		if err != nil {
			return nil, WrapExitError(ExitFailure, "failed to load habit", err)
		}
		return h, nil
	}

	if title == "" {
		return nil, NewExitError(ExitCommandError, "a habit title (or --id) is required")
	}
	h, err := st.GetByTitle(title)
	if err != nil {
		return nil, WrapExitError(ExitFailure, "failed to load habit", err)
	}
	return h, nil
}

// parseResultArg converts a user-supplied result to a habit.Result.
// Accepts the spelled-out names and the single-character wire codes.
func parseResultArg(s string) (habit.Result, error) {
	switch strings.ToLower(s) {
	case "good":
		return habit.Good, nil
	case "bad":
		return habit.Bad, nil
	case "unknown":
		return habit.Unknown, nil
	}
	return habit.ParseResult(s)
}
