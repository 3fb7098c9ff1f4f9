package cli

import (
	"fmt"

	"github.com/ersincine/habit-tracker/internal/habit"
)

// habitView is the JSON shape shared by list and show.
type habitView struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Start       string   `json:"start"`
	Series      []string `json:"series"`
	State       string   `json:"state"`
	DaysBehind  int      `json:"days_behind,omitempty"`
	TodayMarked bool     `json:"today_marked"`
}

func newHabitView(h *habit.Habit, today habit.Date) (habitView, error) {
	state, behind, err := h.Status(today)
	if err != nil {
		return habitView{}, fmt.Errorf("habit %d (%s): %w", h.ID, h.Title, err)
	}

	codes := make([]string, len(h.Series))
	for i, r := range h.Series {
		codes[i] = r.String()
	}

	return habitView{
		ID:          h.ID,
		Title:       h.Title,
		Description: h.Description,
		Start:       h.Start.String(),
		Series:      codes,
		State:       state.String(),
		DaysBehind:  behind,
		TodayMarked: state == habit.UpToDate,
	}, nil
}

// statusLabel renders the state for text output.
func (v habitView) statusLabel() string {
	if v.DaysBehind > 0 {
		return fmt.Sprintf("behind %d day(s)", v.DaysBehind)
	}
	return v.State
}
