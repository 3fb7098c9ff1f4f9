package habit

import (
	"fmt"
	"strings"
)

// Habit is a tracked daily activity.
//
// ID is allocated by the store (monotonic, never reused). Start is fixed at
// creation and immutable; the series may only grow, one entry per
// consecutive calendar day from Start, and never past today.
type Habit struct {
	ID          int
	Title       string
	Description string
	Start       Date
	Series      []Result
}

// New constructs a habit. The title must be non-empty single-line text;
// the description is free-form and may be empty. New does not persist —
// callers save explicitly.
func New(id int, title, description string, start Date, series []Result) (*Habit, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Field: "title", Message: "must not be empty"}
	}
	if strings.ContainsAny(title, "\n\r") {
		return nil, &ValidationError{Field: "title", Message: "must be a single line"}
	}
	if id < 0 {
		return nil, &ValidationError{Field: "id", Message: "must not be negative"}
	}
	return &Habit{
		ID:          id,
		Title:       title,
		Description: description,
		Start:       start,
		Series:      series,
	}, nil
}

// MissingDays returns how many calendar days have no recorded result.
//
// With includingToday, a return of 0 means today is already recorded and a
// positive n means the most recent n days including today are unrecorded.
// Without it, the count covers days strictly before today.
//
// Today must not precede the start date (InvalidStateError), and the series
// must not be longer than the elapsed days allow (CorruptStateError).
func (h *Habit) MissingDays(today Date, includingToday bool) (int, error) {
	numDays := h.Start.DaysUntil(today)
	if numDays < 0 {
		return 0, &InvalidStateError{Start: h.Start, Today: today}
	}
	if len(h.Series) > numDays+1 {
		return 0, &CorruptStateError{SeriesLen: len(h.Series), MaxLen: numDays + 1}
	}

	if includingToday {
		return numDays - len(h.Series) + 1, nil
	}
	if len(h.Series) == numDays+1 {
		// Even today is recorded.
		return 0, nil
	}
	return numDays - len(h.Series), nil
}

// TodayMarked reports whether today already has a recorded result.
func (h *Habit) TodayMarked(today Date) (bool, error) {
	missing, err := h.MissingDays(today, true)
	if err != nil {
		return false, err
	}
	return missing == 0, nil
}

// MarkToday appends today's result to the series.
//
// Fails with AlreadyMarkedError if today is recorded, and with
// BackfillRequiredError if earlier days are unrecorded — recording is
// strictly sequential and gap-free.
func (h *Habit) MarkToday(today Date, result Result) error {
	missing, err := h.MissingDays(today, true)
	if err != nil {
		return err
	}
	if missing == 0 {
		return &AlreadyMarkedError{Today: today}
	}
	if missing > 1 {
		return &BackfillRequiredError{MissingBefore: missing - 1}
	}

	h.Series = append(h.Series, result)
	return nil
}

// MarkMissingDays fills the gap between the last recorded day and today
// (inclusive or exclusive per includingToday). results[0] is the oldest
// missing day. The count must match the gap exactly (CountMismatchError);
// partial fills are rejected so the series stays consistent.
func (h *Habit) MarkMissingDays(today Date, results []Result, includingToday bool) error {
	missing, err := h.MissingDays(today, includingToday)
	if err != nil {
		return err
	}
	if len(results) != missing {
		return &CountMismatchError{Want: missing, Got: len(results)}
	}

	h.Series = append(h.Series, results...)
	return nil
}

// State describes where a habit stands relative to today.
type State int

const (
	// UpToDate: every day through today is recorded.
	UpToDate State = iota

	// TodayPending: all days before today are recorded, today is not.
	TodayPending

	// Behind: one or more days before today are unrecorded.
	Behind
)

func (s State) String() string {
	switch s {
	case UpToDate:
		return "up to date"
	case TodayPending:
		return "today pending"
	case Behind:
		return "behind"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Status returns the habit's state and, for Behind, how many days before
// today are unrecorded.
func (h *Habit) Status(today Date) (State, int, error) {
	missing, err := h.MissingDays(today, true)
	if err != nil {
		return UpToDate, 0, err
	}
	switch {
	case missing == 0:
		return UpToDate, 0, nil
	case missing == 1:
		return TodayPending, 0, nil
	default:
		return Behind, missing - 1, nil
	}
}
