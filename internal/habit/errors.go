package habit

import (
	"errors"
	"fmt"
)

// ValidationError reports bad input to habit construction.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// InvalidStateError reports an evaluation date before the habit's start
// date. Missing-day accounting is undefined there; it is a caller bug or a
// clock that moved backwards.
type InvalidStateError struct {
	Start Date
	Today Date
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("today (%s) precedes start date (%s)", e.Today, e.Start)
}

// CorruptStateError reports a series longer than the elapsed calendar days
// allow. This invariant cannot be broken through the public API; seeing it
// means the stored record was corrupted or mutated out-of-band.
type CorruptStateError struct {
	SeriesLen int
	MaxLen    int
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("series has %d entries but only %d days have elapsed since start", e.SeriesLen, e.MaxLen)
}

// AlreadyMarkedError reports that today already has a recorded result.
type AlreadyMarkedError struct {
	Today Date
}

func (e *AlreadyMarkedError) Error() string {
	return fmt.Sprintf("today (%s) is already marked", e.Today)
}

// BackfillRequiredError reports that days before today have no recorded
// result. MarkToday refuses to skip them; the gap must be backfilled first.
type BackfillRequiredError struct {
	// MissingBefore is the number of unrecorded days strictly before today.
	MissingBefore int
}

func (e *BackfillRequiredError) Error() string {
	return fmt.Sprintf("%d earlier day(s) are missing and must be backfilled first", e.MissingBefore)
}

// CountMismatchError reports a backfill with the wrong number of results.
// Partial fills are rejected; the count must match the gap exactly.
type CountMismatchError struct {
	Want int
	Got  int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("backfill needs exactly %d result(s), got %d", e.Want, e.Got)
}

// IsAlreadyMarked reports whether err is an AlreadyMarkedError.
// Uses errors.As to handle wrapped errors.
func IsAlreadyMarked(err error) bool {
	var e *AlreadyMarkedError
	return errors.As(err, &e)
}

// IsBackfillRequired reports whether err is a BackfillRequiredError.
func IsBackfillRequired(err error) bool {
	var e *BackfillRequiredError
	return errors.As(err, &e)
}
