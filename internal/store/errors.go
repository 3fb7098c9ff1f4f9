package store

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError reports a lookup miss. Exactly one of ID or Title is set,
// depending on how the habit was looked up.
type NotFoundError struct {
	ID    int
	Title string
}

func (e *NotFoundError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("no habit with title %q", e.Title)
	}
	return fmt.Sprintf("no habit with id %d", e.ID)
}

// AmbiguousTitleError reports more than one case-insensitive title match.
type AmbiguousTitleError struct {
	Title string
	IDs   []int
}

func (e *AmbiguousTitleError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("%d habits match title %q (ids %s); the search is case-insensitive",
		len(e.IDs), e.Title, strings.Join(ids, ", "))
}

// CorruptRecordError reports a stored record that does not decode.
type CorruptRecordError struct {
	ID     int
	Reason string
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("habit record %d is corrupt: %s", e.ID, e.Reason)
}

// IsNotFound reports whether err is a NotFoundError.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsAmbiguousTitle reports whether err is an AmbiguousTitleError.
func IsAmbiguousTitle(err error) bool {
	var e *AmbiguousTitleError
	return errors.As(err, &e)
}

// IsCorruptRecord reports whether err is a CorruptRecordError.
func IsCorruptRecord(err error) bool {
	var e *CorruptRecordError
	return errors.As(err, &e)
}
