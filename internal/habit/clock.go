package habit

import "time"

// Clock supplies "today" for calendar-dependent operations.
//
// Production code uses SystemClock; tests inject a fixed date so missing-day
// accounting is deterministic. "Today" is re-read on every operation, never
// cached, so a long-running process crossing midnight stays correct.
type Clock interface {
	Today() Date
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Today returns the current local calendar date.
func (SystemClock) Today() Date {
	return DateOf(time.Now())
}
