package habit

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date with no time-of-day component.
//
// The wire form is "Y-M-D" with no zero padding (e.g. "2024-1-9"), matching
// the stored record format. Zero-padded input is accepted on parse.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateOf truncates a time to its calendar date in the time's location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// ParseDate parses the "Y-M-D" wire form.
// The date must be a real calendar date; "2024-2-31" is rejected.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: want Y-M-D", s)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		nums[i] = n
	}

	d := Date{Year: nums[0], Month: nums[1], Day: nums[2]}

	// time.Date normalizes out-of-range components (Feb 31 becomes Mar 2),
	// so a round-trip mismatch means the input was not a real date.
	if DateOf(d.time()) != d {
		return Date{}, fmt.Errorf("invalid date %q: no such calendar day", s)
	}

	return d, nil
}

// String returns the unpadded "Y-M-D" wire form.
func (d Date) String() string {
	return fmt.Sprintf("%d-%d-%d", d.Year, d.Month, d.Day)
}

// AddDays returns the date n calendar days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.time().AddDate(0, 0, n))
}

// DaysUntil returns the number of whole calendar days from d to other.
// Negative when other precedes d.
func (d Date) DaysUntil(other Date) int {
	return int(other.time().Sub(d.time()).Hours() / 24)
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// time converts to a UTC midnight instant. UTC keeps day arithmetic exact;
// local DST transitions would make some days 23 or 25 hours long.
func (d Date) time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}
