package habit

import "fmt"

// Result is the recorded outcome for a single day.
//
// The value is the single-character wire code used in stored records.
type Result string

const (
	// Good means the day went as intended (done, for good habits).
	Good Result = "+"

	// Bad means the day went against the habit (done, for bad habits).
	Bad Result = "-"

	// Unknown means the outcome for the day was not determined.
	Unknown Result = "?"
)

// ParseResult converts a wire code to a Result.
// Only the exact single-character codes "+", "-" and "?" are accepted.
func ParseResult(s string) (Result, error) {
	switch Result(s) {
	case Good, Bad, Unknown:
		return Result(s), nil
	default:
		return "", fmt.Errorf("invalid result code %q (want \"+\", \"-\" or \"?\")", s)
	}
}

// String returns the wire code.
func (r Result) String() string {
	return string(r)
}
