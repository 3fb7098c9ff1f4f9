package store

import (
	"strings"

	"github.com/ersincine/habit-tracker/internal/habit"
)

// Separator is the boundary marker line between record sections.
// It must be matched as a whole line: the first occurrence after line 0
// ends the title, the last occurrence in the record ends the description.
const Separator = "-#-#-#-#-#-#-#-#-#-#-#-#-#-#-#-#-#-#-#-#-"

// Encode serializes a habit to its record bytes. Encoding is a pure
// function of the habit's fields, so saving unchanged state is
// byte-for-byte idempotent.
func Encode(h *habit.Habit) []byte {
	var b strings.Builder
	b.WriteString(h.Title)
	b.WriteByte('\n')
	b.WriteString(Separator)
	b.WriteByte('\n')
	b.WriteString(h.Description)
	b.WriteByte('\n')
	b.WriteString(Separator)
	b.WriteByte('\n')
	b.WriteString(h.Start.String())
	b.WriteByte('\n')

	codes := make([]string, len(h.Series))
	for i, r := range h.Series {
		codes[i] = r.String()
	}
	b.WriteString(strings.Join(codes, "\n"))
	b.WriteByte('\n')

	return []byte(b.String())
}

// Decode parses record bytes into a habit with the given id.
//
// All malformed shapes surface as CorruptRecordError: fewer than two lines,
// a missing title separator on line 1, no second separator, a second
// separator adjacent to the first (the description slot may hold an empty
// string but never vanish entirely), a bad start date, or a bad result
// code.
func Decode(id int, data []byte) (*habit.Habit, error) {
	lines := splitLines(string(data))

	if len(lines) < 2 {
		return nil, &CorruptRecordError{ID: id, Reason: "record has fewer than 2 lines"}
	}
	if lines[1] != Separator {
		return nil, &CorruptRecordError{ID: id, Reason: "line 1 is not the separator"}
	}

	lastSep := -1
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i] == Separator {
			lastSep = i
			break
		}
	}
	if lastSep == 1 {
		return nil, &CorruptRecordError{ID: id, Reason: "no second separator"}
	}
	if lastSep == 2 {
		return nil, &CorruptRecordError{ID: id, Reason: "second separator adjacent to first"}
	}

	title := lines[0]
	description := strings.Join(lines[2:lastSep], "\n")

	if lastSep+1 >= len(lines) {
		return nil, &CorruptRecordError{ID: id, Reason: "missing start date line"}
	}
	start, err := habit.ParseDate(lines[lastSep+1])
	if err != nil {
		return nil, &CorruptRecordError{ID: id, Reason: err.Error()}
	}

	seriesLines := lines[lastSep+2:]
	var series []habit.Result
	if !(len(seriesLines) == 1 && seriesLines[0] == "") {
		series = make([]habit.Result, 0, len(seriesLines))
		for _, line := range seriesLines {
			r, err := habit.ParseResult(line)
			if err != nil {
				return nil, &CorruptRecordError{ID: id, Reason: err.Error()}
			}
			series = append(series, r)
		}
	}

	return &habit.Habit{
		ID:          id,
		Title:       title,
		Description: description,
		Start:       start,
		Series:      series,
	}, nil
}

// splitLines splits on newlines without yielding a phantom empty line for
// the record's trailing newline. An empty-series record still carries one
// genuinely empty final line, which this preserves.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
