// Package habit implements the habit domain model.
//
// A Habit is a daily activity with a start date and an ordered series of
// per-day results. Index 0 of the series corresponds to the start date,
// index k to start date + k days. The series grows strictly in calendar
// order and can never extend past "today".
//
// The package is pure: it performs no I/O and never reads the wall clock
// itself. Callers obtain "today" from a Clock and pass it in explicitly,
// so calendar-dependent behavior is evaluated at call time and is fully
// deterministic under test.
//
// The one non-trivial algorithm is missing-day accounting: given the start
// date, the series length, and today, how many calendar days have no
// recorded result. All mutations (MarkToday, MarkMissingDays) are defined
// in terms of it, which is what keeps the series gap-free.
//
// Only daily habits are supported. Weekly/monthly cadences and
// n-times-per-period schedules are out of scope.
package habit
