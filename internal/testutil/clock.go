// Package testutil provides shared test helpers.
package testutil

import (
	"sync"

	"github.com/ersincine/habit-tracker/internal/habit"
)

// FixedClock is a habit.Clock pinned to a settable date.
//
// Unlike habit.SystemClock it never moves on its own; tests advance it
// explicitly to simulate elapsed calendar days. This makes missing-day
// accounting fully deterministic and lets one scenario replay identically.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu    sync.Mutex
	today habit.Date
}

// NewFixedClock creates a clock pinned to the given date.
func NewFixedClock(today habit.Date) *FixedClock {
	return &FixedClock{today: today}
}

// Today returns the pinned date.
func (c *FixedClock) Today() habit.Date {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.today
}

// Set pins the clock to a new date.
func (c *FixedClock) Set(today habit.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.today = today
}

// Advance moves the clock forward n calendar days.
func (c *FixedClock) Advance(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.today = c.today.AddDays(n)
}
