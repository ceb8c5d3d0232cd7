package mocks

import (
	"salas/shared/timezone"
	"sync"
	"time"
)

// Clock is a settable timezone.Clock for tests.
type Clock struct {
	mu      sync.Mutex
	current time.Time
}

// NewClock returns a clock frozen at start.
func NewClock(start time.Time) *Clock {
	return &Clock{current: start}
}

// Now implements timezone.Clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current
}

// Set moves the clock to t.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = c.current.Add(d)

	return c.current
}

var _ timezone.Clock = (*Clock)(nil)
