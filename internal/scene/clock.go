// Package scene holds the per-demo animation state. Everything here is a pure
// function of elapsed time or key input, so it runs without a GL context.
package scene

import "time"

// Clock measures elapsed wall-clock time from a start mark.
type Clock struct {
	now   func() time.Time
	start time.Time
}

// NewClock returns a clock reading the monotonic system time.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource returns a clock reading now, for tests.
func NewClockWithSource(now func() time.Time) *Clock {
	c := &Clock{now: now}
	c.start = now()
	return c
}

// Start records the current time as the start mark.
func (c *Clock) Start() {
	c.start = c.now()
}

// Elapsed returns the seconds since the start mark.
func (c *Clock) Elapsed() float64 {
	return c.now().Sub(c.start).Seconds()
}
