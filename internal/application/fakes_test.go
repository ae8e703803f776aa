package application_test

import "time"

// fakeClock is a settable driven.Clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) set(t time.Time) { c.now = t }

// steppingClock advances by step on every read and counts the reads.
type steppingClock struct {
	next  time.Time
	step  time.Duration
	reads int
}

func (c *steppingClock) Now() time.Time {
	now := c.next
	c.next = c.next.Add(c.step)
	c.reads++
	return now
}
