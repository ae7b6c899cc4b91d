// Package clock provides the time source for the lifecycle engines and the
// stats aggregator. All date comparisons in the system ("is this task
// overdue?") are made against one configured civil timezone, not the
// caller's; injecting the clock keeps "today" out of global state so tests
// can pin it.
package clock

import "time"

// Clock supplies the current time in the configured timezone.
type Clock interface {
	Now() time.Time
}

// System is the production clock, bound to a fixed civil timezone.
type System struct {
	loc *time.Location
}

// NewSystem creates a Clock that reports wall time in loc.
func NewSystem(loc *time.Location) *System {
	return &System{loc: loc}
}

// Now returns the current time in the clock's timezone.
func (c *System) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed is a clock frozen at a single instant, for tests.
type Fixed struct {
	T time.Time
}

// Now returns the frozen instant.
func (c Fixed) Now() time.Time {
	return c.T
}

// Today truncates the clock's current time to its civil date, midnight in
// the clock's timezone. Overdue comparisons are strict: due today is not
// overdue, due yesterday is.
func Today(c Clock) time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
