// Package clock abstracts the ambient time source so date-stamping stays
// deterministic under test.
package clock

import "time"

// DateFormat is the calendar-date layout stamped on records, e.g. 2024-01-08.
const DateFormat = "2006-01-02"

// Clock is the current-time collaborator.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Date renders c.Now() in the calendar-date layout.
func Date(c Clock) string {
	return c.Now().Format(DateFormat)
}

// Fixed always reports the same instant.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time {
	return f.Time
}
