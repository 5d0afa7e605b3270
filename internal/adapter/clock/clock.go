// Package clock provides the system time source used by the services.
// Timestamps are UTC and truncated to microseconds to match the precision
// of the timestamptz columns they are stored in.
package clock

import "time"

// System reads the wall clock.
type System struct{}

func NewSystem() System {
	return System{}
}

// Now returns the current UTC time truncated to microsecond precision.
func (System) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
