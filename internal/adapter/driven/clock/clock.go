// Package clock provides the wall-clock implementation of the Clock port.
package clock

import (
	"time"

	"github.com/ericfisherdev/trainingpanel/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Clock = System{}

// System reads the wall clock on every call and reports it in Location.
type System struct {
	Location *time.Location
}

// NewSystem returns a System clock reporting times in loc (UTC when nil).
func NewSystem(loc *time.Location) System {
	if loc == nil {
		loc = time.UTC
	}
	return System{Location: loc}
}

// Now returns the current instant in the clock's location.
func (c System) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}
