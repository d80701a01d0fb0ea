package clock

import "time"

// DateFormat is the literal calendar-date layout used for daily-spin gating
const DateFormat = "2006-01-02"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// DateString formats t as a calendar date in loc.
// A nil loc keeps the time's own location.
func DateString(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DateFormat)
}
