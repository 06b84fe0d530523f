// Package countdown computes the time left on a limited offer.
package countdown

import (
	"time"

	"endpointmedia.co.za/web/internal/config"
)

// DefaultEnd is the close of the December special: 15 December 2025, one
// second before midnight in Johannesburg.
var DefaultEnd = time.Date(2025, time.December, 15, 23, 59, 59, 0, config.SAST)

// Remaining is the whole days, hours and minutes until an offer ends.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Expired bool
}

// Until returns the time left between now and end. Every field is zero and
// Expired is set once now reaches end.
func Until(now, end time.Time) Remaining {
	d := end.Sub(now)
	if d <= 0 {
		return Remaining{Expired: true}
	}
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	return Remaining{Days: days, Hours: hours, Minutes: int(d / time.Minute)}
}

// Clock is a countdown bound to an end instant and a time source.
type Clock struct {
	End time.Time
	Now func() time.Time
}

// New returns a Clock for end. A zero end falls back to DefaultEnd.
func New(end time.Time, now func() time.Time) Clock {
	if end.IsZero() {
		end = DefaultEnd
	}
	if now == nil {
		now = time.Now
	}
	return Clock{End: end, Now: now}
}

// Remaining reports the time left right now.
func (c Clock) Remaining() Remaining {
	return Until(c.Now(), c.End)
}
