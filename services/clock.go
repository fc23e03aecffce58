package services

import (
	"time"
	_ "time/tzdata"
)

// Clock resolves "now" and "today" in the application time zone. Every
// timestamp and date of one operation must come from the same Clock.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock: loc nil nghĩa là giờ địa phương của server, now nil là time.Now
func NewClock(loc *time.Location, now func() time.Time) *Clock {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Clock{loc: loc, now: now}
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *Clock) Today() time.Time {
	return StartOfDay(c.Now())
}

// StartOfDay truncates t to midnight in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
