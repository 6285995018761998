package dateutil

import (
	"time"
)

const dayLayout = "2006-01-02"

// DayID returns the calendar-day identifier of t in its own location. One
// rush event exists per day id.
func DayID(t time.Time) string {
	return t.Format(dayLayout)
}

// NextMidnight returns the first instant of the day after t, in the location
// of t.
func NextMidnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}

// Remaining splits the duration from now until deadline into hours, minutes,
// and seconds. All values are zero once the deadline has passed.
func Remaining(now, deadline time.Time) (hours, minutes, seconds int) {
	d := deadline.Sub(now)
	if d <= 0 {
		return 0, 0, 0
	}

	secs := int(d / time.Second)
	return secs / 3600, (secs / 60) % 60, secs % 60
}
