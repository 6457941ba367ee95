// Package civil converts the restaurant's wall-clock dates and times into
// instants. Bookings are made against the restaurant's clock, never the
// customer's or the server's.
package civil

import (
	"errors"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime = errors.New("invalid time, expected HH:MM")
)

// ToInstant anchors a civil date and time in the given zone. The process
// timezone never participates.
func ToInstant(dateISO, timeHHMM string, loc *time.Location) (time.Time, error) {
	if _, err := time.Parse(DateLayout, dateISO); err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if _, err := time.Parse(TimeLayout, timeHHMM); err != nil {
		return time.Time{}, ErrInvalidTime
	}

	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, dateISO+" "+timeHHMM, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap: a table
// freed at 21:00 is bookable from 21:00. Empty intervals occupy nothing
// and never overlap, wherever they sit.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	if !aStart.Before(aEnd) || !bStart.Before(bEnd) {
		return false
	}
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
