package scheduler

import (
	"strings"
	"time"
)

// TimeLayout is the accepted format for requested start times
const TimeLayout = "15:04"

// ParseTimeOfDay parses a bare "HH:MM" time of day
func ParseTimeOfDay(value string) (hour, minute int, err error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(value))
	if err != nil {
		return 0, 0, ErrInvalidTime
	}
	return t.Hour(), t.Minute(), nil
}

// NextOccurrence returns the given time of day on now's calendar day in now's
// location, rolled forward one day if that moment is already in the past.
func NextOccurrence(now time.Time, timeOfDay string) (time.Time, error) {
	hour, minute, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}

	year, month, day := now.Date()
	start := time.Date(year, month, day, hour, minute, 0, 0, now.Location())
	if start.Before(now) {
		start = time.Date(year, month, day+1, hour, minute, 0, 0, now.Location())
	}

	return start, nil
}
