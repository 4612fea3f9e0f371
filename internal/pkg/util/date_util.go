package util

import (
	"time"
)

// GetMidnight truncates a time to 00:00:00 in its own location.
func GetMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD string, nil on empty input.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ResolveWindow fills the missing bounds of an inclusive date range: a
// missing end defaults to now, a missing start defaults to windowDays before
// the end.
func ResolveWindow(start, end *time.Time, windowDays int) (time.Time, time.Time) {
	var to time.Time
	if end != nil {
		to = *end
	} else {
		to = time.Now()
	}

	var from time.Time
	if start != nil {
		from = *start
	} else {
		from = to.AddDate(0, 0, -windowDays)
	}

	return GetMidnight(from), to
}
