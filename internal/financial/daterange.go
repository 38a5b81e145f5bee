// Package financial computes the dashboard statistics and the date-range
// filtering every money report shares.
package financial

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Open bounds are widened to these sentinels so a single comparison covers
// every case.
const (
	minDate = "1900-01-01"
	maxDate = "2100-12-31"
)

// DateOnly strips the time part of an ISO timestamp, so both plain dates and
// full RFC3339 stamps compare on the day.
func DateOnly(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, DateOnly(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// InRange reports whether a record's date falls inside [start, end]. Empty
// bounds are open. A record whose date cannot be parsed is excluded rather
// than poisoning the totals; an unparseable bound excludes everything.
func InRange(date, start, end string) bool {
	if start == "" {
		start = minDate
	}
	if end == "" {
		end = maxDate
	}

	d, ok := parseDay(date)
	if !ok {
		return false
	}
	s, ok := parseDay(start)
	if !ok {
		return false
	}
	e, ok := parseDay(end)
	if !ok {
		return false
	}
	return !d.Before(s) && !d.After(e)
}

// FilterByRange keeps the records whose date (extracted by dateOf) falls in
// the range.
func FilterByRange[T any](records []T, start, end string, dateOf func(T) string) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if InRange(dateOf(r), start, end) {
			out = append(out, r)
		}
	}
	return out
}
