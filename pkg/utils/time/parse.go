// ABOUTME: Date utilities for ISO calendar dates used in queries and file names
// ABOUTME: Handles date-prefix validation and timezone-aware "today"

package time

import (
	"strings"
	"time"
)

// ISODate is the YYYY-MM-DD layout
const ISODate = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD string
func ParseISODate(s string) (time.Time, bool) {
	t, err := time.Parse(ISODate, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ISODatePrefix returns the first ten characters of s when they form a valid
// calendar date. Timestamps such as "2024-01-03T10:00:00" yield "2024-01-03".
func ISODatePrefix(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len(ISODate) {
		return "", false
	}
	prefix := s[:len(ISODate)]
	if _, ok := ParseISODate(prefix); !ok {
		return "", false
	}
	return prefix, true
}

// TodayIn returns today's date at midnight in the named location.
// An unknown location falls back to UTC.
func TodayIn(name string) time.Time {
	loc, err := time.LoadLocation(name)
	if err != nil || name == "" {
		loc = time.UTC
	}
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}
