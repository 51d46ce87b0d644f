package render

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseDate reads the calendar date of an ISO date or timestamp. Only the
// date is used, so the result never shifts with the local time zone.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// FormatLongDate formats an ISO date as "Sunday, June 1, 2025". Empty or
// unparseable input yields "".
func FormatLongDate(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return ""
	}
	return t.Format("Monday, January 2, 2006")
}

// FormatShortDate formats an ISO date as "June 1, 2025".
func FormatShortDate(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return ""
	}
	return t.Format("January 2, 2006")
}
