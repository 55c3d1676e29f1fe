package validator

import (
	"strings"
	"time"
)

// dateLayouts are tried in order when a date is given as a string.
// Dashes mean day-month-year, slashes month/day/year and dots day.month.year.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
	"02-01-2006 15:04:05",
	"02-01-2006",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"02.01.2006 15:04:05",
	"02.01.2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	"January 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Date passes for time values and strings in one of the supported layouts.
func Date(value any) bool {
	_, ok := parseTime(value, time.Now())
	return ok
}

// DateBefore passes when value is strictly earlier than bound.
func DateBefore(value, bound any) bool {
	now := time.Now()
	t, ok := parseTime(value, now)
	if !ok {
		return false
	}
	b, ok := parseTime(bound, now)
	return ok && t.Before(b)
}

// DateAfter passes when value is strictly later than bound.
func DateAfter(value, bound any) bool {
	now := time.Now()
	t, ok := parseTime(value, now)
	if !ok {
		return false
	}
	b, ok := parseTime(bound, now)
	return ok && t.After(b)
}

func parseTime(value any, now time.Time) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	}

	s, ok := asString(value)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch strings.ToLower(s) {
	case "now":
		return now, true
	case "today", "midnight":
		return midnight, true
	case "tomorrow":
		return midnight.AddDate(0, 0, 1), true
	case "yesterday":
		return midnight.AddDate(0, 0, -1), true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
