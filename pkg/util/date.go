package util

import (
	"strconv"
	"time"
)

// timeLayouts are tried in order when parsing CSV timestamps.
var timeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime tries the known layouts and unix seconds. Returns (t, true) if any worked.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	// Unix seconds must be 10 digits so bare integers like a year field
	// fail parsing instead of mapping near the epoch.
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts >= 1_000_000_000 && ts < 10_000_000_000 {
		return time.Unix(ts, 0), true
	}
	return time.Time{}, false
}

// Day truncates a timestamp to its calendar date at UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
