package utils

import (
	"time"
)

// NowUTC returns the current time in UTC
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseUTC parses a time string in UTC timezone
func ParseUTC(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, time.UTC)
}

// FormatUTC formats a time to string in UTC timezone
func FormatUTC(t time.Time, layout string) string {
	return t.UTC().Format(layout)
}
