package utils

import "time"

const timestampLayout = "2006-01-02 15:04:05"

// Timestamp returns the current local time formatted for document headers.
func Timestamp() string {
	return FormatTimestamp(time.Now())
}

// FormatTimestamp returns the provided time formatted using the local time zone.
func FormatTimestamp(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.In(time.Local).Format(timestampLayout)
}
