package models

import "time"

// DateLayout is the wire format for observation dates (strict YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Date normalizes t to midnight UTC so day-granularity values compare and
// group correctly regardless of the wall clock they came from.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
