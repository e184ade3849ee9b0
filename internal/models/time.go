package models

import "time"

// Timestamps are interchanged with the legacy source system as formatted
// strings, so records carry them verbatim rather than as time.Time.
const (
	TimeLayout = "2006-01-02 15:04:05"
	DateLayout = "2006-01-02"
)

// Now returns the current time in the record timestamp format.
func Now() string {
	return time.Now().Format(TimeLayout)
}
