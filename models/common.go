package models

import (
	"math"
	"strconv"
	"time"
)

// TimestampLayout is the ISO-8601 UTC layout with millisecond precision used for all timestamps
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// RecentLimit is the maximum number of entries returned by a listing
const RecentLimit = 10

// PageData represents common data passed to templates
type PageData struct {
	Title       string `json:"title"`
	CurrentPage string `json:"current_page"`
	Data        any    `json:"data,omitempty"`
}

// FormatTimestamp formats a time as an ISO-8601 UTC timestamp
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM:SS in its own location
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// EntryID derives an entry identifier from its creation time (Unix milliseconds)
func EntryID(t time.Time) int64 {
	return t.UnixMilli()
}

// FormatHours formats an hours total with one decimal place
func FormatHours(total float64) string {
	switch {
	case math.IsNaN(total):
		return "NaN"
	case math.IsInf(total, 1):
		return "Infinity"
	case math.IsInf(total, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(total, 'f', 1, 64)
}

// SumHours adds up the hours of all entries.
// Any entry with non-numeric hours makes the total NaN.
func SumHours(entries []TimesheetEntry) float64 {
	total := 0.0
	for i := range entries {
		hours, ok := entries[i].HoursValue()
		if !ok {
			return math.NaN()
		}
		total += hours
	}
	return total
}

// RecentEntries returns the last limit entries, most recently inserted first
func RecentEntries(entries []TimesheetEntry, limit int) []TimesheetEntry {
	n := min(limit, len(entries))
	recent := make([]TimesheetEntry, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		recent = append(recent, entries[i])
	}
	return recent
}
