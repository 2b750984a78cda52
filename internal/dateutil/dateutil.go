package dateutil

import (
	"fmt"
	"time"
)

// MonthKey is the layout for budget/report month keys ("2024-03").
const MonthKey = "2006-01"

// ParseMonth parses a YYYY-MM month key.
func ParseMonth(key string) (time.Time, error) {
	t, err := time.Parse(MonthKey, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing month %q: %w", key, err)
	}

	return t, nil
}

// FormatMonth returns the YYYY-MM key for the month containing t.
func FormatMonth(t time.Time) string {
	return t.Format(MonthKey)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds returns the first and last calendar day of the month key.
// The upper bound is the month's true last day, never a fixed day 31.
func MonthBounds(key string) (time.Time, time.Time, error) {
	t, err := ParseMonth(key)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(t.Year(), t.Month(), DaysIn(t.Year(), t.Month()), 0, 0, 0, 0, time.UTC)

	return start, end, nil
}

// Date truncates t to its calendar day.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
