package domain

import "time"

// DateLayout is the calendar-day format used for input and output.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Day truncates t to its calendar day at UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// MustDate is ParseDate for literals known to be valid.
func MustDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// AddDays moves a calendar day by n days.
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// DaysBetween returns the whole number of days from a to b (negative when b is
// before a).
func DaysBetween(a, b time.Time) int {
	return int(EpochDay(b) - EpochDay(a))
}

// EpochDay returns the day ordinal of t counted from 1970-01-01.
func EpochDay(t time.Time) int64 {
	return Day(t).Unix() / secondsPerDay
}

// FromEpochDay is the inverse of EpochDay.
func FromEpochDay(n int64) time.Time {
	return time.Unix(n*secondsPerDay, 0).UTC()
}
