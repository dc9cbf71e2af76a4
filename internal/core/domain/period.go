package domain

import "time"

// Period is a closed date interval [Start, End]. End is the last instant that
// still belongs to the period, so a record stamped on the final millisecond of
// a month stays inside that month's window.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the period, ends inclusive.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// DayPeriod returns the full calendar day containing t, in t's location.
func DayPeriod(t time.Time) Period {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Period{Start: start, End: start.AddDate(0, 0, 1).Add(-time.Nanosecond)}
}

// MonthPeriod returns the full calendar month for the given 1-indexed month
// and year. time.Date normalizes out-of-range months, which keeps the
// December/January arithmetic free of string handling.
func MonthPeriod(year int, month time.Month, loc *time.Location) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Period{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Period {
	return MonthPeriod(t.Year(), t.Month(), t.Location())
}

// PreviousMonth returns the calendar month immediately before the one
// containing t, rolling the year back when t is in January.
func PreviousMonth(t time.Time) Period {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	prev := firstOfMonth.AddDate(0, -1, 0)
	return MonthPeriod(prev.Year(), prev.Month(), prev.Location())
}
