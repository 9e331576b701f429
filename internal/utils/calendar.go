package utils

import "time"

// DayKeyLayout formats a local calendar date
const DayKeyLayout = "2006-01-02"

// StartOfDay returns local midnight of t's day
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's day
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// NextMidnight returns the first instant of the day after t
func NextMidnight(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// SameDay reports whether ts falls within [StartOfDay(day), EndOfDay(day)]
func SameDay(ts, day time.Time) bool {
	ts = ts.In(day.Location())
	return !ts.Before(StartOfDay(day)) && !ts.After(EndOfDay(day))
}

// StartOfWeek returns midnight of the most recent first day (inclusive of t's day)
func StartOfWeek(t time.Time, first time.Weekday) time.Time {
	offset := (int(t.Weekday()) - int(first) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -offset)
}

// StartOfPenaltyWeek returns the Monday that opens t's penalty week
func StartOfPenaltyWeek(t time.Time) time.Time {
	return StartOfWeek(t, time.Monday)
}

// EndOfPenaltyWeek returns the following Sunday at 23:59:59.999
func EndOfPenaltyWeek(t time.Time) time.Time {
	return StartOfPenaltyWeek(t).AddDate(0, 0, 7).Add(-time.Millisecond)
}

// StartOfJournalWeek returns the Sunday that opens t's journal week
func StartOfJournalWeek(t time.Time) time.Time {
	return StartOfWeek(t, time.Sunday)
}

// DayKey formats t's local date as YYYY-MM-DD
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD date at midnight in loc
func ParseDayKey(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, s, loc)
}
