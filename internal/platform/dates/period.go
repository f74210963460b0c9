// Package dates provides calendar arithmetic and human-readable "now"
// strings for display.
package dates

import (
	"strings"
	"time"
)

// Period selects a calendar unit to step back by.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Periods returns the recognized periods from shortest to longest.
func Periods() []Period {
	return []Period{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear}
}

// Valid reports whether p is one of the recognized periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	default:
		return false
	}
}

// ParsePeriod normalizes user input into a Period.
func ParsePeriod(value string) (Period, bool) {
	p := Period(strings.ToLower(strings.TrimSpace(value)))
	if !p.Valid() {
		return "", false
	}
	return p, true
}

// Subtract returns t moved back by one unit of period. Month and year steps
// clamp to the last day of the target month (March 31 becomes the last day
// of February). Unrecognized periods return t unchanged.
func Subtract(t time.Time, period Period) time.Time {
	switch period {
	case PeriodDay:
		return t.AddDate(0, 0, -1)
	case PeriodWeek:
		return t.AddDate(0, 0, -7)
	case PeriodMonth:
		return addMonths(t, -1)
	case PeriodYear:
		return addMonths(t, -12)
	default:
		return t
	}
}

func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	// Day 1 never overflows, so this lands in the target month.
	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
