// Package datemath provides pure calendar arithmetic used by the almanac
// calendar grid and the lunar estimator.
package datemath

import "time"

// referenceMonday is a known Monday used to derive weekday label ordering.
var referenceMonday = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// shortWeekdays holds Monday-first short weekday labels per language.
// English labels come from the stdlib formatting of the reference week.
var shortWeekdays = map[string][7]string{
	"ru": {"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"},
}

// StartOfMonth returns the first day of t's month at local midnight.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths returns t shifted by n calendar months. Overflow normalizes the
// way time.AddDate does (Jan 31 + 1 month lands in early March).
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// ISOWeekNumber returns the ISO-8601 week number of t (Thursday-anchored).
func ISOWeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// DayOfYear returns the 1-based ordinal day of t within its year.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// WeekdayNames returns seven short weekday labels starting with Monday for
// the given language. Unknown languages fall back to English.
func WeekdayNames(lang string) []string {
	if names, ok := shortWeekdays[lang]; ok {
		return names[:]
	}

	names := make([]string, 7)
	for i := 0; i < 7; i++ {
		names[i] = referenceMonday.AddDate(0, 0, i).Format("Mon")
	}
	return names
}
