package dateutil

import (
	"time"
)

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// YearLength returns the calendar length (365 or 366) of the year the date
// falls in. Day-weighted rate math divides by this, not by the span's own
// day count.
func YearLength(date time.Time) int {
	return DaysInYear(date.Year())
}

// MonthSpan calculates the whole-month count between two dates. A partial
// trailing month (end day-of-month before begin day-of-month) does not count.
// Callers apply their own off-by-one corrections; those corrections differ
// between rate families and are not unified here.
func MonthSpan(begin, end time.Time) int {
	months := (end.Year()-begin.Year())*12 + int(end.Month()) - int(begin.Month())
	if end.Day() < begin.Day() {
		months--
	}
	return months
}

// DayCount calculates the number of calendar days from begin (inclusive) to
// end (exclusive). Strategies that need an inclusive count add 1 themselves.
func DayCount(begin, end time.Time) int {
	b := midnightUTC(begin)
	e := midnightUTC(end)
	return int(e.Sub(b).Hours() / 24)
}

// MonthStart normalizes a date to the first day of its month at UTC midnight.
// This is the canonical key for monthly rate lookups.
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// NextMonthStart returns the first day of the month following the date's month.
func NextMonthStart(date time.Time) time.Time {
	return MonthStart(date).AddDate(0, 1, 0)
}

// EndOfMonth returns the last calendar day of the date's month.
func EndOfMonth(date time.Time) time.Time {
	return NextMonthStart(date).AddDate(0, 0, -1)
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
