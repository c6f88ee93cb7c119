package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// MonthLayout is the layout for start months in scenario files ("2025-01").
const MonthLayout = "2006-01"

// MonthsPerYear is the number of payment periods in a year.
const MonthsPerYear = 12

// MonthPosition maps a 1-based month index to its 1-based year and month-of-year.
func MonthPosition(month int) (year, monthOfYear int) {
	return (month-1)/MonthsPerYear + 1, (month-1)%MonthsPerYear + 1
}

// IsYearEnd reports whether the month index closes a year of the schedule,
// either because it is the twelfth month of a year or the final month of the term.
func IsYearEnd(month, termMonths int) bool {
	_, moy := MonthPosition(month)
	return moy == MonthsPerYear || month == termMonths
}

// YearCount returns how many (possibly partial) years a term of the given length spans.
func YearCount(termMonths int) int {
	if termMonths <= 0 {
		return 0
	}
	return (termMonths + MonthsPerYear - 1) / MonthsPerYear
}

// MonthsInYear returns the number of months of the term that fall in the given 1-based year.
func MonthsInYear(termMonths, year int) int {
	if year < 1 || year > YearCount(termMonths) {
		return 0
	}
	remaining := termMonths - (year-1)*MonthsPerYear
	if remaining > MonthsPerYear {
		return MonthsPerYear
	}
	return remaining
}

// YearsToMonths converts whole years to months.
func YearsToMonths(years int) int {
	return years * MonthsPerYear
}

// BeginningOfMonth returns midnight on the first day of the date's month.
func BeginningOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// PaymentDate returns the calendar month of the given 1-based payment when the
// first payment falls in the month of start.
func PaymentDate(start time.Time, month int) time.Time {
	return AddMonths(BeginningOfMonth(start), month-1)
}

// ParseMonth parses a "YYYY-MM" start month. An empty string yields the zero time.
func ParseMonth(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(MonthLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", value, err)
	}
	return t, nil
}
