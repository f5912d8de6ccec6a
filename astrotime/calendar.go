package astrotime

import (
	"fmt"
	"time"
)

// cumulative days before the first of each month, non-leap year.
var daysBefore = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// IsLeapYear reports whether year is a Gregorian leap year: divisible
// by 4, except centuries not divisible by 400.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DayOfYear returns the ordinal day of the year for a date, counting
// from 1 for January 1 through 365 or 366 for December 31.
func DayOfYear(year int, month time.Month, day int) (int, error) {
	if month < time.January || month > time.December {
		return 0, fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidDate, month)
	}
	if dim := daysInMonth(year, month); day < 1 || day > dim {
		return 0, fmt.Errorf("%w: day %d out of range 1-%d for %s %d",
			ErrInvalidDate, day, dim, month, year)
	}
	doy := daysBefore[month] + day
	if month > time.February && IsLeapYear(year) {
		doy++
	}
	return doy, nil
}

func daysInMonth(year int, month time.Month) int {
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}
