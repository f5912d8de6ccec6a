// Package astrotime derives the time bases positional astronomy depends
// on: Julian day numbers, Julian centuries since J2000.0, Greenwich and
// local mean sidereal time, and day-of-year arithmetic.
//
// All angles are in degrees, all longitudes east-positive. Timezone
// handling is deliberately minimal: an Instant carries a caller-supplied
// numeric UTC offset and no timezone-database lookup ever happens.
package astrotime

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidDate reports calendar fields outside their valid ranges, or
// a date before the supported calendar epoch.
var ErrInvalidDate = errors.New("invalid date")

// Instant is a calendar date and time with a numeric UTC offset.
//
// Offset is in hours east of UTC (e.g. 5.5 for IST, -4 for EDT).
// Second may carry a fractional part.
type Instant struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second float64
	Offset float64
}

// InstantFromTime converts a time.Time to an Instant, preserving the
// zone offset in effect at t.
func InstantFromTime(t time.Time) Instant {
	_, offsetSec := t.Zone()
	return Instant{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()) + float64(t.Nanosecond())/1e9,
		Offset: float64(offsetSec) / 3600,
	}
}

// Time returns the instant as a time.Time in a fixed zone matching the
// instant's offset.
func (i Instant) Time() (time.Time, error) {
	if err := i.Validate(); err != nil {
		return time.Time{}, err
	}
	sec, frac := math.Modf(i.Second)
	loc := time.UTC
	if i.Offset != 0 {
		loc = time.FixedZone("", int(math.Round(i.Offset*3600)))
	}
	return time.Date(i.Year, i.Month, i.Day, i.Hour, i.Minute,
		int(sec), int(frac*1e9), loc), nil
}

// Validate checks every calendar field against its valid range.
//
// Dates before the Gregorian calendar reform (1582-10-15) are rejected:
// the Julian day formula used here is only correct for the Gregorian
// calendar, and a plausible-looking wrong answer is worse than an error.
func (i Instant) Validate() error {
	if i.Month < time.January || i.Month > time.December {
		return fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidDate, i.Month)
	}
	if dim := daysInMonth(i.Year, i.Month); i.Day < 1 || i.Day > dim {
		return fmt.Errorf("%w: day %d out of range 1-%d for %s %d",
			ErrInvalidDate, i.Day, dim, i.Month, i.Year)
	}
	if i.Hour < 0 || i.Hour > 23 {
		return fmt.Errorf("%w: hour %d out of range 0-23", ErrInvalidDate, i.Hour)
	}
	if i.Minute < 0 || i.Minute > 59 {
		return fmt.Errorf("%w: minute %d out of range 0-59", ErrInvalidDate, i.Minute)
	}
	if i.Second < 0 || i.Second >= 60 {
		return fmt.Errorf("%w: second %g out of range [0,60)", ErrInvalidDate, i.Second)
	}
	if before(i.Year, i.Month, i.Day, 1582, time.October, 15) {
		return fmt.Errorf("%w: %04d-%02d-%02d precedes the Gregorian calendar",
			ErrInvalidDate, i.Year, i.Month, i.Day)
	}
	return nil
}

// utcDayFraction returns the time of day as a fraction of a day,
// shifted to UTC by the instant's offset. The result may fall outside
// [0,1); JulianDay folds it into the day number.
func (i Instant) utcDayFraction() float64 {
	return (float64(i.Hour) + float64(i.Minute)/60 + i.Second/3600 - i.Offset) / 24
}

func before(y1 int, m1 time.Month, d1, y2 int, m2 time.Month, d2 int) bool {
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
