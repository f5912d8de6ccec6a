package astrotime

import "math"

// J2000 is the Julian day of the J2000.0 epoch, 2000-01-01 12:00:00 UTC.
const J2000 = 2451545.0

// JulianCentury is the number of days in a Julian century.
const JulianCentury = 36525.0

// JulianDay converts an Instant to a Julian day number. The fractional
// part encodes time of day with the usual .5 = midnight convention,
// after shifting to UTC by the instant's offset.
func JulianDay(i Instant) (float64, error) {
	if err := i.Validate(); err != nil {
		return 0, err
	}

	y := float64(i.Year)
	m := float64(i.Month)
	d := float64(i.Day)

	// January and February count as months 13 and 14 of the prior year.
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian century correction.
	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + b - 1524.5

	return jd + i.utcDayFraction(), nil
}

// JulianCenturies returns the count of Julian centuries between jd and
// the J2000.0 epoch. Negative for instants before the epoch.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / JulianCentury
}
