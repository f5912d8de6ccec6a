package astrotime

import "github.com/soniakeys/unit"

// GMST returns the Greenwich Mean Sidereal Time in degrees, [0,360),
// for a Julian day. Uses the IAU 1982 polynomial in Julian centuries
// from J2000.0.
func GMST(jd float64) float64 {
	d := jd - J2000
	t := d / JulianCentury

	gmst := 280.46061837 +
		360.98564736629*d +
		0.000387933*t*t -
		t*t*t/38710000

	// PMod keeps negative intermediates (pre-epoch dates) in [0,360).
	return unit.PMod(gmst, 360)
}

// LMST returns the Local Mean Sidereal Time in degrees, [0,360), for a
// Greenwich Mean Sidereal Time and an east-positive longitude in
// degrees. For longitude 0 the result equals gmstDeg exactly.
func LMST(gmstDeg, lonDeg float64) float64 {
	return unit.PMod(gmstDeg+lonDeg, 360)
}
