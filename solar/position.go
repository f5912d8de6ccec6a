// Package solar computes apparent solar coordinates, the equation of
// time, and sunrise/solar-noon/sunset instants using low-precision
// published algorithms (Meeus, and the NOAA formulation for event
// times).
//
// Declared accuracy: results may diverge from high-precision
// ephemerides by up to a few minutes of time or a few arcminutes of
// angle. That is a property of the chosen approximation order, not a
// defect.
package solar

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/omkarium/astronav/astrotime"
	"github.com/omkarium/astronav/coords"
)

// Position holds derived solar quantities for one instant.
type Position struct {
	ApparentLonDeg    float64 // apparent ecliptic longitude in degrees
	RADeg             float64 // apparent right ascension in degrees
	DecDeg            float64 // apparent declination in degrees
	EquationOfTimeMin float64 // apparent minus mean solar time, in minutes
}

// PositionAt computes the Sun's apparent position for an instant.
func PositionAt(i astrotime.Instant) (Position, error) {
	jd, err := astrotime.JulianDay(i)
	if err != nil {
		return Position{}, err
	}
	return positionAtJD(jd), nil
}

// positionAtJD is the Meeus low-precision solar ephemeris: polynomial
// mean elements, equation of center, apparent longitude corrected for
// aberration and nutation in longitude, then the ecliptic-to-equatorial
// conversion at the corrected obliquity.
func positionAtJD(jd float64) Position {
	t := astrotime.JulianCenturies(jd)

	// Geometric mean longitude and mean anomaly, degrees.
	l0 := unit.PMod(280.46646 + 36000.76983*t + 0.0003032*t*t, 360)
	m := unit.PMod(357.52911 + 35999.05029*t - 0.0001537*t*t, 360)

	// Orbital eccentricity.
	ecc := 0.016708634 - 0.000042037*t - 0.0000001267*t*t

	// Equation of center, degrees.
	mRad := degToRad(m)
	c := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(mRad) +
		(0.019993-0.000101*t)*math.Sin(2*mRad) +
		0.000289*math.Sin(3*mRad)

	trueLon := l0 + c

	// Apparent longitude: aberration plus the Omega nutation term.
	omega := degToRad(125.04 - 1934.136*t)
	appLon := trueLon - 0.00569 - 0.00478*math.Sin(omega)

	// Obliquity, corrected by the same Omega term.
	eps := coords.MeanObliquity(t) + 0.00256*math.Cos(omega)

	eq := coords.EclipticToEquatorial(unit.PMod(appLon, 360), 0, eps)

	return Position{
		ApparentLonDeg:    unit.PMod(appLon, 360),
		RADeg:             eq.RADeg,
		DecDeg:            eq.DecDeg,
		EquationOfTimeMin: equationOfTime(l0, m, ecc, eps),
	}
}

// equationOfTime returns apparent minus mean solar time in minutes,
// from the mean longitude, mean anomaly, eccentricity, and obliquity
// (Meeus ch. 28 / NOAA form).
func equationOfTime(l0Deg, mDeg, ecc, epsDeg float64) float64 {
	y := math.Tan(degToRad(epsDeg) / 2)
	y *= y

	l0 := degToRad(l0Deg)
	m := degToRad(mDeg)

	e := y*math.Sin(2*l0) -
		2*ecc*math.Sin(m) +
		4*ecc*y*math.Sin(m)*math.Cos(2*l0) -
		0.5*y*y*math.Sin(4*l0) -
		1.25*ecc*ecc*math.Sin(2*m)

	// e is in radians of hour angle; 4 minutes of time per degree.
	return radToDeg(e) * 4
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
