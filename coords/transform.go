package coords

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/omkarium/astronav/astrotime"
)

// HourAngle returns the local hour angle in degrees, [0,360), for a
// local mean sidereal time and a right ascension, both in degrees.
func HourAngle(lmstDeg, raDeg float64) float64 {
	return unit.PMod(lmstDeg-raDeg, 360)
}

// EquatorialToHorizontal converts an equatorial coordinate to a
// horizontal one for an observer at latitude latDeg whose local mean
// sidereal time is lmstDeg.
//
// The altitude comes from the arcsin identity
//
//	sin(alt) = sin(dec)·sin(lat) + cos(dec)·cos(lat)·cos(H)
//
// and the azimuth from a two-argument arctangent, which keeps the
// east/west distinction that a bare arccos would lose. At the zenith
// or nadir the azimuth is mathematically indeterminate; atan2(0,0)
// makes the returned value 0 there, which is a convention, not a
// derived fact.
func EquatorialToHorizontal(eq Equatorial, lmstDeg, latDeg float64) Horizontal {
	lat := degToRad(latDeg)
	dec := degToRad(eq.DecDeg)
	ha := degToRad(HourAngle(lmstDeg, eq.RADeg))

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	// Clamp to [-1,1] to absorb floating point error at the zenith.
	if sinAlt > 1 {
		sinAlt = 1
	} else if sinAlt < -1 {
		sinAlt = -1
	}
	alt := math.Asin(sinAlt)

	az := math.Atan2(
		-math.Sin(ha)*math.Cos(dec),
		math.Cos(lat)*math.Sin(dec)-math.Sin(lat)*math.Cos(dec)*math.Cos(ha),
	)

	return Horizontal{
		AzDeg:  unit.PMod(radToDeg(az), 360),
		AltDeg: radToDeg(alt),
	}
}

// AtInstant converts an equatorial coordinate to a horizontal one for
// an observer at a given instant, deriving the sidereal time from the
// instant. It validates both the coordinate and the observer.
func AtInstant(eq Equatorial, obs Observer, i astrotime.Instant) (Horizontal, error) {
	if err := eq.Validate(); err != nil {
		return Horizontal{}, err
	}
	if err := obs.Validate(); err != nil {
		return Horizontal{}, err
	}
	jd, err := astrotime.JulianDay(i)
	if err != nil {
		return Horizontal{}, err
	}
	lmst := astrotime.LMST(astrotime.GMST(jd), obs.LonDeg)
	return EquatorialToHorizontal(eq, lmst, obs.LatDeg), nil
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
