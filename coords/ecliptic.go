package coords

import (
	"math"

	"github.com/soniakeys/unit"
)

// MeanObliquity returns the mean obliquity of the ecliptic in degrees
// for a time expressed in Julian centuries from J2000.0.
func MeanObliquity(t float64) float64 {
	return 23.439291 - 0.0130042*t - 0.00000016*t*t + 0.000000504*t*t*t
}

// EclipticToEquatorial converts ecliptic longitude and latitude to an
// equatorial coordinate, all in degrees, for a given obliquity of the
// ecliptic.
func EclipticToEquatorial(lonDeg, latDeg, obliquityDeg float64) Equatorial {
	lon := degToRad(lonDeg)
	lat := degToRad(latDeg)
	sinE, cosE := math.Sincos(degToRad(obliquityDeg))
	sinLon, cosLon := math.Sincos(lon)
	sinLat, cosLat := math.Sincos(lat)

	ra := math.Atan2(sinLon*cosE-math.Tan(lat)*sinE, cosLon)
	dec := math.Asin(sinLat*cosE + cosLat*sinE*sinLon)

	return Equatorial{
		RADeg:  unit.PMod(radToDeg(ra), 360),
		DecDeg: radToDeg(dec),
	}
}
