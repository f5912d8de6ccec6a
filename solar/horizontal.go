package solar

import (
	"github.com/omkarium/astronav/astrotime"
	"github.com/omkarium/astronav/coords"
)

// HorizontalAt computes the Sun's altitude and azimuth for an observer
// at an instant, by deriving the apparent RA/Dec and feeding them
// through the equatorial-to-horizontal transform at the instant's
// local mean sidereal time.
func HorizontalAt(i astrotime.Instant, obs coords.Observer) (coords.Horizontal, error) {
	if err := obs.Validate(); err != nil {
		return coords.Horizontal{}, err
	}
	jd, err := astrotime.JulianDay(i)
	if err != nil {
		return coords.Horizontal{}, err
	}

	pos := positionAtJD(jd)
	lmst := astrotime.LMST(astrotime.GMST(jd), obs.LonDeg)
	eq := coords.Equatorial{RADeg: pos.RADeg, DecDeg: pos.DecDeg}

	return coords.EquatorialToHorizontal(eq, lmst, obs.LatDeg), nil
}
