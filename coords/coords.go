// Package coords provides celestial coordinate records and the
// transformations between them: equatorial (RA/Dec) to horizontal
// (Az/Alt) for a given observer and sidereal time, ecliptic to
// equatorial, and sexagesimal angle parsing and formatting.
//
// All public angles are in degrees. Right ascension is in degrees with
// the usual 15° = 1h conversion; the sexagesimal helpers accept and
// produce hour-based notation. Longitude is east-positive.
package coords

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate reports a latitude, longitude, declination, or
// right ascension outside its valid numeric range, or a malformed
// sexagesimal string.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Observer is a ground-based observer location.
type Observer struct {
	LatDeg float64 // latitude in degrees, north positive, -90 to 90
	LonDeg float64 // longitude in degrees, east positive, -180 to 180
	Name   string  // optional name for the site
}

// Validate checks the observer's coordinates against their ranges.
func (o Observer) Validate() error {
	if o.LatDeg < -90 || o.LatDeg > 90 {
		return fmt.Errorf("%w: latitude %g out of range [-90,90]", ErrInvalidCoordinate, o.LatDeg)
	}
	if o.LonDeg < -180 || o.LonDeg > 180 {
		return fmt.Errorf("%w: longitude %g out of range [-180,180]", ErrInvalidCoordinate, o.LonDeg)
	}
	return nil
}

// Equatorial is a position on the celestial sphere in the equatorial
// frame (J2000 unless stated otherwise by the caller).
type Equatorial struct {
	RADeg  float64 // right ascension in degrees, 0 to 360
	DecDeg float64 // declination in degrees, -90 to 90
}

// Validate checks the coordinate against its ranges.
func (e Equatorial) Validate() error {
	if e.RADeg < 0 || e.RADeg >= 360 {
		return fmt.Errorf("%w: right ascension %g out of range [0,360)", ErrInvalidCoordinate, e.RADeg)
	}
	if e.DecDeg < -90 || e.DecDeg > 90 {
		return fmt.Errorf("%w: declination %g out of range [-90,90]", ErrInvalidCoordinate, e.DecDeg)
	}
	return nil
}

// Horizontal is an observer-relative position.
//
// Azimuth is measured from north through east: 0° = N, 90° = E,
// 180° = S, 270° = W. Altitude is 0° at the horizon and 90° at zenith.
type Horizontal struct {
	AzDeg  float64 // azimuth in degrees, [0,360)
	AltDeg float64 // altitude in degrees, [-90,90]
}
