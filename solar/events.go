package solar

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/unit"

	"github.com/omkarium/astronav/astrotime"
	"github.com/omkarium/astronav/coords"
)

// ErrNoSunriseOrSunset reports a polar-day or polar-night condition:
// for the given date and latitude the sun never crosses the horizon,
// so sunrise and sunset are undefined.
var ErrNoSunriseOrSunset = errors.New("no sunrise or sunset")

// riseSetAltitudeDeg is the reference altitude of the solar center at
// rise and set: 34' of atmospheric refraction plus 16' of solar
// semidiameter below the geometric horizon.
const riseSetAltitudeDeg = -0.833

// Events holds the solar events of one date at one location, as local
// wall-clock instants carrying the requested UTC offset.
type Events struct {
	Sunrise   astrotime.Instant
	Noon      astrotime.Instant
	Sunset    astrotime.Instant
	DayLength time.Duration
}

// EventsOn computes sunrise, solar noon, and sunset for a calendar
// date at an observer location. tzOffsetHours is the clock offset of
// the desired local time, in hours east of UTC; the returned instants
// are on the given date in that offset.
//
// At latitudes where the sun stays entirely above or below the
// reference altitude on the given date, EventsOn fails with
// ErrNoSunriseOrSunset rather than returning a clamped or NaN time.
func EventsOn(year int, month time.Month, day int, obs coords.Observer, tzOffsetHours float64) (Events, error) {
	if err := obs.Validate(); err != nil {
		return Events{}, err
	}

	// Solar elements evaluated once, at local solar noon of the date.
	// The elements drift well under the declared accuracy over the
	// half-day between noon and either event.
	noonInstant := astrotime.Instant{
		Year: year, Month: month, Day: day, Hour: 12, Offset: tzOffsetHours,
	}
	jd, err := astrotime.JulianDay(noonInstant)
	if err != nil {
		return Events{}, err
	}
	pos := positionAtJD(jd)

	// Local solar noon in minutes from local midnight: the mean sun
	// crosses the meridian at 720, shifted by 4 min per degree of
	// longitude off the zone meridian and by the equation of time.
	noonMin := 720 - 4*obs.LonDeg - pos.EquationOfTimeMin + 60*tzOffsetHours

	lat := degToRad(obs.LatDeg)
	dec := degToRad(pos.DecDeg)
	cosH0 := (math.Sin(degToRad(riseSetAltitudeDeg)) - math.Sin(lat)*math.Sin(dec)) /
		(math.Cos(lat) * math.Cos(dec))

	switch {
	case cosH0 > 1:
		return Events{}, fmt.Errorf("%w: polar night at latitude %.4g on %04d-%02d-%02d",
			ErrNoSunriseOrSunset, obs.LatDeg, year, month, day)
	case cosH0 < -1:
		return Events{}, fmt.Errorf("%w: polar day at latitude %.4g on %04d-%02d-%02d",
			ErrNoSunriseOrSunset, obs.LatDeg, year, month, day)
	}

	// Half the daylight arc, in degrees of hour angle.
	h0 := radToDeg(math.Acos(cosH0))

	ev := Events{
		Sunrise:   minutesToInstant(year, month, day, noonMin-4*h0, tzOffsetHours),
		Noon:      minutesToInstant(year, month, day, noonMin, tzOffsetHours),
		Sunset:    minutesToInstant(year, month, day, noonMin+4*h0, tzOffsetHours),
		DayLength: time.Duration(8 * h0 * float64(time.Minute)),
	}
	return ev, nil
}

// minutesToInstant converts minutes from local midnight to an Instant
// on the given date. Values outside [0,1440) wrap onto the same date;
// that only happens when the zone offset is grossly mismatched to the
// longitude.
func minutesToInstant(year int, month time.Month, day int, min, offset float64) astrotime.Instant {
	m := unit.PMod(min, 1440)
	h := int(m) / 60
	mm := int(m) % 60
	sec := (m - math.Floor(m)) * 60
	return astrotime.Instant{
		Year: year, Month: month, Day: day,
		Hour: h, Minute: mm, Second: sec,
		Offset: offset,
	}
}
