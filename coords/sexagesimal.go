package coords

import (
	"fmt"
	"strconv"
	"strings"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// ParseDMS parses a "DD:MM:SS" string into an angle. A leading '-'
// negates the whole angle ("-26:29:11.8"); a leading '+' is accepted.
// The seconds field may carry a fractional part.
func ParseDMS(s string) (unit.Angle, error) {
	neg, d, m, sec, err := splitSexa(s)
	if err != nil {
		return 0, err
	}
	sign := byte(' ')
	if neg {
		sign = '-'
	}
	return unit.NewAngle(sign, d, m, sec), nil
}

// ParseHMS parses a "HH:MM:SS" string (24-hour) into a right
// ascension, wrapped to [0,24h).
func ParseHMS(s string) (unit.RA, error) {
	neg, h, m, sec, err := splitSexa(s)
	if err != nil {
		return 0, err
	}
	if neg {
		return 0, fmt.Errorf("%w: negative hour angle %q", ErrInvalidCoordinate, s)
	}
	return unit.NewRA(h, m, sec), nil
}

// DMSToDeg converts a "DD:MM:SS" string to decimal degrees.
func DMSToDeg(s string) (float64, error) {
	a, err := ParseDMS(s)
	if err != nil {
		return 0, err
	}
	return a.Deg(), nil
}

// HMSToDeg converts a "HH:MM:SS" string to decimal degrees of right
// ascension (15° to the hour).
func HMSToDeg(s string) (float64, error) {
	ra, err := ParseHMS(s)
	if err != nil {
		return 0, err
	}
	return ra.Deg(), nil
}

// FormatDMS renders an angle in sexagesimal degree notation with one
// decimal on the seconds, e.g. -26°29′11.8″.
func FormatDMS(a unit.Angle) string {
	return fmt.Sprintf("%.1s", sexa.FmtAngle(a))
}

// FormatHMS renders a right ascension in sexagesimal hour notation
// with one decimal on the seconds.
func FormatHMS(ra unit.RA) string {
	return fmt.Sprintf("%.1s", sexa.FmtRA(ra))
}

func splitSexa(s string) (neg bool, d, m int, sec float64, err error) {
	rest := s
	switch {
	case strings.HasPrefix(rest, "-"):
		neg = true
		rest = rest[1:]
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	}

	parts := strings.Split(rest, ":")
	if len(parts) != 3 {
		return false, 0, 0, 0, fmt.Errorf("%w: %q is not in D:M:S form", ErrInvalidCoordinate, s)
	}
	d, err = strconv.Atoi(parts[0])
	if err == nil {
		m, err = strconv.Atoi(parts[1])
	}
	if err == nil {
		sec, err = strconv.ParseFloat(parts[2], 64)
	}
	if err != nil || d < 0 || m < 0 || m > 59 || sec < 0 || sec >= 60 {
		return false, 0, 0, 0, fmt.Errorf("%w: malformed sexagesimal %q", ErrInvalidCoordinate, s)
	}
	return neg, d, m, sec, nil
}
