package astrotime

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name     string
		instant  Instant
		expected float64
		tol      float64
	}{
		{
			name:     "J2000 epoch",
			instant:  Instant{Year: 2000, Month: time.January, Day: 1, Hour: 12},
			expected: 2451545.0,
			tol:      1e-6,
		},
		{
			name:     "Unix epoch",
			instant:  Instant{Year: 1970, Month: time.January, Day: 1},
			expected: 2440587.5,
			tol:      1e-6,
		},
		{
			name:     "2024-01-01 00:00 UTC",
			instant:  Instant{Year: 2024, Month: time.January, Day: 1},
			expected: 2460310.5,
			tol:      1e-6,
		},
		{
			name:     "2024-05-12 17:30:45 UTC",
			instant:  Instant{Year: 2024, Month: time.May, Day: 12, Hour: 17, Minute: 30, Second: 45},
			expected: 2460443.2296875,
			tol:      1e-6,
		},
		{
			name: "offset folds into UTC",
			// 13:08:47 at UTC+5:30 is 07:38:47 UTC.
			instant:  Instant{Year: 2024, Month: time.May, Day: 17, Hour: 13, Minute: 8, Second: 47, Offset: 5.5},
			expected: 2460447.5 + (7+38.0/60+47.0/3600)/24,
			tol:      1e-6,
		},
		{
			name:     "Gregorian reform start",
			instant:  Instant{Year: 1582, Month: time.October, Day: 15},
			expected: 2299160.5,
			tol:      1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JulianDay(tt.instant)
			if err != nil {
				t.Fatalf("JulianDay() error: %v", err)
			}
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("JulianDay() = %v, want %v (±%v)", got, tt.expected, tt.tol)
			}
		})
	}
}

func TestJulianDayInvalid(t *testing.T) {
	tests := []struct {
		name    string
		instant Instant
	}{
		{"month zero", Instant{Year: 2024, Month: 0, Day: 1}},
		{"month 13", Instant{Year: 2024, Month: 13, Day: 1}},
		{"day zero", Instant{Year: 2024, Month: time.May, Day: 0}},
		{"day 32", Instant{Year: 2024, Month: time.May, Day: 32}},
		{"Feb 29 non-leap", Instant{Year: 2023, Month: time.February, Day: 29}},
		{"hour 24", Instant{Year: 2024, Month: time.May, Day: 1, Hour: 24}},
		{"minute 60", Instant{Year: 2024, Month: time.May, Day: 1, Minute: 60}},
		{"second 60", Instant{Year: 2024, Month: time.May, Day: 1, Second: 60}},
		{"negative second", Instant{Year: 2024, Month: time.May, Day: 1, Second: -1}},
		{"pre-Gregorian", Instant{Year: 1582, Month: time.October, Day: 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := JulianDay(tt.instant); !errors.Is(err, ErrInvalidDate) {
				t.Errorf("JulianDay() error = %v, want ErrInvalidDate", err)
			}
		})
	}
}

// TestJulianDayAgainstMeeus cross-checks the Gregorian formula against
// an independent implementation over a spread of dates.
func TestJulianDayAgainstMeeus(t *testing.T) {
	dates := []Instant{
		{Year: 1600, Month: time.March, Day: 1},
		{Year: 1900, Month: time.February, Day: 28, Hour: 6},
		{Year: 1999, Month: time.December, Day: 31, Hour: 23, Minute: 59, Second: 59},
		{Year: 2012, Month: time.February, Day: 29, Hour: 12},
		{Year: 2024, Month: time.May, Day: 17, Hour: 13, Minute: 8, Second: 47},
		{Year: 2100, Month: time.June, Day: 15, Hour: 18, Minute: 30},
	}

	for _, i := range dates {
		got, err := JulianDay(i)
		if err != nil {
			t.Fatalf("JulianDay(%+v) error: %v", i, err)
		}
		dayFrac := float64(i.Day) + (float64(i.Hour)+float64(i.Minute)/60+i.Second/3600)/24
		want := julian.CalendarGregorianToJD(i.Year, int(i.Month), dayFrac)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("JulianDay(%04d-%02d-%02d) = %v, meeus reference = %v",
				i.Year, i.Month, i.Day, got, want)
		}
	}
}

// TestJulianDayMonotonic checks that a later instant always yields a
// strictly larger Julian day.
func TestJulianDayMonotonic(t *testing.T) {
	instants := []Instant{
		{Year: 1999, Month: time.December, Day: 31, Hour: 23, Minute: 59, Second: 59.5},
		{Year: 2000, Month: time.January, Day: 1},
		{Year: 2000, Month: time.January, Day: 1, Second: 1},
		{Year: 2000, Month: time.February, Day: 28},
		{Year: 2000, Month: time.February, Day: 29},
		{Year: 2000, Month: time.March, Day: 1},
		{Year: 2000, Month: time.December, Day: 31},
		{Year: 2001, Month: time.January, Day: 1},
		{Year: 2024, Month: time.May, Day: 12, Hour: 17, Minute: 30, Second: 45},
		{Year: 2024, Month: time.May, Day: 12, Hour: 17, Minute: 30, Second: 46},
	}

	prev, err := JulianDay(instants[0])
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range instants[1:] {
		jd, err := JulianDay(i)
		if err != nil {
			t.Fatalf("JulianDay(%+v) error: %v", i, err)
		}
		if jd <= prev {
			t.Errorf("JulianDay(%+v) = %v, not greater than previous %v", i, jd, prev)
		}
		prev = jd
	}
}

func TestJulianCenturies(t *testing.T) {
	if got := JulianCenturies(J2000); got != 0 {
		t.Errorf("JulianCenturies(J2000) = %v, want 0", got)
	}
	// One Julian century after the epoch.
	if got := JulianCenturies(J2000 + 36525); math.Abs(got-1) > 1e-12 {
		t.Errorf("JulianCenturies(J2000+36525) = %v, want 1", got)
	}
	// Before the epoch the count is negative.
	if got := JulianCenturies(2440587.5); got >= 0 {
		t.Errorf("JulianCenturies(unix epoch) = %v, want negative", got)
	}
}
