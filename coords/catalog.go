package coords

// Star is a cataloged star with J2000 position and brightness.
type Star struct {
	Name string
	Eq   Equatorial
	Mag  float64 // apparent visual magnitude, lower = brighter
}

// BrightStars returns a catalog of bright navigation-grade stars,
// ordered roughly by magnitude. Coordinates are J2000 epoch, from the
// Yale Bright Star Catalog and IAU star names.
func BrightStars() []Star {
	return brightStars
}

// FindStar looks up a star by name. The second return is false when
// the catalog has no star of that name.
func FindStar(name string) (Star, bool) {
	for _, s := range brightStars {
		if s.Name == name {
			return s, true
		}
	}
	return Star{}, false
}

var brightStars = []Star{
	{"Sirius", Equatorial{101.287, -16.716}, -1.46},
	{"Canopus", Equatorial{95.988, -52.696}, -0.74},
	{"Arcturus", Equatorial{213.915, 19.182}, -0.05},
	{"Vega", Equatorial{279.235, 38.784}, 0.03},
	{"Capella", Equatorial{79.172, 45.998}, 0.08},
	{"Rigel", Equatorial{78.634, -8.202}, 0.13},
	{"Procyon", Equatorial{114.826, 5.225}, 0.34},
	{"Achernar", Equatorial{24.429, -57.237}, 0.46},
	{"Betelgeuse", Equatorial{88.793, 7.407}, 0.50},
	{"Hadar", Equatorial{210.956, -60.373}, 0.61},
	{"Altair", Equatorial{297.696, 8.868}, 0.76},
	{"Acrux", Equatorial{186.650, -63.099}, 0.76},
	{"Aldebaran", Equatorial{68.980, 16.509}, 0.85},
	{"Antares", Equatorial{247.352, -26.432}, 0.96},
	{"Spica", Equatorial{201.298, -11.161}, 0.97},
	{"Pollux", Equatorial{116.329, 28.026}, 1.14},
	{"Fomalhaut", Equatorial{344.413, -29.622}, 1.16},
	{"Deneb", Equatorial{310.358, 45.280}, 1.25},
	{"Regulus", Equatorial{152.093, 11.967}, 1.35},
	{"Castor", Equatorial{113.650, 31.889}, 1.58},
	{"Bellatrix", Equatorial{81.283, 6.350}, 1.64},
	{"Polaris", Equatorial{37.954, 89.264}, 2.02},
	{"Alphard", Equatorial{141.897, -8.659}, 2.00},
}
