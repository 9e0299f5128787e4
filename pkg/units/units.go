package units

// Physical quantities carry their unit in the type so a formula cannot mix
// solar radii with astronomical units unnoticed.

// Kelvin is an absolute temperature.
type Kelvin float64

// SolarRadius is a stellar radius in units of the Sun's radius.
type SolarRadius float64

// AU is an orbital distance in astronomical units.
type AU float64

// Kilometer is the common linear unit lengths are converted to before
// forming dimensionless ratios.
type Kilometer float64

// JupiterRadius is a planetary radius in units of Jupiter's radius.
type JupiterRadius float64

const (
	// KilometersPerSolarRadius is the IAU nominal solar radius.
	KilometersPerSolarRadius = 695700.0

	// KilometersPerAU is the IAU 2012 definition of the astronomical unit.
	KilometersPerAU = 1.495978707e8
)

// Kilometers converts a stellar radius to kilometers.
func (r SolarRadius) Kilometers() Kilometer {
	return Kilometer(float64(r) * KilometersPerSolarRadius)
}

// Kilometers converts an orbital distance to kilometers.
func (d AU) Kilometers() Kilometer {
	return Kilometer(float64(d) * KilometersPerAU)
}
