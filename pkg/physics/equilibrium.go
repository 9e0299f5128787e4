package physics

import (
	"math"

	"github.com/access-survey/targetplot/internal/types"
	"github.com/access-survey/targetplot/pkg/units"
)

// DefaultAlbedo is applied uniformly to the whole catalog, not per planet.
const DefaultAlbedo = 0.1

// EquilibriumTemperature computes the blackbody equilibrium temperature of a
// planet with the given albedo at the given distance from its star:
//
//	T_eq = T_star * (1 - albedo)^0.25 * sqrt(R_star / (2 * distance))
//
// The stellar radius and the orbital distance arrive in different base units
// (solar radii vs. AU) and are converted to kilometers before dividing so the
// ratio is dimensionless. Inputs are not guarded: a zero or negative distance
// propagates as Inf or NaN.
func EquilibriumTemperature(tStar units.Kelvin, rStar units.SolarRadius, distance units.AU, albedo float64) units.Kelvin {
	rKm := float64(rStar.Kilometers())
	dKm := float64(distance.Kilometers())

	return tStar * units.Kelvin(math.Pow(1-albedo, 0.25)*math.Sqrt(rKm/(2*dKm)))
}

// AnnotateCatalog fills in EqTemp for every row using a single catalog-wide
// albedo.
func AnnotateCatalog(rows []types.CatalogRow, albedo float64) {
	for i := range rows {
		rows[i].EqTemp = float64(EquilibriumTemperature(
			units.Kelvin(rows[i].StarTeff),
			units.SolarRadius(rows[i].StarRadius),
			units.AU(rows[i].SemiMajorAxis),
			albedo,
		))
	}
}
