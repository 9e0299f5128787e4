package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/access-survey/targetplot/internal/types"
)

// Summarize computes summary statistics over the annotated catalog. Rows
// whose equilibrium temperature came out non-finite (missing orbital data in
// the export) are left out of the summary.
func Summarize(rows []types.CatalogRow) types.CatalogSummary {
	temps := make([]float64, 0, len(rows))
	radii := make([]float64, 0, len(rows))
	for _, r := range rows {
		if math.IsNaN(r.EqTemp) || math.IsInf(r.EqTemp, 0) {
			continue
		}
		temps = append(temps, r.EqTemp)
		radii = append(radii, r.Radius)
	}
	if len(temps) == 0 {
		return types.CatalogSummary{}
	}

	sorted := append([]float64(nil), temps...)
	sort.Float64s(sorted)

	return types.CatalogSummary{
		Planets:      len(temps),
		MeanEqTemp:   stat.Mean(temps, nil),
		MedianEqTemp: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		StdDevEqTemp: stat.StdDev(temps, nil),
		MinEqTemp:    floats.Min(temps),
		MaxEqTemp:    floats.Max(temps),
		MeanRadius:   stat.Mean(radii, nil),
	}
}
