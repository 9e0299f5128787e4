package types

// CatalogRow is one exoplanet detection record from the exoplanet.eu export.
// Only the columns the pipeline uses carry csv tags; the export's remaining
// columns are ignored by the decoder.
type CatalogRow struct {
	PlanetName    string  `csv:"planet_name"`
	DetectionType string  `csv:"detection_type"`
	StarTeff      float64 `csv:"star_teff"`       // K
	StarRadius    float64 `csv:"star_radius"`     // solar radii
	SemiMajorAxis float64 `csv:"semi_major_axis"` // AU
	Radius        float64 `csv:"radius"`          // Jupiter radii

	// EqTemp is derived after loading, never read from the file.
	EqTemp float64 `csv:"-"` // K
}

// TargetRow is one tracked survey target. The four flags are 0/1 columns;
// the source makes no exclusivity guarantee between them.
type TargetRow struct {
	PlanetName  string `csv:"planet_name"`
	Future      int    `csv:"future"`
	ObsComplete int    `csv:"obs_complete"`
	InPrep      int    `csv:"in_prep"`
	Published   int    `csv:"published"`
}

// CatalogSummary holds summary statistics over the annotated catalog.
type CatalogSummary struct {
	Planets      int
	MeanEqTemp   float64 // K
	MedianEqTemp float64 // K
	StdDevEqTemp float64 // K
	MinEqTemp    float64 // K
	MaxEqTemp    float64 // K
	MeanRadius   float64 // Jupiter radii
}
