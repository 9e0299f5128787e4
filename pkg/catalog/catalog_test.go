package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogCSV = `# name,detection_type,star_teff,star_radius,semi_major_axis,radius,discovered
X,Primary Transit,5778,1.0,1.0,1.0,2015
Y,Radial Velocity,5000,0.9,0.1,0.5,2010
Z,Primary Transit,6000,1.2,0.05,1.3,
`

const targetsCSV = `planet_name,future,obs_complete,in_prep,published
X,0,0,0,1
W,1,0,0,0
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCatalogFiltersToTransits(t *testing.T) {
	path := writeFile(t, "catalog.csv", catalogCSV)

	rows, err := LoadCatalog(path)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "X", rows[0].PlanetName)
	assert.Equal(t, "Z", rows[1].PlanetName)
	for _, row := range rows {
		assert.Equal(t, DetectionTypeTransit, row.DetectionType)
	}
}

func TestDecodeCatalogNormalizesHeader(t *testing.T) {
	rows, err := DecodeCatalog(strings.NewReader(catalogCSV))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// "# name" became the planet_name join key
	assert.Equal(t, "X", rows[0].PlanetName)
	assert.Equal(t, 5778.0, rows[0].StarTeff)
	assert.Equal(t, 1.0, rows[0].SemiMajorAxis)
	assert.Equal(t, 1.3, rows[2].Radius)
}

func TestDecodeCatalogEmptyCellsAreZero(t *testing.T) {
	csv := "# name,detection_type,star_teff,star_radius,semi_major_axis,radius\n" +
		"NoOrbit,Primary Transit,5000,1.0,,0.9\n"

	rows, err := DecodeCatalog(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].SemiMajorAxis)
}

func TestDecodeCatalogManyEmptyCells(t *testing.T) {
	// exoplanet.eu exports routinely leave most numeric cells blank
	csv := "# name,detection_type,star_teff,star_radius,semi_major_axis,radius\n" +
		"Sparse,Primary Transit,,,,\n"

	rows, err := DecodeCatalog(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].StarTeff)
	assert.Zero(t, rows[0].StarRadius)
	assert.Zero(t, rows[0].SemiMajorAxis)
	assert.Zero(t, rows[0].Radius)
}

func TestLoadTargetsEmptyFlagCells(t *testing.T) {
	path := writeFile(t, "targets.csv", "planet_name,future,obs_complete,in_prep,published\nX,,,,1\n")

	targets, err := LoadTargets(path)
	require.NoError(t, err)

	require.Len(t, targets, 1)
	assert.Zero(t, targets[0].Future)
	assert.Equal(t, 1, targets[0].Published)
}

func TestNormalizeHeader(t *testing.T) {
	got := normalizeHeader([]string{"# name", "detection_type", " star_teff "})
	assert.Equal(t, []string{"planet_name", "detection_type", "star_teff"}, got)
}

func TestLoadTargets(t *testing.T) {
	path := writeFile(t, "targets.csv", targetsCSV)

	targets, err := LoadTargets(path)
	require.NoError(t, err)

	require.Len(t, targets, 2)
	assert.Equal(t, "X", targets[0].PlanetName)
	assert.Equal(t, 1, targets[0].Published)
	assert.Equal(t, 0, targets[0].Future)
	assert.Equal(t, 1, targets[1].Future)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadTargetsMissingFile(t *testing.T) {
	_, err := LoadTargets(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
