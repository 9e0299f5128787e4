package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/access-survey/targetplot/internal/types"
)

func TestCategoryOrderIsFixed(t *testing.T) {
	keys := make([]string, len(Categories))
	for i, c := range Categories {
		keys[i] = c.Key
	}
	assert.Equal(t, []string{"future", "obs_complete", "in_prep", "published"}, keys)
}

func TestFlagged(t *testing.T) {
	target := types.TargetRow{PlanetName: "X", ObsComplete: 1}

	assert.False(t, Categories[0].Flagged(target))
	assert.True(t, Categories[1].Flagged(target))
	assert.False(t, Categories[2].Flagged(target))
	assert.False(t, Categories[3].Flagged(target))
}

func TestSelectTargetsSingleMatch(t *testing.T) {
	rows := []types.CatalogRow{
		{PlanetName: "X", EqTemp: 278.5, Radius: 1.0},
		{PlanetName: "Other", EqTemp: 900, Radius: 1.2},
	}
	targets := []types.TargetRow{{PlanetName: "X", Published: 1}}

	points := SelectTargets(rows, targets)

	require.Len(t, points, 1)
	assert.Equal(t, "published", points[0].Category.Key)
	assert.Equal(t, Categories[3].Fill, points[0].Category.Fill)
	assert.InDelta(t, 278.5, points[0].Planet.EqTemp, 0.01)
}

func TestSelectTargetsNameAbsentFromCatalog(t *testing.T) {
	rows := []types.CatalogRow{{PlanetName: "X"}}
	targets := []types.TargetRow{{PlanetName: "Ghost", Published: 1}}

	assert.Empty(t, SelectTargets(rows, targets))
}

func TestSelectTargetsOverlappingFlagsDrawInOrder(t *testing.T) {
	rows := []types.CatalogRow{{PlanetName: "X", EqTemp: 500, Radius: 0.8}}
	targets := []types.TargetRow{{PlanetName: "X", Future: 1, Published: 1}}

	points := SelectTargets(rows, targets)

	// Two overlapping points; published is emitted last so it draws on top.
	require.Len(t, points, 2)
	assert.Equal(t, "future", points[0].Category.Key)
	assert.Equal(t, "published", points[1].Category.Key)
}

func TestSelectTargetsDuplicateCatalogNames(t *testing.T) {
	rows := []types.CatalogRow{
		{PlanetName: "X", EqTemp: 500},
		{PlanetName: "X", EqTemp: 510},
	}
	targets := []types.TargetRow{{PlanetName: "X", InPrep: 1}}

	points := SelectTargets(rows, targets)

	require.Len(t, points, 2)
	assert.Equal(t, "in_prep", points[0].Category.Key)
	assert.Equal(t, "in_prep", points[1].Category.Key)
}
