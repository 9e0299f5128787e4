package classify

import (
	"image/color"

	"github.com/access-survey/targetplot/internal/types"
)

// Category is one observation status. Points draw in Categories order, so a
// target erroneously flagged in more than one category ends up colored by
// the latest one.
type Category struct {
	Key   string
	Label string
	Fill  color.Color
}

// Fills follow the original figure: gray for targets still collecting data,
// then the three accent colors.
var (
	fillFuture      = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	fillObsComplete = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	fillInPrep      = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	fillPublished   = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
)

// Categories is the fixed draw order. published draws last and therefore
// always wins visually over earlier categories.
var Categories = []Category{
	{Key: "future", Label: "Collecting Data", Fill: fillFuture},
	{Key: "obs_complete", Label: "Analysis Underway", Fill: fillObsComplete},
	{Key: "in_prep", Label: "Paper in Prep.", Fill: fillInPrep},
	{Key: "published", Label: "Published", Fill: fillPublished},
}

// Flagged reports whether the target carries this category's flag.
func (c Category) Flagged(t types.TargetRow) bool {
	switch c.Key {
	case "future":
		return t.Future != 0
	case "obs_complete":
		return t.ObsComplete != 0
	case "in_prep":
		return t.InPrep != 0
	case "published":
		return t.Published != 0
	}
	return false
}

// TargetPoint is one highlighted occurrence of a catalog planet.
type TargetPoint struct {
	Category Category
	Planet   types.CatalogRow
}

// SelectTargets joins the target list against the catalog, category by
// category. A name absent from the catalog contributes nothing; a name
// flagged in several categories is emitted once per flag, in category order.
func SelectTargets(rows []types.CatalogRow, targets []types.TargetRow) []TargetPoint {
	byName := make(map[string][]int, len(rows))
	for i, row := range rows {
		byName[row.PlanetName] = append(byName[row.PlanetName], i)
	}

	var points []TargetPoint
	for _, cat := range Categories {
		for _, t := range targets {
			if !cat.Flagged(t) {
				continue
			}
			for _, i := range byName[t.PlanetName] {
				points = append(points, TargetPoint{Category: cat, Planet: rows[i]})
			}
		}
	}
	return points
}
