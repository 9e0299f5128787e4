package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/access-survey/targetplot/internal/types"
	"github.com/access-survey/targetplot/pkg/classify"
)

// Transition marks the temperature where one molecule gives way to another
// in exoplanet atmospheres. Label positions carry over from the hand-placed
// annotations on the original figure.
type Transition struct {
	Label  string
	Temp   float64 // K
	LabelX float64 // K, where the annotation text sits
	LabelY float64 // Jupiter radii
}

// Transitions between important molecules in exoplanet atmospheres.
var Transitions = []Transition{
	{Label: "H2O", Temp: 300, LabelX: 300 - 35, LabelY: 1.3},
	{Label: "NH3 -> N2", Temp: 600, LabelX: 600 - 70, LabelY: 1.5},
	{Label: "CH4 -> CO", Temp: 1000, LabelX: 1000 - 70, LabelY: 1.6},
	{Label: "MnS", Temp: 1300, LabelX: 1300 - 30, LabelY: 1.75},
}

// SilicateBand is the shaded silicates/metal-oxides condensation interval in
// Kelvin.
var SilicateBand = [2]float64{1600, 1900}

var (
	catalogEdge = color.RGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff} // lightgray
	overlayGray = color.NRGBA{A: 128}
	bandGray    = color.NRGBA{A: 64}
)

// Options parameterize the figure so the plain and chemistry variants share
// one renderer.
type Options struct {
	Title     string
	Width     vg.Length
	Height    vg.Length
	Chemistry bool
}

// Save builds the figure and writes it to path. The output format follows
// the file extension; the pipeline writes a PDF.
func Save(rows []types.CatalogRow, points []classify.TargetPoint, opts Options, path string) error {
	p, err := Figure(rows, points, opts)
	if err != nil {
		return fmt.Errorf("failed to build figure: %w", err)
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("failed to write figure %s: %w", path, err)
	}
	return nil
}

// Figure renders the catalog as a light background scatter with one point
// per categorized target occurrence on top, drawn in category order.
func Figure(rows []types.CatalogRow, points []classify.TargetPoint, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Equilibrium Temperature (K)"
	p.Y.Label.Text = "Planetary Radius ($R_{Jup}$)"
	p.Legend.Top = true
	p.Legend.Left = true

	xmin, xmax, ymin, ymax := extent(rows)

	if opts.Chemistry {
		if err := addChemistry(p, ymin, ymax); err != nil {
			return nil, err
		}
	}

	bg, err := plotter.NewScatter(catalogXYs(rows))
	if err != nil {
		return nil, fmt.Errorf("failed to plot catalog: %w", err)
	}
	bg.GlyphStyle = draw.GlyphStyle{
		Color:  catalogEdge,
		Radius: vg.Points(2),
		Shape:  draw.RingGlyph{},
	}
	p.Add(bg)

	for _, pt := range points {
		if !finite(pt.Planet.EqTemp) {
			continue
		}
		s, err := plotter.NewScatter(plotter.XYs{{X: pt.Planet.EqTemp, Y: pt.Planet.Radius}})
		if err != nil {
			return nil, fmt.Errorf("failed to plot target %s: %w", pt.Planet.PlanetName, err)
		}
		s.GlyphStyle = targetGlyph(pt.Category.Fill)
		p.Add(s)
	}

	// Synthetic empty-data entries keep the legend stable even when a
	// category has no matches.
	for _, cat := range classify.Categories {
		thumb, err := plotter.NewScatter(plotter.XYs{})
		if err != nil {
			return nil, err
		}
		thumb.GlyphStyle = targetGlyph(cat.Fill)
		p.Legend.Add(cat.Label, thumb)
	}
	if opts.Chemistry {
		thumb, err := plotter.NewLine(plotter.XYs{})
		if err != nil {
			return nil, err
		}
		thumb.LineStyle = dashedStyle()
		p.Legend.Add("Temp. transition of molecules", thumb)
	}

	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax
	return p, nil
}

// addChemistry overlays the molecular transition thresholds: a dashed
// vertical line per transition, the shaded silicate band, and the text
// annotations.
func addChemistry(p *plot.Plot, ymin, ymax float64) error {
	labels := plotter.XYLabels{}

	for _, tr := range Transitions {
		line, err := plotter.NewLine(plotter.XYs{
			{X: tr.Temp, Y: ymin},
			{X: tr.Temp, Y: ymax},
		})
		if err != nil {
			return fmt.Errorf("failed to plot transition %s: %w", tr.Label, err)
		}
		line.LineStyle = dashedStyle()
		p.Add(line)

		labels.XYs = append(labels.XYs, plotter.XY{X: tr.LabelX, Y: tr.LabelY})
		labels.Labels = append(labels.Labels, tr.Label)
	}

	band, err := plotter.NewPolygon(plotter.XYs{
		{X: SilicateBand[0], Y: ymin},
		{X: SilicateBand[1], Y: ymin},
		{X: SilicateBand[1], Y: ymax},
		{X: SilicateBand[0], Y: ymax},
	})
	if err != nil {
		return fmt.Errorf("failed to plot silicate band: %w", err)
	}
	band.Color = bandGray
	band.LineStyle.Color = color.NRGBA{}
	p.Add(band)

	bandMid := (SilicateBand[0] + SilicateBand[1]) / 2
	labels.XYs = append(labels.XYs, plotter.XY{X: bandMid - 150, Y: 0.6})
	labels.Labels = append(labels.Labels, "Silicates/Metal-oxides")

	l, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("failed to plot transition labels: %w", err)
	}
	p.Add(l)
	return nil
}

func dashedStyle() draw.LineStyle {
	return draw.LineStyle{
		Color:  overlayGray,
		Width:  vg.Points(1),
		Dashes: []vg.Length{vg.Points(4), vg.Points(4)},
	}
}

func targetGlyph(fill color.Color) draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  fill,
		Radius: vg.Points(5),
		Shape:  draw.CircleGlyph{},
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// catalogXYs collects the drawable catalog points. The formula propagates
// Inf/NaN for degenerate orbits; such rows have no finite position and the
// scatter plotter refuses them, so they are left out of the figure.
func catalogXYs(rows []types.CatalogRow) plotter.XYs {
	xys := make(plotter.XYs, 0, len(rows))
	for _, r := range rows {
		if !finite(r.EqTemp) {
			continue
		}
		xys = append(xys, plotter.XY{X: r.EqTemp, Y: r.Radius})
	}
	return xys
}

// extent returns padded axis limits over the finite catalog points.
func extent(rows []types.CatalogRow) (xmin, xmax, ymin, ymax float64) {
	var xs, ys []float64
	for _, r := range rows {
		if !finite(r.EqTemp) {
			continue
		}
		xs = append(xs, r.EqTemp)
		ys = append(ys, r.Radius)
	}
	if len(xs) == 0 {
		return 0, 1, 0, 1
	}

	xmin, xmax = pad(floats.Min(xs), floats.Max(xs))
	ymin, ymax = pad(floats.Min(ys), floats.Max(ys))
	return xmin, xmax, ymin, ymax
}

func pad(min, max float64) (float64, float64) {
	span := max - min
	if span == 0 {
		span = 1
	}
	return min - 0.05*span, max + 0.05*span
}
