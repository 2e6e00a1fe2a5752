// Package render draws diagnostics of distance fields and direction masks:
// a PNG heat map of a field (gonum/plot) and an interactive HTML scatter of
// a mask (go-echarts), coloured by the number of improving directions.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/gridnav/distfield"
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/heuristic"
)

// ErrNilInput indicates a nil field or mask.
var ErrNilInput = errors.New("render: nil input")

// fieldGrid adapts a Field to plotter.GridXYZ. Row 0 is drawn at the top.
// Unreachable cells are NaN and excluded from the colour range.
type fieldGrid struct {
	f        *distfield.Field
	min, max float64
}

func newFieldGrid(f *distfield.Field) fieldGrid {
	g := fieldGrid{f: f, min: math.Inf(1), max: math.Inf(-1)}
	for _, d := range f.Distances() {
		if d == distfield.Unreachable {
			continue
		}
		g.min = math.Min(g.min, float64(d))
		g.max = math.Max(g.max, float64(d))
	}
	return g
}

func (g fieldGrid) Min() float64 { return g.min }

func (g fieldGrid) Max() float64 { return g.max }

func (g fieldGrid) Dims() (c, r int) { return g.f.Width, g.f.Height }

func (g fieldGrid) Z(c, r int) float64 {
	d := g.f.At(gridgraph.Point{Row: r, Col: c})
	if d == distfield.Unreachable {
		return math.NaN()
	}
	return float64(d)
}

func (g fieldGrid) X(c int) float64 { return float64(c) }

func (g fieldGrid) Y(r int) float64 { return float64(g.f.Height - 1 - r) }

// FieldPlot returns a heat map of f. Unreachable cells are left blank.
// The target is always finite, so the colour range is never empty.
func FieldPlot(f *distfield.Field) (*plot.Plot, error) {
	if f == nil {
		return nil, ErrNilInput
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distance to %v", f.Target)
	p.X.Label.Text = "Col"
	p.Y.Label.Text = "Row (top = 0)"

	hm := plotter.NewHeatMap(newFieldGrid(f), palette.Heat(16, 1))
	p.Add(hm)
	return p, nil
}

// FieldPNG writes FieldPlot(f) to path; the extension selects the format.
func FieldPNG(f *distfield.Field, path string) error {
	p, err := FieldPlot(f)
	if err != nil {
		return err
	}
	side := 6 * vg.Inch
	if err := p.Save(side, side*vg.Length(f.Height)/vg.Length(max(f.Width, 1)), path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

// MaskHTML writes an HTML page plotting every in-region reachable cell of m,
// valued by its count of improving directions (0 to 4).
func MaskHTML(m *heuristic.Mask, w io.Writer) error {
	if m == nil {
		return ErrNilInput
	}
	data := make([]opts.ScatterData, 0, m.Width*m.Height)
	for r := m.Region.Radius; r < m.Height-m.Region.Radius; r++ {
		for c := m.Region.Radius; c < m.Width-m.Region.Radius; c++ {
			p := gridgraph.Point{Row: r, Col: c}
			data = append(data, opts.ScatterData{Value: []interface{}{c, m.Height - 1 - r, m.Count(p)}})
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Direction mask", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Improving directions",
			Subtitle: fmt.Sprintf("target=%v cells=%d radius=%d", m.Target, len(data), m.Region.Radius),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: m.Width - 1, Name: "Col", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: m.Height - 1, Name: "Row (flipped)", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        gridgraph.NumDirections,
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#440154", "#3e4989", "#26828e", "#35b779", "#fde725"}},
		}),
	)
	scatter.AddSeries("mask", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))
	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("render: mask page: %w", err)
	}
	return nil
}
