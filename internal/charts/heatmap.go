package charts

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/analysis"
	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
)

// corrGrid adapts a correlation matrix to plotter.GridXYZ. Row 0 of the grid
// is drawn at the bottom, so the first column is mapped to the top row.
type corrGrid struct{ m analysis.CorrMatrix }

func (g corrGrid) Dims() (c, r int) {
	n := len(g.m.Columns)
	return n, n
}

func (g corrGrid) X(c int) float64 { return float64(c) }

func (g corrGrid) Y(r int) float64 { return float64(r) }

func (g corrGrid) Z(c, r int) float64 { return g.m.Values[len(g.m.Columns)-1-r][c] }

// Heatmap draws the numeric correlation matrix with each cell annotated.
// Undefined coefficients are drawn in gray and labeled "nan".
func Heatmap(f census.Frame, opt Options) (Artifact, error) {
	const title = "Correlation Matrix"
	m := analysis.Correlate(f)
	n := len(m.Columns)
	if n == 0 {
		return Artifact{}, fmt.Errorf("correlation: %w", ErrNoData)
	}
	grid := corrGrid{m: m}

	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(-1)
	cmap.SetMax(1)
	cmap.SetConvergePoint(0)
	hm := plotter.NewHeatMap(grid, cmap.Palette(255))
	hm.Min, hm.Max = -1, 1
	hm.NaN = color.Gray{Y: 200}

	p := newPlot(title, "", "")
	p.Add(hm)

	xt := make([]plot.Tick, n)
	yt := make([]plot.Tick, n)
	var cells plotter.XYLabels
	for c := 0; c < n; c++ {
		xt[c] = plot.Tick{Value: float64(c), Label: m.Columns[c]}
		yt[c] = plot.Tick{Value: float64(c), Label: m.Columns[n-1-c]}
		for r := 0; r < n; r++ {
			v := grid.Z(c, r)
			cells.XYs = append(cells.XYs, plotter.XY{X: float64(c), Y: float64(r)})
			cells.Labels = append(cells.Labels, annotate(v))
		}
	}
	labels, err := plotter.NewLabels(cells)
	if err != nil {
		return Artifact{}, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
		labels.TextStyle[i].Font.Size = vg.Points(8)
	}
	p.Add(labels)

	p.X.Tick.Marker = plot.ConstantTicks(xt)
	p.Y.Tick.Marker = plot.ConstantTicks(yt)
	rotateXTicks(p)
	p.X.Padding, p.Y.Padding = 0, 0
	return save(p, 10*vg.Inch, 8*vg.Inch, KindHeatmap, title, opt)
}

func annotate(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return fmt.Sprintf("%.2f", v)
}
