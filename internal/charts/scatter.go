package charts

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/analysis"
	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
)

// Scatter plots Households against Population_Total, one colored series per
// Rural_Urban category.
func Scatter(f census.Frame, opt Options) (Artifact, error) {
	const title = "Households vs Population"
	hh, err := f.Floats(census.Households)
	if err != nil {
		return Artifact{}, err
	}
	pop, err := f.Floats(census.PopulationTotal)
	if err != nil {
		return Artifact{}, err
	}
	cats, err := f.Strings(census.RuralUrban)
	if err != nil {
		return Artifact{}, err
	}
	counts, err := analysis.ValueCounts(f, census.RuralUrban)
	if err != nil {
		return Artifact{}, err
	}

	p := newPlot(title, "Households", "Total Population")
	for i, c := range counts {
		pts := make(plotter.XYs, 0, c.Count)
		for r := range cats {
			if cats[r] == c.Value {
				pts = append(pts, plotter.XY{X: hh[r], Y: pop[r]})
			}
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return Artifact{}, err
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(c.Value, s)
	}
	p.Legend.Top = true
	p.Legend.Left = true
	return save(p, 8*vg.Inch, 5*vg.Inch, KindScatter, title, opt)
}
