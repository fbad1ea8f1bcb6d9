package charts

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/analysis"
	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
)

// ranked returns the top rows by column as area names and values.
func ranked(f census.Frame, by string, n int) ([]string, []float64, error) {
	top, err := analysis.TopN(f, by, n)
	if err != nil {
		return nil, nil, err
	}
	names, err := top.Strings(census.AreaName)
	if err != nil {
		return nil, nil, err
	}
	vals, err := top.Floats(by)
	if err != nil {
		return nil, nil, err
	}
	return names, vals, nil
}

// DensityLine draws the densest areas as a line with point markers.
func DensityLine(f census.Frame, opt Options) (Artifact, error) {
	n := topN(opt)
	title := fmt.Sprintf("Top %d Areas by Population Density", n)
	names, vals, err := ranked(f, census.DensityPerSqKm, n)
	if err != nil {
		return Artifact{}, err
	}
	p := newPlot(title, "Area Name", "Density per sq. km")
	if len(vals) > 0 {
		pts := make(plotter.XYs, len(vals))
		for i, v := range vals {
			pts[i] = plotter.XY{X: float64(i), Y: v}
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return Artifact{}, err
		}
		line.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
		line.Width = vg.Points(1.5)
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		points.GlyphStyle.Color = line.Color
		p.Add(line, points)
		p.NominalX(names...)
		rotateXTicks(p)
	}
	return save(p, 10*vg.Inch, 5*vg.Inch, KindLine, title, opt)
}

// PopulationBar draws the most populous areas, one color per area.
func PopulationBar(f census.Frame, opt Options) (Artifact, error) {
	n := topN(opt)
	title := fmt.Sprintf("Top %d Areas by Population", n)
	names, vals, err := ranked(f, census.PopulationTotal, n)
	if err != nil {
		return Artifact{}, err
	}
	p := newPlot(title, "Area Name", "Total Population")
	if len(vals) > 0 {
		cmap := moreland.Kindlmann()
		cmap.SetMin(0)
		cmap.SetMax(1)
		colors := cmap.Palette(len(vals) + 1).Colors()
		for i, v := range vals {
			b, err := plotter.NewBarChart(plotter.Values{v}, vg.Points(20))
			if err != nil {
				return Artifact{}, err
			}
			b.XMin = float64(i)
			b.Color = colors[i]
			b.LineStyle.Width = 0
			p.Add(b)
		}
		p.NominalX(names...)
		rotateXTicks(p)
	}
	return save(p, 10*vg.Inch, 5*vg.Inch, KindBar, title, opt)
}
