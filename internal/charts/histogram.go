package charts

import (
	"image/color"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
)

var skyBlue = color.RGBA{R: 135, G: 206, B: 235, A: 255}

// Histogram draws the distribution of Area_sq_km with a kernel density
// estimate scaled to bin counts.
func Histogram(f census.Frame, opt Options) (Artifact, error) {
	const title = "Distribution of Area (sq. km)"
	xs, err := f.Floats(census.AreaSqKm)
	if err != nil {
		return Artifact{}, err
	}
	p := newPlot(title, "Area (sq. km)", "Frequency")
	if len(xs) > 0 {
		bins := opt.Bins
		if bins <= 0 {
			bins = 20
		}
		h, err := plotter.NewHist(plotter.Values(xs), bins)
		if err != nil {
			return Artifact{}, err
		}
		h.FillColor = skyBlue
		p.Add(h)
		if kde := kdeCurve(xs, h.Width); kde != nil {
			p.Add(kde)
			p.Legend.Add("KDE", kde)
			p.Legend.Top = true
		}
	}
	return save(p, 8*vg.Inch, 4*vg.Inch, KindHistogram, title, opt)
}

// kdeCurve returns nil when the sample has no spread to estimate from.
func kdeCurve(xs []float64, binWidth float64) *plotter.Function {
	s := stats.Sample{Xs: xs}
	if len(xs) < 2 || s.StdDev() == 0 {
		return nil
	}
	kde := &stats.KDE{Sample: s}
	lo, hi := s.Bounds()
	scale := float64(len(xs)) * binWidth
	fn := plotter.NewFunction(func(x float64) float64 { return kde.PDF(x) * scale })
	fn.XMin, fn.XMax = lo, hi
	fn.Samples = 200
	fn.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	fn.Width = vg.Points(1.5)
	return fn
}
