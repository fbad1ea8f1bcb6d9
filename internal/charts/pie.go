package charts

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/analysis"
	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
)

// Pie draws the Rural/Urban split with one-decimal percentage labels.
func Pie(f census.Frame, opt Options) (Artifact, error) {
	const title = "Rural vs Urban Distribution"
	counts, err := analysis.ValueCounts(f, census.RuralUrban)
	if err != nil {
		return Artifact{}, err
	}
	if len(counts) == 0 {
		return Artifact{}, fmt.Errorf("%s: %w", census.RuralUrban, ErrNoData)
	}
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	values := make([]chart.Value, 0, len(counts))
	for _, c := range counts {
		pct := 100 * float64(c.Count) / float64(total)
		values = append(values, chart.Value{
			Value: float64(c.Count),
			Label: fmt.Sprintf("%s %.1f%%", c.Value, pct),
		})
	}
	pie := chart.PieChart{
		Title:  title,
		Width:  600,
		Height: 600,
		Values: values,
	}

	path := opt.path(KindPie)
	out, err := os.Create(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	provider := chart.PNG
	if opt.Format == "svg" {
		provider = chart.SVG
	}
	if err := pie.Render(provider, out); err != nil {
		return Artifact{}, fmt.Errorf("render pie: %w", err)
	}
	return Artifact{Kind: KindPie, Title: title, Path: path}, nil
}
