// Package charts renders the six exploratory charts of a normalized census
// table. gonum/plot draws the axis-based charts and go-chart draws the pie.
package charts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/analysis"
	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/utils"
)

// ErrNoData is returned by renderers that cannot draw anything for an empty table.
var ErrNoData = errors.New("no data to chart")

// Chart kinds, also used as file names.
const (
	KindHistogram = "histogram"
	KindPie       = "pie"
	KindScatter   = "scatter"
	KindLine      = "line"
	KindBar       = "bar"
	KindHeatmap   = "heatmap"
)

// Options controls where and how charts are written.
type Options struct {
	Dir    string
	Format string // png|svg
	Bins   int
	TopN   int
	Log    *slog.Logger
}

// DefaultOptions writes PNGs into dir.
func DefaultOptions(dir string) Options {
	return Options{Dir: dir, Format: "png", Bins: 20, TopN: analysis.DefaultTopN}
}

func (o Options) logger() *slog.Logger {
	if o.Log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Log
}

func (o Options) path(kind string) string {
	format := o.Format
	if format == "" {
		format = "png"
	}
	return filepath.Join(o.Dir, kind+"."+format)
}

// Artifact is one rendered chart file.
type Artifact struct {
	Kind  string
	Title string
	Path  string
}

// Result lists what RenderAll wrote and what it had to skip.
type Result struct {
	Artifacts []Artifact
	Skipped   []string
}

type renderer func(census.Frame, Options) (Artifact, error)

// RenderAll draws every chart in a fixed order. A renderer reporting
// ErrNoData is skipped and noted; any other error aborts.
func RenderAll(ctx context.Context, f census.Frame, opt Options) (Result, error) {
	var res Result
	if err := utils.EnsureDir(opt.Dir); err != nil {
		return res, fmt.Errorf("ensure chart dir: %w", err)
	}
	log := opt.logger()
	steps := []struct {
		kind string
		fn   renderer
	}{
		{KindHistogram, Histogram},
		{KindPie, Pie},
		{KindScatter, Scatter},
		{KindLine, DensityLine},
		{KindBar, PopulationBar},
		{KindHeatmap, Heatmap},
	}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		a, err := s.fn(f, opt)
		if errors.Is(err, ErrNoData) {
			log.Warn("chart skipped", slog.String("kind", s.kind), slog.String("reason", err.Error()))
			res.Skipped = append(res.Skipped, s.kind)
			continue
		}
		if err != nil {
			return res, fmt.Errorf("render %s: %w", s.kind, err)
		}
		log.Debug("chart written", slog.String("kind", a.Kind), slog.String("path", a.Path))
		res.Artifacts = append(res.Artifacts, a)
	}
	return res, nil
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

// rotateXTicks tilts nominal tick labels so long area names do not overlap.
func rotateXTicks(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}

func save(p *plot.Plot, w, h vg.Length, kind, title string, opt Options) (Artifact, error) {
	path := opt.path(kind)
	if err := p.Save(w, h, path); err != nil {
		return Artifact{}, fmt.Errorf("save %s: %w", path, err)
	}
	return Artifact{Kind: kind, Title: title, Path: path}, nil
}

func topN(opt Options) int {
	if opt.TopN <= 0 {
		return analysis.DefaultTopN
	}
	return opt.TopN
}
