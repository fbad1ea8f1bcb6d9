package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/analysis"
	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/charts"
	cfgpkg "github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/config"
	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/run"
)

var (
	anaOutDir   string
	anaFormat   string
	anaTopN     int
	anaBins     int
	anaNoCharts bool
	anaCorr     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file.xlsx]",
	Short: "Clean a census workbook, print statistics and render charts",
	Long: `analyze runs the whole pipeline: load the sheet, drop blank rows, coerce the
numeric columns, fill defaults, print the table info and descriptive statistics,
then render the six charts and a run.json manifest into a new run directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		g, err := settings()
		if err != nil {
			return err
		}
		g, err = analyzeSettings(cmd, g)
		if err != nil {
			return err
		}
		ds, err := openDataset(cmd, args, g)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		analysis.WriteInfo(out, ds.path, ds.sheet, ds.report)
		fmt.Fprintln(out)
		analysis.WriteSummary(out, analysis.Describe(ds.frame))
		if anaCorr {
			fmt.Fprintln(out)
			analysis.WriteCorrelations(out, analysis.Correlate(ds.frame))
		}
		counts, err := analysis.ValueCounts(ds.frame, census.RuralUrban)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		analysis.WriteCounts(out, census.RuralUrban, counts)
		top, err := analysis.TopN(ds.frame, census.DensityPerSqKm, g.TopN)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		if err := analysis.WriteRows(out, top, census.AreaName, census.RuralUrban, census.DensityPerSqKm); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		r := run.New(g.OutputDir, ds.path, ds.sheet)
		r.SkipRows = ds.skipRows
		r.Rows = run.RowCounts{Read: ds.report.InputRows, Dropped: ds.report.DroppedRows, Kept: ds.report.OutputRows}
		r.Failures = ds.report.ParseFailures

		if !anaNoCharts {
			res, err := charts.RenderAll(ctx, ds.frame, charts.Options{
				Dir:    r.Dir(),
				Format: g.ChartFormat,
				Bins:   g.HistBins,
				TopN:   g.TopN,
				Log:    logger,
			})
			if err != nil {
				return err
			}
			for _, a := range res.Artifacts {
				r.AddArtifact(a.Kind, a.Title, a.Path)
			}
			r.Skipped = res.Skipped
			for _, k := range res.Skipped {
				warnf(cmd.ErrOrStderr(), "%s chart skipped: no data", k)
			}
		}
		if err := r.Save(); err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		logger.Info("run saved",
			slog.String("id", r.ID),
			slog.String("dir", r.Dir()),
			slog.Int("charts", len(r.Artifacts)))
		fmt.Fprintln(out)
		successf(out, "Wrote %d chart(s) to %s", len(r.Artifacts), r.Dir())
		return nil
	},
}

// analyzeSettings applies analyze's output flags over a copy of g.
func analyzeSettings(cmd *cobra.Command, g *cfgpkg.Global) (*cfgpkg.Global, error) {
	c := *g
	f := cmd.Flags()
	if f.Changed("out") {
		c.OutputDir = cfgpkg.ExpandHome(anaOutDir)
	}
	if f.Changed("format") {
		c.ChartFormat = strings.TrimPrefix(anaFormat, ".")
	}
	if f.Changed("top") {
		c.TopN = anaTopN
	}
	if f.Changed("bins") {
		c.HistBins = anaBins
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addSourceFlags(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaOutDir, "out", "o", "", "root directory for run output (overrides config)")
	analyzeCmd.Flags().StringVar(&anaFormat, "format", "", "chart format: png|svg (overrides config)")
	analyzeCmd.Flags().IntVar(&anaTopN, "top", 0, "areas shown in the ranked charts (overrides config)")
	analyzeCmd.Flags().IntVar(&anaBins, "bins", 0, "histogram bins (overrides config)")
	analyzeCmd.Flags().BoolVar(&anaNoCharts, "no-charts", false, "print statistics only; still records the run")
	analyzeCmd.Flags().BoolVar(&anaCorr, "correlations", false, "also print the correlation matrix")
}
