package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/analysis"
	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
)

var descCorr bool

var describeCmd = &cobra.Command{
	Use:   "describe [file.xlsx]",
	Short: "Print descriptive statistics of a cleaned census workbook",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := settings()
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
		if descCorr {
			fmt.Fprintln(out)
			analysis.WriteCorrelations(out, analysis.Correlate(ds.frame))
		}
		counts, err := analysis.ValueCounts(ds.frame, census.RuralUrban)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		analysis.WriteCounts(out, census.RuralUrban, counts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	addSourceFlags(describeCmd)
	describeCmd.Flags().BoolVar(&descCorr, "correlations", false, "also print the correlation matrix")
}
