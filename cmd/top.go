package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/analysis"
	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
)

var (
	topBy string
	topN  int
)

var topCmd = &cobra.Command{
	Use:   "top [file.xlsx]",
	Short: "Print the areas with the largest values of a numeric column",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := settings()
		if err != nil {
			return err
		}
		idx, ok := census.ColumnIndex(topBy)
		if !ok || !census.IsNumeric(census.Columns[idx]) {
			return fmt.Errorf("--by must be one of the numeric columns: %v", census.NumericColumns)
		}
		by := census.Columns[idx]
		n := g.TopN
		if cmd.Flags().Changed("limit") {
			if topN <= 0 {
				return fmt.Errorf("invalid -n %d", topN)
			}
			n = topN
		}
		ds, err := openDataset(cmd, args, g)
		if err != nil {
			return err
		}
		top, err := analysis.TopN(ds.frame, by, n)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Top %d areas by %s (%d rows)\n", n, by, ds.frame.Len())
		return analysis.WriteRows(out, top, census.AreaName, census.AreaType, census.RuralUrban, by)
	},
}

func init() {
	rootCmd.AddCommand(topCmd)
	addSourceFlags(topCmd)
	topCmd.Flags().StringVar(&topBy, "by", census.DensityPerSqKm, "numeric column to rank by")
	topCmd.Flags().IntVarP(&topN, "limit", "n", 0, "number of rows (overrides top_n)")
}
