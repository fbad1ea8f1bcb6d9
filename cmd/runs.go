package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/run"
)

var runsVerbose bool

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List previous analysis runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := settings()
		if err != nil {
			return err
		}
		runs, err := run.List(g.OutputDir)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "(no runs)")
			return nil
		}
		for _, r := range runs {
			fmt.Fprintf(out, "- %s  %s  %s  rows=%d charts=%d\n",
				filepath.Base(r.Dir()),
				r.CreatedAt.Format("2006-01-02 15:04:05"),
				r.Source, r.Rows.Kept, len(r.Artifacts))
			if !runsVerbose {
				continue
			}
			for _, a := range r.Artifacts {
				fmt.Fprintf(out, "    %s: %s\n", a.Kind, filepath.Join(r.Dir(), a.Path))
			}
			for _, k := range r.Skipped {
				fmt.Fprintf(out, "    %s: skipped\n", k)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.Flags().BoolVarP(&runsVerbose, "verbose", "v", false, "list chart files of each run")
}
