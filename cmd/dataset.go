package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
	cfgpkg "github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/config"
	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/source"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
)

func successf(w io.Writer, format string, a ...any) {
	okColor.Fprintf(w, "✓ "+format+"\n", a...)
}

func warnf(w io.Writer, format string, a ...any) {
	warnColor.Fprintf(w, "⚠ Warning: "+format+"\n", a...)
}

// Source selection flags shared by analyze, describe and top.
var (
	srcSheetName  string
	srcSheetIndex int
	srcSkipRows   int
)

func addSourceFlags(c *cobra.Command) {
	c.Flags().StringVar(&srcSheetName, "sheet-name", "", "worksheet name (overrides config)")
	c.Flags().IntVar(&srcSheetIndex, "sheet-index", 0, "1-based worksheet index (overrides config)")
	c.Flags().IntVar(&srcSkipRows, "skip-rows", 0, "leading rows discarded before the header row (overrides config)")
}

// sourceOptions layers changed flags over the configured sheet layout.
func sourceOptions(c *cobra.Command, g *cfgpkg.Global) (source.Options, error) {
	opt := source.Options{SheetName: g.SheetName, SheetIndex: g.SheetIndex, SkipRows: g.SkipRows}
	f := c.Flags()
	if f.Changed("sheet-name") {
		opt.SheetName = srcSheetName
	}
	if f.Changed("sheet-index") {
		if srcSheetIndex < 1 {
			return opt, fmt.Errorf("invalid --sheet-index %d (sheets are numbered from 1)", srcSheetIndex)
		}
		opt.SheetIndex = srcSheetIndex
		if !f.Changed("sheet-name") {
			opt.SheetName = ""
		}
	}
	if f.Changed("skip-rows") {
		if srcSkipRows < 0 {
			return opt, fmt.Errorf("invalid --skip-rows %d", srcSkipRows)
		}
		opt.SkipRows = srcSkipRows
	}
	return opt, nil
}

// inputPath picks the positional argument, falling back to input_path.
func inputPath(args []string, g *cfgpkg.Global) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return cfgpkg.ExpandHome(args[0]), nil
	}
	if g.InputPath != "" {
		return g.InputPath, nil
	}
	return "", errors.New("no input workbook: pass a file or set input_path")
}

// dataset is a loaded and normalized workbook sheet.
type dataset struct {
	path     string
	sheet    string
	skipRows int
	frame    census.Frame
	report   census.Report
}

// loadDataset reads the sheet, binds the census schema and normalizes it.
func loadDataset(path string, opt source.Options) (*dataset, error) {
	sh, err := source.LoadXLSX(path, opt)
	if err != nil {
		return nil, err
	}
	logger.Debug("sheet loaded",
		slog.String("file", path),
		slog.String("sheet", sh.Name),
		slog.Int("rows", len(sh.Rows)),
		slog.Int("width", sh.Width))

	raw, err := census.BindSchema(sh.Width, sh.Rows)
	if err != nil {
		return nil, fmt.Errorf("%s (sheet %s): %w", path, sh.Name, err)
	}
	frame, rep := census.Normalize(raw, logger)
	return &dataset{path: path, sheet: sh.Name, skipRows: opt.SkipRows, frame: frame, report: rep}, nil
}

// openDataset resolves the input and sheet flags and loads the dataset.
func openDataset(c *cobra.Command, args []string, g *cfgpkg.Global) (*dataset, error) {
	path, err := inputPath(args, g)
	if err != nil {
		return nil, err
	}
	opt, err := sourceOptions(c, g)
	if err != nil {
		return nil, err
	}
	return loadDataset(path, opt)
}
