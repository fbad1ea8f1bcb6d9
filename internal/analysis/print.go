package analysis

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
)

var statRows = []struct {
	label string
	get   func(ColumnStats) string
}{
	{"count", func(c ColumnStats) string { return strconv.Itoa(c.Count) }},
	{"mean", func(c ColumnStats) string { return formatStat(c.Mean) }},
	{"std", func(c ColumnStats) string { return formatStat(c.Std) }},
	{"min", func(c ColumnStats) string { return formatStat(c.Min) }},
	{"25%", func(c ColumnStats) string { return formatStat(c.Q25) }},
	{"50%", func(c ColumnStats) string { return formatStat(c.Q50) }},
	{"75%", func(c ColumnStats) string { return formatStat(c.Q75) }},
	{"max", func(c ColumnStats) string { return formatStat(c.Max) }},
}

func formatStat(x float64) string {
	if math.IsNaN(x) {
		return "NaN"
	}
	return strconv.FormatFloat(x, 'f', 2, 64)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	return t
}

// WriteInfo prints the shape of the cleaned table and what cleaning changed.
func WriteInfo(w io.Writer, file, sheet string, rep census.Report) {
	fmt.Fprintf(w, "Dataset: %s (sheet: %s)\n", file, sheet)
	fmt.Fprintf(w, "Rows: %d read, %d blank dropped, %d kept\n", rep.InputRows, rep.DroppedRows, rep.OutputRows)
	fmt.Fprintf(w, "Columns: %d\n", len(census.Columns))
	if rep.TotalParseFailures() == 0 {
		return
	}
	names := make([]string, 0, len(rep.ParseFailures))
	for k := range rep.ParseFailures {
		names = append(names, k)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "Unparsable numeric cells (defaulted to 0):")
	for _, k := range names {
		fmt.Fprintf(w, "- %s: %d\n", k, rep.ParseFailures[k])
	}
}

// WriteSummary prints s with one statistic per row and one column per field.
func WriteSummary(w io.Writer, s Summary) {
	header := []string{""}
	for _, c := range s.Columns {
		header = append(header, c.Name)
	}
	t := newTable(w, header)
	for _, sr := range statRows {
		row := []string{sr.label}
		for _, c := range s.Columns {
			row = append(row, sr.get(c))
		}
		t.Append(row)
	}
	t.Render()
}

// WriteCorrelations prints the full matrix with three decimals.
func WriteCorrelations(w io.Writer, m CorrMatrix) {
	t := newTable(w, append([]string{""}, m.Columns...))
	for i, name := range m.Columns {
		row := []string{name}
		for _, r := range m.Values[i] {
			if math.IsNaN(r) {
				row = append(row, "NaN")
				continue
			}
			row = append(row, strconv.FormatFloat(r, 'f', 3, 64))
		}
		t.Append(row)
	}
	t.Render()
}

// WriteCounts prints category frequencies with their share of the total.
func WriteCounts(w io.Writer, column string, counts []CategoryCount) {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	t := newTable(w, []string{column, "count", "share"})
	for _, c := range counts {
		share := 0.0
		if total > 0 {
			share = float64(c.Count) * 100 / float64(total)
		}
		t.Append([]string{c.Value, strconv.Itoa(c.Count), fmt.Sprintf("%.1f%%", share)})
	}
	t.Render()
}

// WriteRows prints the given columns of every row in f.
func WriteRows(w io.Writer, f census.Frame, columns ...string) error {
	idx := make([]int, len(columns))
	for i, c := range columns {
		j, ok := f.Index(c)
		if !ok {
			return fmt.Errorf("unknown column %q", c)
		}
		idx[i] = j
	}
	t := newTable(w, append([]string{"#"}, columns...))
	for n, r := range f.Rows {
		row := []string{strconv.Itoa(n + 1)}
		for _, j := range idx {
			row = append(row, r[j].String())
		}
		t.Append(row)
	}
	t.Render()
	return nil
}
