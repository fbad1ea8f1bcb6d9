package census

import (
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Report summarizes what a Normalize pass did to a frame.
type Report struct {
	InputRows   int
	DroppedRows int
	OutputRows  int
	// ParseFailures counts unparsable numeric cells per column.
	ParseFailures map[string]int
}

// TotalParseFailures sums ParseFailures across columns.
func (r Report) TotalParseFailures() int {
	n := 0
	for _, v := range r.ParseFailures {
		n += v
	}
	return n
}

// Normalize runs DropEmpty, CoerceNumeric and FillDefaults in that order.
// Defaulting must come after coercion so that mistyped values are counted
// as parse failures before they are replaced. A nil logger discards
// diagnostics.
func Normalize(f Frame, log *slog.Logger) (Frame, Report) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	rep := Report{InputRows: f.Len()}

	out := DropEmpty(f)
	rep.DroppedRows = f.Len() - out.Len()

	out, rep.ParseFailures = CoerceNumeric(out, log)
	out = FillDefaults(out)
	rep.OutputRows = out.Len()

	log.Debug("normalized frame",
		slog.Int("input_rows", rep.InputRows),
		slog.Int("dropped_rows", rep.DroppedRows),
		slog.Int("output_rows", rep.OutputRows),
		slog.Int("parse_failures", rep.TotalParseFailures()),
	)
	return out, rep
}

// DropEmpty returns a frame without the rows whose cells are all missing.
func DropEmpty(f Frame) Frame {
	out := Frame{Columns: append([]string(nil), f.Columns...), Rows: make([][]Cell, 0, len(f.Rows))}
	for _, r := range f.Rows {
		if allMissing(r) {
			continue
		}
		out.Rows = append(out.Rows, append([]Cell(nil), r...))
	}
	return out
}

func allMissing(r []Cell) bool {
	for _, c := range r {
		if !c.IsMissing() {
			return false
		}
	}
	return true
}

// CoerceNumeric parses every NumericColumns cell present in f. Cells that do
// not hold a finite non-negative number become missing; the number of such
// failures is returned per column.
func CoerceNumeric(f Frame, log *slog.Logger) (Frame, map[string]int) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	out := f.Clone()
	failures := make(map[string]int)
	for _, name := range NumericColumns {
		j, ok := out.Index(name)
		if !ok {
			continue
		}
		for i, r := range out.Rows {
			c := r[j]
			switch c.Kind {
			case Missing:
				continue
			case Number:
				if validNumber(c.Num) {
					continue
				}
				r[j] = Cell{}
			case Text:
				x, ok := parseNumber(c.Text)
				if ok {
					r[j] = NumberCell(x)
					continue
				}
				r[j] = Cell{}
				log.Debug("unparsable numeric cell",
					slog.String("column", name),
					slog.Int("row", i+1),
					slog.String("value", c.Text),
				)
			}
			failures[name]++
		}
	}
	return out, failures
}

func parseNumber(s string) (float64, bool) {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !validNumber(x) {
		return 0, false
	}
	return x, true
}

func validNumber(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}

// FillDefaults replaces missing numeric cells with 0 and missing text cells
// with DefaultText. Code columns are left missing.
func FillDefaults(f Frame) Frame {
	out := f.Clone()
	for _, name := range NumericColumns {
		if j, ok := out.Index(name); ok {
			for _, r := range out.Rows {
				if r[j].IsMissing() {
					r[j] = NumberCell(0)
				}
			}
		}
	}
	for _, name := range TextColumns {
		if j, ok := out.Index(name); ok {
			for _, r := range out.Rows {
				if r[j].IsMissing() {
					r[j] = TextCell(DefaultText)
				}
			}
		}
	}
	return out
}
