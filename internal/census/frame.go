package census

import (
	"fmt"
	"strconv"
)

// CellKind tags the value held by a Cell.
type CellKind uint8

const (
	Missing CellKind = iota
	Text
	Number
)

func (k CellKind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Text:
		return "text"
	case Number:
		return "number"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// Cell is one table value. The zero Cell is missing.
type Cell struct {
	Kind CellKind
	Text string
	Num  float64
}

// TextCell returns a Text cell.
func TextCell(s string) Cell { return Cell{Kind: Text, Text: s} }

// NumberCell returns a Number cell.
func NumberCell(x float64) Cell { return Cell{Kind: Number, Num: x} }

// IsMissing reports whether the cell has no value.
func (c Cell) IsMissing() bool { return c.Kind == Missing }

// String renders the cell for console output; missing cells render empty.
func (c Cell) String() string {
	switch c.Kind {
	case Text:
		return c.Text
	case Number:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// Frame is an in-memory table with named columns. Pipeline stages never
// mutate their input Frame; they return a new one.
type Frame struct {
	Columns []string
	Rows    [][]Cell
}

// Len returns the number of rows.
func (f Frame) Len() int { return len(f.Rows) }

// Index returns the position of the named column in this frame.
func (f Frame) Index(name string) (int, bool) {
	for i, c := range f.Columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

// Clone returns a deep copy of f.
func (f Frame) Clone() Frame {
	out := Frame{Columns: append([]string(nil), f.Columns...), Rows: make([][]Cell, len(f.Rows))}
	for i, r := range f.Rows {
		out.Rows[i] = append([]Cell(nil), r...)
	}
	return out
}

// Floats returns the numeric values of a column. Non-number cells are skipped.
func (f Frame) Floats(name string) ([]float64, error) {
	j, ok := f.Index(name)
	if !ok {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	out := make([]float64, 0, len(f.Rows))
	for _, r := range f.Rows {
		if r[j].Kind == Number {
			out = append(out, r[j].Num)
		}
	}
	return out, nil
}

// Strings returns the string rendering of every cell in a column.
func (f Frame) Strings(name string) ([]string, error) {
	j, ok := f.Index(name)
	if !ok {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	out := make([]string, len(f.Rows))
	for i, r := range f.Rows {
		out[i] = r[j].String()
	}
	return out, nil
}

// AreaRecord is the typed view of one normalized row. Empty code strings
// mean the code was missing in the source.
type AreaRecord struct {
	StateCode           string
	DistrictCode        string
	SubdistrictCode     string
	AreaName            string
	AreaType            string
	RuralUrban          string
	NoOfVillages        float64
	NoOfTowns           float64
	UninhabitedVillages float64
	Households          float64
	PopulationTotal     float64
	PopulationMale      float64
	PopulationFemale    float64
	AreaSqKm            float64
	DensityPerSqKm      float64
}

// Records converts a normalized frame with the canonical schema into typed
// records.
func (f Frame) Records() ([]AreaRecord, error) {
	if len(f.Columns) != len(Columns) {
		return nil, fmt.Errorf("%w: frame has %d columns, want %d", ErrSchemaMismatch, len(f.Columns), len(Columns))
	}
	out := make([]AreaRecord, len(f.Rows))
	for i, r := range f.Rows {
		out[i] = AreaRecord{
			StateCode:           r[0].String(),
			DistrictCode:        r[1].String(),
			SubdistrictCode:     r[2].String(),
			AreaName:            r[3].String(),
			AreaType:            r[4].String(),
			RuralUrban:          r[5].String(),
			NoOfVillages:        r[6].Num,
			NoOfTowns:           r[7].Num,
			UninhabitedVillages: r[8].Num,
			Households:          r[9].Num,
			PopulationTotal:     r[10].Num,
			PopulationMale:      r[11].Num,
			PopulationFemale:    r[12].Num,
			AreaSqKm:            r[13].Num,
			DensityPerSqKm:      r[14].Num,
		}
	}
	return out, nil
}
