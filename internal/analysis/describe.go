package analysis

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
)

// ColumnStats is the descriptive summary of one numeric column. With no
// values Count is 0 and every other field is NaN; Std needs two values.
type ColumnStats struct {
	Name  string
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64
}

// Summary holds ColumnStats in schema order.
type Summary struct {
	Columns []ColumnStats
}

// Column returns the stats for name.
func (s Summary) Column(name string) (ColumnStats, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnStats{}, false
}

// Describe summarizes every numeric column of a normalized frame.
func Describe(f census.Frame) Summary {
	out := Summary{Columns: make([]ColumnStats, 0, len(census.NumericColumns))}
	for _, name := range census.NumericColumns {
		xs, err := f.Floats(name)
		if err != nil {
			continue
		}
		out.Columns = append(out.Columns, describeValues(name, xs))
	}
	return out
}

func describeValues(name string, xs []float64) ColumnStats {
	nan := math.NaN()
	cs := ColumnStats{Name: name, Count: len(xs), Mean: nan, Std: nan, Min: nan, Q25: nan, Q50: nan, Q75: nan, Max: nan}
	if len(xs) == 0 {
		return cs
	}
	s := stats.Sample{Xs: append([]float64(nil), xs...)}
	cs.Mean = s.Mean()
	if len(xs) > 1 {
		cs.Std = s.StdDev()
	}
	sorted := s.Xs
	sort.Float64s(sorted)
	cs.Min = sorted[0]
	cs.Max = sorted[len(sorted)-1]
	cs.Q25 = quantile(sorted, 0.25)
	cs.Q50 = quantile(sorted, 0.5)
	cs.Q75 = quantile(sorted, 0.75)
	return cs
}

// quantile interpolates linearly between the closest ranks of sorted.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
