package analysis

import (
	"fmt"
	"sort"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
)

// DefaultTopN is how many areas the ranking charts show.
const DefaultTopN = 10

// TopN returns the first n rows of f ordered by the numeric column `by`,
// largest first. Ties keep their source order. Missing cells sort last.
func TopN(f census.Frame, by string, n int) (census.Frame, error) {
	j, ok := f.Index(by)
	if !ok {
		return census.Frame{}, fmt.Errorf("unknown column %q", by)
	}
	if !census.IsNumeric(by) {
		return census.Frame{}, fmt.Errorf("column %q is not numeric", by)
	}
	out := f.Clone()
	sort.SliceStable(out.Rows, func(a, b int) bool {
		ca, cb := out.Rows[a][j], out.Rows[b][j]
		if ca.Kind != census.Number {
			return false
		}
		if cb.Kind != census.Number {
			return true
		}
		return ca.Num > cb.Num
	})
	if n >= 0 && n < len(out.Rows) {
		out.Rows = out.Rows[:n]
	}
	return out, nil
}

// CategoryCount is one distinct value of a text column and its frequency.
type CategoryCount struct {
	Value string
	Count int
}

// ValueCounts tallies the distinct values of a column, most frequent first;
// equal counts keep the order in which values first appear.
func ValueCounts(f census.Frame, column string) ([]CategoryCount, error) {
	vals, err := f.Strings(column)
	if err != nil {
		return nil, err
	}
	pos := map[string]int{}
	var tops []CategoryCount
	for _, v := range vals {
		if i, ok := pos[v]; ok {
			tops[i].Count++
			continue
		}
		pos[v] = len(tops)
		tops = append(tops, CategoryCount{Value: v, Count: 1})
	}
	sort.SliceStable(tops, func(i, j int) bool {
		return tops[i].Count > tops[j].Count
	})
	return tops, nil
}
