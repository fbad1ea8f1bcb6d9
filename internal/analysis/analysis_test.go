package analysis

import (
	"bytes"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
)

// frameOf builds a normalized frame where row i gets name names[i] and the
// numeric columns are filled by fill(i, column).
func frameOf(t *testing.T, names []string, fill func(i int, col string) string) census.Frame {
	t.Helper()
	rows := make([][]string, len(names))
	for i, n := range names {
		r := make([]string, len(census.Columns))
		r[3] = n
		r[5] = "Rural"
		if i%3 == 0 {
			r[5] = "Urban"
		}
		for j, c := range census.Columns {
			if census.IsNumeric(c) {
				r[j] = fill(i, c)
			}
		}
		rows[i] = r
	}
	f, err := census.BindSchema(len(census.Columns), rows)
	require.NoError(t, err)
	out, _ := census.Normalize(f, nil)
	return out
}

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "Area " + strconv.Itoa(i)
	}
	return out
}

func TestTopNByDensity(t *testing.T) {
	density := []float64{5, 3, 9, 1, 7, 2, 8, 4, 6, 0, 10, 11}
	f := frameOf(t, names(len(density)), func(i int, col string) string {
		if col == census.DensityPerSqKm {
			return strconv.FormatFloat(density[i], 'f', -1, 64)
		}
		return "1"
	})

	top, err := TopN(f, census.DensityPerSqKm, DefaultTopN)
	require.NoError(t, err)
	got, err := top.Floats(census.DensityPerSqKm)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}, got)
	assert.NotContains(t, got, 1.0)
	assert.NotContains(t, got, 0.0)
	assert.Equal(t, 12, f.Len(), "input frame is untouched")
}

func TestTopNStableOnTies(t *testing.T) {
	pop := []float64{7, 9, 7, 9, 1}
	f := frameOf(t, names(len(pop)), func(i int, col string) string {
		if col == census.PopulationTotal {
			return strconv.FormatFloat(pop[i], 'f', -1, 64)
		}
		return "0"
	})
	top, err := TopN(f, census.PopulationTotal, 4)
	require.NoError(t, err)
	got, err := top.Strings(census.AreaName)
	require.NoError(t, err)
	assert.Equal(t, []string{"Area 1", "Area 3", "Area 0", "Area 2"}, got)
}

func TestTopNRejectsBadColumn(t *testing.T) {
	f := frameOf(t, names(2), func(int, string) string { return "1" })
	_, err := TopN(f, "Nope", 3)
	require.Error(t, err)
	_, err = TopN(f, census.AreaName, 3)
	require.Error(t, err)

	all, err := TopN(f, census.Households, 50)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Len())
}

func TestDescribe(t *testing.T) {
	f := frameOf(t, names(4), func(i int, col string) string {
		return strconv.Itoa(i + 1)
	})
	s := Describe(f)
	require.Len(t, s.Columns, len(census.NumericColumns))

	c, ok := s.Column(census.Households)
	require.True(t, ok)
	assert.Equal(t, 4, c.Count)
	assert.InDelta(t, 2.5, c.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(5.0/3.0), c.Std, 1e-9)
	assert.Equal(t, 1.0, c.Min)
	assert.InDelta(t, 1.75, c.Q25, 1e-9)
	assert.InDelta(t, 2.5, c.Q50, 1e-9)
	assert.InDelta(t, 3.25, c.Q75, 1e-9)
	assert.Equal(t, 4.0, c.Max)
}

func TestDescribeEmptyTable(t *testing.T) {
	f := frameOf(t, nil, nil)
	var s Summary
	require.NotPanics(t, func() { s = Describe(f) })
	require.Len(t, s.Columns, len(census.NumericColumns))
	for _, c := range s.Columns {
		assert.Zero(t, c.Count, c.Name)
		assert.True(t, math.IsNaN(c.Mean), c.Name)
		assert.True(t, math.IsNaN(c.Max), c.Name)
	}

	var buf bytes.Buffer
	WriteSummary(&buf, s)
	assert.Contains(t, buf.String(), "count")
	assert.Contains(t, buf.String(), "NaN")
}

func TestDescribeSingleRowHasNoStd(t *testing.T) {
	f := frameOf(t, names(1), func(int, string) string { return "3" })
	c, ok := Describe(f).Column(census.AreaSqKm)
	require.True(t, ok)
	assert.Equal(t, 1, c.Count)
	assert.Equal(t, 3.0, c.Mean)
	assert.True(t, math.IsNaN(c.Std))
}

func TestCorrelate(t *testing.T) {
	f := frameOf(t, names(5), func(i int, col string) string {
		switch col {
		case census.Households:
			return strconv.Itoa(i + 1)
		case census.PopulationTotal:
			return strconv.Itoa(5 * (i + 1))
		case census.AreaSqKm:
			return strconv.Itoa(10 - i)
		default:
			return "4"
		}
	})
	m := Correlate(f)
	require.Len(t, m.Columns, len(census.NumericColumns))

	r, err := m.At(census.Households, census.PopulationTotal)
	require.NoError(t, err)
	assert.InDelta(t, 1, r, 1e-9)

	r, err = m.At(census.Households, census.AreaSqKm)
	require.NoError(t, err)
	assert.InDelta(t, -1, r, 1e-9)

	r, err = m.At(census.Households, census.Households)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)

	r, err = m.At(census.NoOfTowns, census.Households)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r), "constant column has no correlation")

	_, err = m.At("x", census.Households)
	require.Error(t, err)
}

func TestCorrelateEmpty(t *testing.T) {
	m := Correlate(frameOf(t, nil, nil))
	for i := range m.Values {
		for _, r := range m.Values[i] {
			assert.True(t, math.IsNaN(r))
		}
	}
}

func TestValueCounts(t *testing.T) {
	f := frameOf(t, names(7), func(int, string) string { return "1" })
	counts, err := ValueCounts(f, census.RuralUrban)
	require.NoError(t, err)
	assert.Equal(t, []CategoryCount{{Value: "Rural", Count: 4}, {Value: "Urban", Count: 3}}, counts)

	var buf bytes.Buffer
	WriteCounts(&buf, census.RuralUrban, counts)
	assert.Contains(t, buf.String(), "57.1%")
}

func TestValueCountsTiesKeepFirstAppearance(t *testing.T) {
	f := frameOf(t, names(6), func(int, string) string { return "1" })
	counts, err := ValueCounts(f, census.AreaName)
	require.NoError(t, err)
	require.Len(t, counts, 6)
	assert.Equal(t, "Area 0", counts[0].Value)
	assert.Equal(t, "Area 5", counts[5].Value)
}

func TestWriteInfoListsParseFailures(t *testing.T) {
	var buf bytes.Buffer
	WriteInfo(&buf, "a.xlsx", "Sheet1", census.Report{
		InputRows: 10, DroppedRows: 2, OutputRows: 8,
		ParseFailures: map[string]int{census.Households: 3},
	})
	out := buf.String()
	assert.Contains(t, out, "Rows: 10 read, 2 blank dropped, 8 kept")
	assert.Contains(t, out, "- Households: 3")
}

func TestWriteRows(t *testing.T) {
	f := frameOf(t, names(2), func(int, string) string { return "12.5" })
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, f, census.AreaName, census.AreaSqKm))
	assert.Contains(t, buf.String(), "Area 1")
	assert.Contains(t, buf.String(), "12.5")
	require.Error(t, WriteRows(&buf, f, "nope"))
}
