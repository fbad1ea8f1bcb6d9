package census

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRow(name string) []string {
	return []string{"09", "123", "00456", name, "SUB-DISTRICT", "Rural",
		"12", "1", "0", "2500", "12000", "6100", "5900", "85.5", "140.35"}
}

func blankRow() []string {
	return make([]string, len(Columns))
}

func bind(t *testing.T, rows ...[]string) Frame {
	t.Helper()
	f, err := BindSchema(len(Columns), rows)
	require.NoError(t, err)
	return f
}

func TestBindSchemaRejectsWrongWidth(t *testing.T) {
	for _, width := range []int{0, 14, 16} {
		_, err := BindSchema(width, nil)
		require.ErrorIs(t, err, ErrSchemaMismatch, "width %d", width)
	}
}

func TestBindSchemaRejectsOverlongRow(t *testing.T) {
	row := append(validRow("X"), "extra")
	_, err := BindSchema(len(Columns), [][]string{row})
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestBindSchemaPadsShortRowsAndNamesColumns(t *testing.T) {
	f := bind(t, []string{"09", "", "", "Village A"})
	require.Equal(t, Columns, f.Columns)
	require.Len(t, f.Rows, 1)
	require.Len(t, f.Rows[0], len(Columns))
	assert.Equal(t, TextCell("Village A"), f.Rows[0][3])
	assert.True(t, f.Rows[0][1].IsMissing())
	assert.True(t, f.Rows[0][14].IsMissing())
}

func TestBindSchemaTreatsNATokensAsMissing(t *testing.T) {
	row := validRow("N/A")
	row[4] = "  "
	row[5] = "nan"
	f := bind(t, row)
	assert.True(t, f.Rows[0][3].IsMissing())
	assert.True(t, f.Rows[0][4].IsMissing())
	assert.True(t, f.Rows[0][5].IsMissing())
}

func TestNormalizeUnparsableHouseholdsBecomesZero(t *testing.T) {
	row := validRow("Village A")
	row[9] = "N/A"
	row2 := validRow("Village B")
	row2[9] = "about 40"
	out, rep := Normalize(bind(t, row, row2), nil)

	recs, err := out.Records()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 0.0, recs[0].Households)
	assert.Equal(t, 0.0, recs[1].Households)
	assert.Equal(t, 12000.0, recs[0].PopulationTotal)
	// "N/A" is blank at bind time; only the free text is a parse failure.
	assert.Equal(t, 1, rep.ParseFailures[Households])
}

func TestNormalizeDropsAllBlankRows(t *testing.T) {
	out, rep := Normalize(bind(t, validRow("A"), blankRow(), validRow("B"), []string{"", "N/A", " "}), nil)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, 4, rep.InputRows)
	assert.Equal(t, 2, rep.DroppedRows)
	assert.Equal(t, 2, rep.OutputRows)
	names, err := out.Strings(AreaName)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names)
}

func TestNormalizeKeepsPartiallyBlankRows(t *testing.T) {
	partial := blankRow()
	partial[0] = "27"
	out, _ := Normalize(bind(t, partial), nil)
	require.Equal(t, 1, out.Len())

	recs, err := out.Records()
	require.NoError(t, err)
	r := recs[0]
	assert.Equal(t, "27", r.StateCode)
	assert.Equal(t, "", r.DistrictCode, "code columns are not defaulted")
	assert.Equal(t, DefaultText, r.AreaName)
	assert.Equal(t, DefaultText, r.AreaType)
	assert.Equal(t, DefaultText, r.RuralUrban)
	assert.Zero(t, r.DensityPerSqKm)
}

func TestNormalizeRejectsNegativeAndNonFinite(t *testing.T) {
	row := validRow("A")
	row[6] = "-3"
	row[13] = "Inf"
	row[14] = "1e3"
	out, rep := Normalize(bind(t, row), nil)
	recs, err := out.Records()
	require.NoError(t, err)
	assert.Zero(t, recs[0].NoOfVillages)
	assert.Zero(t, recs[0].AreaSqKm)
	assert.Equal(t, 1000.0, recs[0].DensityPerSqKm)
	assert.Equal(t, 2, rep.TotalParseFailures())
}

func TestNormalizeTotalityAndTypeSafety(t *testing.T) {
	rows := [][]string{
		validRow("A"),
		{"", "", "", "", "", "", "x", "y", "", "1,200", "", "", "", "", "7"},
		{"1", "2", "3"},
		blankRow(),
	}
	out, rep := Normalize(bind(t, rows...), nil)
	assert.LessOrEqual(t, out.Len(), len(rows))
	assert.Equal(t, 3, out.Len())
	assert.Equal(t, 3, rep.TotalParseFailures())

	for i, r := range out.Rows {
		require.Len(t, r, len(Columns))
		for _, name := range NumericColumns {
			j, _ := out.Index(name)
			require.Equal(t, Number, r[j].Kind, "row %d column %s", i, name)
			assert.GreaterOrEqual(t, r[j].Num, 0.0)
		}
		for _, name := range TextColumns {
			j, _ := out.Index(name)
			require.Equal(t, Text, r[j].Kind, "row %d column %s", i, name)
			assert.NotEmpty(t, r[j].Text)
		}
	}
}

func TestNormalizeRowCountUnchangedWithoutBlankRows(t *testing.T) {
	rows := make([][]string, 0, 25)
	for i := 0; i < 25; i++ {
		rows = append(rows, validRow("Area "+strconv.Itoa(i)))
	}
	out, rep := Normalize(bind(t, rows...), nil)
	assert.Equal(t, 25, out.Len())
	assert.Zero(t, rep.DroppedRows)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	row := validRow("A")
	row[9] = "N/A"
	row[10] = "lots"
	partial := blankRow()
	partial[5] = "Urban"
	once, _ := Normalize(bind(t, row, blankRow(), partial), nil)
	twice, rep := Normalize(once, nil)

	assert.Equal(t, once, twice)
	assert.Zero(t, rep.DroppedRows)
	assert.Zero(t, rep.TotalParseFailures())
}

func TestStagesDoNotMutateInput(t *testing.T) {
	row := validRow("A")
	row[9] = "bad"
	in := bind(t, row, blankRow())
	snapshot := in.Clone()

	_ = DropEmpty(in)
	_, _ = CoerceNumeric(in, nil)
	_ = FillDefaults(in)
	assert.Equal(t, snapshot, in)
}

func TestNormalizeEmptyFrame(t *testing.T) {
	out, rep := Normalize(bind(t), nil)
	assert.Zero(t, out.Len())
	assert.Equal(t, Columns, out.Columns)
	assert.Zero(t, rep.InputRows)
}

func TestColumnIndexCaseInsensitive(t *testing.T) {
	i, ok := ColumnIndex("population_total")
	require.True(t, ok)
	assert.Equal(t, 10, i)
	_, ok = ColumnIndex("nope")
	assert.False(t, ok)
	assert.True(t, IsNumeric(DensityPerSqKm))
	assert.False(t, IsNumeric(AreaName))
}
