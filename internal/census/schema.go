package census

import (
	"errors"
	"fmt"
	"strings"
)

// Canonical column names of a normalized census table, in positional order.
const (
	StateCode           = "State_Code"
	DistrictCode        = "District_Code"
	SubdistrictCode     = "Subdistrict_Code"
	AreaName            = "Area_Name"
	AreaType            = "Area_Type"
	RuralUrban          = "Rural_Urban"
	NoOfVillages        = "No_of_Villages"
	NoOfTowns           = "No_of_Towns"
	UninhabitedVillages = "Uninhabited_Villages"
	Households          = "Households"
	PopulationTotal     = "Population_Total"
	PopulationMale      = "Population_Male"
	PopulationFemale    = "Population_Female"
	AreaSqKm            = "Area_sq_km"
	DensityPerSqKm      = "Density_per_sqkm"
)

// DefaultText replaces missing values in the descriptive text columns.
const DefaultText = "Unknown"

// Columns is the fixed schema bound positionally onto every source sheet.
var Columns = []string{
	StateCode, DistrictCode, SubdistrictCode,
	AreaName, AreaType, RuralUrban,
	NoOfVillages, NoOfTowns, UninhabitedVillages,
	Households, PopulationTotal, PopulationMale, PopulationFemale,
	AreaSqKm, DensityPerSqKm,
}

// NumericColumns are coerced to numbers and default to 0.
var NumericColumns = []string{
	NoOfVillages, NoOfTowns, UninhabitedVillages,
	Households, PopulationTotal, PopulationMale, PopulationFemale,
	AreaSqKm, DensityPerSqKm,
}

// TextColumns default to DefaultText. Code columns have no default.
var TextColumns = []string{AreaName, AreaType, RuralUrban}

// ErrSchemaMismatch is returned when a source cannot be bound to Columns.
var ErrSchemaMismatch = errors.New("schema mismatch")

var columnIndex = func() map[string]int {
	m := make(map[string]int, len(Columns))
	for i, c := range Columns {
		m[c] = i
	}
	return m
}()

// ColumnIndex returns the position of a canonical column. Lookup is
// case-insensitive so CLI flags can pass e.g. "population_total".
func ColumnIndex(name string) (int, bool) {
	if i, ok := columnIndex[name]; ok {
		return i, true
	}
	for i, c := range Columns {
		if strings.EqualFold(c, strings.TrimSpace(name)) {
			return i, true
		}
	}
	return -1, false
}

// IsNumeric reports whether the named column is one of NumericColumns.
func IsNumeric(name string) bool {
	for _, c := range NumericColumns {
		if c == name {
			return true
		}
	}
	return false
}

// naTokens are cell contents treated as missing, matching the NA strings
// spreadsheet readers conventionally recognise.
var naTokens = map[string]struct{}{
	"":         {},
	"NA":       {},
	"N/A":      {},
	"n/a":      {},
	"NaN":      {},
	"nan":      {},
	"-NaN":     {},
	"-nan":     {},
	"NULL":     {},
	"null":     {},
	"None":     {},
	"#N/A":     {},
	"#NA":      {},
	"<NA>":     {},
	"#N/A N/A": {},
	"-1.#IND":  {},
	"1.#IND":   {},
	"-1.#QNAN": {},
	"1.#QNAN":  {},
}

// IsBlank reports whether a raw cell carries no usable value.
func IsBlank(raw string) bool {
	_, ok := naTokens[strings.TrimSpace(raw)]
	return ok
}

// BindSchema assigns the canonical names to raw positional rows. The source
// width must match len(Columns) exactly; short rows are padded with missing
// cells because spreadsheet readers drop trailing empty cells.
func BindSchema(width int, rows [][]string) (Frame, error) {
	if width != len(Columns) {
		return Frame{}, fmt.Errorf("%w: source has %d columns, want %d", ErrSchemaMismatch, width, len(Columns))
	}
	out := Frame{Columns: append([]string(nil), Columns...), Rows: make([][]Cell, 0, len(rows))}
	for i, rec := range rows {
		if len(rec) > width {
			return Frame{}, fmt.Errorf("%w: row %d has %d cells, want at most %d", ErrSchemaMismatch, i+1, len(rec), width)
		}
		row := make([]Cell, width)
		for j, v := range rec {
			if IsBlank(v) {
				continue
			}
			row[j] = TextCell(strings.TrimSpace(v))
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}
