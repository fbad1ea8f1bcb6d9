package analysis

import (
	"fmt"
	"math"

	"github.com/rishav98909/NO-OF-VILLAGES-TOWNS-HOUSEHOLDS-POPULATION-AND-AREA/internal/census"
)

// CorrMatrix holds a symmetric Pearson correlation matrix across numeric columns.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64 // row-major, Values[i][j]
}

// At returns the coefficient for the named pair.
func (m CorrMatrix) At(a, b string) (float64, error) {
	ia, ib := -1, -1
	for i, c := range m.Columns {
		if c == a {
			ia = i
		}
		if c == b {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return 0, fmt.Errorf("unknown column pair %q, %q", a, b)
	}
	return m.Values[ia][ib], nil
}

type pairAcc struct {
	n     float64
	sumX  float64
	sumY  float64
	sumXX float64
	sumYY float64
	sumXY float64
}

const varEpsilon = 1e-12

func (p *pairAcc) add(x, y float64) {
	p.n++
	p.sumX += x
	p.sumY += y
	p.sumXX += x * x
	p.sumYY += y * y
	p.sumXY += x * y
}

// r is NaN when either side has zero variance or fewer than two pairs exist.
func (p *pairAcc) r() float64 {
	if p.n < 2 {
		return math.NaN()
	}
	vx := p.n*p.sumXX - p.sumX*p.sumX
	vy := p.n*p.sumYY - p.sumY*p.sumY
	// Cancellation leaves tiny residues for constant columns.
	if vx <= varEpsilon*p.n*p.sumXX || vy <= varEpsilon*p.n*p.sumYY {
		return math.NaN()
	}
	denom := math.Sqrt(vx * vy)
	r := (p.n*p.sumXY - p.sumX*p.sumY) / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}

// Correlate computes Pearson coefficients between every pair of
// NumericColumns, using rows where both cells are numbers.
func Correlate(f census.Frame) CorrMatrix {
	var idx []int
	var names []string
	for _, name := range census.NumericColumns {
		if j, ok := f.Index(name); ok {
			idx = append(idx, j)
			names = append(names, name)
		}
	}
	n := len(idx)
	acc := make([][]pairAcc, n)
	for i := range acc {
		acc[i] = make([]pairAcc, n)
	}
	for _, row := range f.Rows {
		for a := 0; a < n; a++ {
			ca := row[idx[a]]
			if ca.Kind != census.Number {
				continue
			}
			for b := a; b < n; b++ {
				cb := row[idx[b]]
				if cb.Kind != census.Number {
					continue
				}
				acc[a][b].add(ca.Num, cb.Num)
			}
		}
	}
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
	}
	for a := 0; a < n; a++ {
		for b := a; b < n; b++ {
			r := acc[a][b].r()
			if a == b && !math.IsNaN(r) {
				r = 1
			}
			mat[a][b] = r
			mat[b][a] = r
		}
	}
	return CorrMatrix{Columns: names, Values: mat}
}
