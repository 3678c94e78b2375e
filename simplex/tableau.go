package simplex

import (
	"fmt"

	"linsolve/normalize"
	"linsolve/rational"
)

// tableau is the extended layout §3 describes: an m-wide identity block
// that records the cumulative row operations (so a dual or Farkas
// certificate can be read straight off it at any point), the current
// variable/slack(/artificial) block, and a trailing rhs column.
//
//	Row 0: original objective   (identity | -c | rhs)
//	Row 1: Phase-I objective    (identity |  w | rhs)   -- present only during Phase I
//	Rows : one per constraint   (identity |  A | rhs)
type tableau struct {
	rows       [][]rational.Rational
	m          int // number of constraint rows
	identWidth int // == m
	varWidth   int // current width of the var/slack(/artificial) block
	objRows    []int
	firstRow   int // index of the first constraint row
	basicVars  []int
}

func (t *tableau) rhsCol() int { return t.identWidth + t.varWidth }

// buildPhase1 assembles the extended tableau for sf and eliminates every
// present objective row against each basic row, so row 0 (and row 1) start
// consistent with whatever initial basis normalize.Build found -- not only
// the slack/artificial columns it usually is, but also an ordinary
// decision-variable column when one happens to already form a unit vector
// (§4.6 makes no distinction). Skipping this step would leave the
// objective rows' entries under a basic column nonzero, corrupting both
// the optimality test and the reported objective value.
func buildPhase1(sf *normalize.StandardForm) *tableau {
	m := len(sf.B)
	nCur := len(sf.C)
	total := m + nCur + 1

	rows := make([][]rational.Rational, 2+m)

	row0 := make([]rational.Rational, total)
	for j := 0; j < nCur; j++ {
		row0[m+j] = sf.C[j].Neg()
	}
	rows[0] = row0

	row1 := make([]rational.Rational, total)
	for _, ac := range sf.ArtificialCols {
		row1[m+ac] = rational.One()
	}
	rows[1] = row1

	for i := 0; i < m; i++ {
		row := make([]rational.Rational, total)
		row[i] = rational.One()
		for j := 0; j < nCur; j++ {
			row[m+j] = sf.M[i][j]
		}
		row[total-1] = sf.B[i]
		rows[2+i] = row
	}

	basicVars := make([]int, m)
	for i, bv := range sf.BasicVars {
		basicVars[i] = m + bv
	}

	t := &tableau{
		rows:       rows,
		m:          m,
		identWidth: m,
		varWidth:   nCur,
		objRows:    []int{0, 1},
		firstRow:   2,
		basicVars:  basicVars,
	}
	for i := 0; i < m; i++ {
		t.eliminateObjRows(t.firstRow+i, basicVars[i])
	}
	return t
}

func (t *tableau) eliminateObjRows(constraintRow, pivotCol int) {
	for _, or := range t.objRows {
		factor := t.rows[or][pivotCol]
		if factor.IsZero() {
			continue
		}
		t.rows[or] = rowSub(t.rows[or], rowScale(t.rows[constraintRow], factor))
	}
}

// pivot performs the standard full-tableau pivot at (pivotRow, pivotCol):
// normalize the pivot row to a leading 1, then eliminate pivotCol out of
// every other row, objective rows included.
func (t *tableau) pivot(pivotRow, pivotCol int) {
	pivotVal := t.rows[pivotRow][pivotCol]
	if pivotVal.IsZero() {
		panic(fmt.Errorf("%w: pivot at row %d col %d", ErrArithmetic, pivotRow, pivotCol))
	}
	t.rows[pivotRow] = rowDivScalar(t.rows[pivotRow], pivotVal)
	for i := range t.rows {
		if i == pivotRow {
			continue
		}
		factor := t.rows[i][pivotCol]
		if factor.IsZero() {
			continue
		}
		t.rows[i] = rowSub(t.rows[i], rowScale(t.rows[pivotRow], factor))
	}
}

func rowScale(row []rational.Rational, factor rational.Rational) []rational.Rational {
	out := make([]rational.Rational, len(row))
	for i, v := range row {
		out[i] = v.Mul(factor)
	}
	return out
}

func rowSub(a, b []rational.Rational) []rational.Rational {
	out := make([]rational.Rational, len(a))
	for i := range a {
		out[i] = a[i].Sub(b[i])
	}
	return out
}

func rowDivScalar(row []rational.Rational, d rational.Rational) []rational.Rational {
	out := make([]rational.Rational, len(row))
	for i, v := range row {
		q, err := v.Div(d)
		if err != nil {
			panic(fmt.Errorf("%w: %s", ErrArithmetic, err))
		}
		out[i] = q
	}
	return out
}
