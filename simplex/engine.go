// Package simplex implements the two-phase revised simplex engine of
// §4.7-§4.8: extended-tableau construction, Phase I (drive artificials to
// zero or prove infeasibility), Phase II (optimize the real objective or
// prove unboundedness), and certificate extraction for all three outcomes.
package simplex

import (
	"fmt"

	"linsolve/normalize"
	"linsolve/rational"
)

// Solve runs the two-phase method over sf and returns the status, solution,
// and certificate (§4.7-§4.9). It never returns an error: every failure mode
// it can hit (a malformed StandardForm) is a programmer bug upstream, not a
// user-facing condition, so it panics with ErrShape/ErrArithmetic instead,
// exactly as §7 classifies ShapeError and ArithmeticError.
func Solve(sf *normalize.StandardForm) *Result {
	t := buildPhase1(sf)
	out := t.run(1)
	if out.unbounded {
		panic(fmt.Errorf("%w: phase-I objective is unbounded", ErrShape))
	}

	phase1Value := t.rows[1][t.rhsCol()]
	if phase1Value.IsPositive() {
		panic(fmt.Errorf("%w: phase-I objective value positive after optimum", ErrShape))
	}
	if phase1Value.IsNegative() {
		y := append([]rational.Rational(nil), t.rows[1][0:t.identWidth]...)
		return &Result{Status: Infeasible, FarkasY: y}
	}

	fixupArtificials(t, sf)
	t2 := stripToPhase2(t, sf)
	out2 := t2.run(0)
	if out2.unbounded {
		return &Result{Status: Unbounded, Direction: out2.direction}
	}

	value := t2.rows[0][t2.rhsCol()].Add(sf.Gamma)
	if !sf.IsMax {
		value = value.Neg()
	}

	x := make([]rational.Rational, sf.N)
	for i := 0; i < t2.m; i++ {
		bv := t2.basicVars[i] - t2.identWidth
		if bv >= 0 && bv < sf.N {
			x[bv] = t2.rows[t2.firstRow+i][t2.rhsCol()]
		}
	}
	y := append([]rational.Rational(nil), t2.rows[0][0:t2.identWidth]...)
	return &Result{Status: Optimal, Value: value, X: x, Dual: y}
}

// fixupArtificials handles the degenerate case where Phase I reaches w*=0
// with an artificial variable still basic at value zero. It tries to pivot
// each such row onto any non-artificial column with a nonzero entry; a row
// that has none left is a redundant constraint and is left as is: its
// basicVars entry still names the artificial column after stripping, and
// Phase II skips that entry when reading the solution and the
// unboundedness direction.
func fixupArtificials(t *tableau, sf *normalize.StandardForm) {
	realWidth := sf.N + sf.K
	for i := 0; i < t.m; i++ {
		bv := t.basicVars[i] - t.identWidth
		if bv < realWidth {
			continue
		}
		row := t.firstRow + i
		for col := t.identWidth; col < t.identWidth+realWidth; col++ {
			if !t.rows[row][col].IsZero() {
				t.pivot(row, col)
				t.basicVars[i] = col
				break
			}
		}
	}
}

// stripToPhase2 drops the Phase-I objective row and every artificial
// column, leaving the original objective row and the m constraint rows
// over just the var+slack block.
func stripToPhase2(t *tableau, sf *normalize.StandardForm) *tableau {
	realWidth := sf.N + sf.K
	total := t.identWidth + realWidth + 1

	slice := func(src []rational.Rational) []rational.Rational {
		row := make([]rational.Rational, 0, total)
		row = append(row, src[0:t.identWidth]...)
		row = append(row, src[t.identWidth:t.identWidth+realWidth]...)
		row = append(row, src[t.rhsCol()])
		return row
	}

	rows := make([][]rational.Rational, 1+t.m)
	rows[0] = slice(t.rows[0])
	for i := 0; i < t.m; i++ {
		rows[1+i] = slice(t.rows[t.firstRow+i])
	}

	basicVars := make([]int, t.m)
	copy(basicVars, t.basicVars)

	return &tableau{
		rows:       rows,
		m:          t.m,
		identWidth: t.identWidth,
		varWidth:   realWidth,
		objRows:    []int{0},
		firstRow:   1,
		basicVars:  basicVars,
	}
}
