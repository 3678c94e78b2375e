package simplex

import "linsolve/rational"

// enteringColumn applies Bland's rule (§4.8): the leftmost column in the
// current variable block with a strictly negative entry in objRow. Returns
// -1 if none exists (optimal).
func (t *tableau) enteringColumn(objRow int) int {
	for col := t.identWidth; col < t.identWidth+t.varWidth; col++ {
		if t.rows[objRow][col].IsNegative() {
			return col
		}
	}
	return -1
}

// leavingRow runs the ratio test over the m constraint rows, breaking ties
// on the smallest basic-variable index (the other half of Bland's rule, to
// guarantee termination). Returns -1 if q is unbounded (no positive entry
// in any constraint row).
func (t *tableau) leavingRow(q int) int {
	r := -1
	var best rational.Rational
	for i := 0; i < t.m; i++ {
		entry := t.rows[t.firstRow+i][q]
		if !entry.IsPositive() {
			continue
		}
		ratio, err := t.rows[t.firstRow+i][t.rhsCol()].Div(entry)
		if err != nil {
			panic(err) // entry already proven > 0 above
		}
		if r == -1 {
			r, best = i, ratio
			continue
		}
		switch ratio.Cmp(best) {
		case -1:
			r, best = i, ratio
		case 0:
			if t.basicVars[i] < t.basicVars[r] {
				r = i
			}
		}
	}
	return r
}

// direction builds the unboundedness certificate (§4.8/§6): the ray
// x + theta*d stays feasible and improves the objective without bound,
// where d has a 1 in the unbounded entering column and, for every basic
// row, the negated entry of that column.
func (t *tableau) direction(q int) []rational.Rational {
	d := make([]rational.Rational, t.varWidth)
	d[q-t.identWidth] = rational.One()
	for i := 0; i < t.m; i++ {
		bv := t.basicVars[i] - t.identWidth
		if bv >= t.varWidth {
			continue // redundant row still holding a stripped artificial
		}
		d[bv] = t.rows[t.firstRow+i][q].Neg()
	}
	return d
}

// loopOutcome is the result of running the pivot loop to termination.
type loopOutcome struct {
	unbounded bool
	direction []rational.Rational
}

// run iterates the pivot loop on objRow until optimal or unbounded.
// Bland's rule (leftmost entering column, smallest-index tie-break on the
// leaving row) guarantees termination without cycling (§8, "Bland
// termination").
func (t *tableau) run(objRow int) loopOutcome {
	for {
		q := t.enteringColumn(objRow)
		if q == -1 {
			return loopOutcome{}
		}
		r := t.leavingRow(q)
		if r == -1 {
			return loopOutcome{unbounded: true, direction: t.direction(q)}
		}
		t.pivot(t.firstRow+r, q)
		t.basicVars[r] = q
	}
}
