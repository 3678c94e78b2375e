// Package normalize turns a parsed lpmodel.Problem into the standard-form
// system §3-§4.6 describe: the Constraint Normalizer, the Free-Variable
// Expander, the LP Assembler, and the Initial-Basis/Artificial-Variable
// Introducer.
package normalize

import (
	"fmt"

	"linsolve/lpmodel"
	"linsolve/rational"
)

// StandardForm is the fully assembled system handed to the simplex
// engine: M = [A|S|W], one slack/surplus/artificial column set per row,
// plus enough bookkeeping (Sym, N, K, ArtificialCols) for the result
// shaper to later project the solution back onto user-named variables.
type StandardForm struct {
	M              [][]rational.Rational // m x (N+K+len(ArtificialCols))
	B              []rational.Rational   // length m, every entry >= 0
	C              []rational.Rational   // length N+K+len(ArtificialCols) (zeros over S|W)
	Gamma          rational.Rational
	IsMax          bool
	N              int // original + shadow variable columns
	K              int // slack/surplus columns, one per row
	BasicVars      []int
	ArtificialCols []int
	Sym            *lpmodel.SymbolTable
}

type emittedRow struct {
	row       []rational.Rational
	b         rational.Rational
	slackSign int // -1 (surplus), 0 (equality), +1 (slack)
}

// Build runs §4.3-§4.6 over p and returns the standard-form system.
func Build(p *lpmodel.Problem) (*StandardForm, error) {
	sym := p.Sym
	n0 := sym.NumOriginal()
	names := sym.Names()

	c0 := make([]rational.Rational, n0)
	for _, t := range p.ObjTerms {
		if t.Col < 0 || t.Col >= n0 {
			panic(fmt.Errorf("%w: objective column %d out of [0,%d)", ErrShape, t.Col, n0))
		}
		c0[t.Col] = c0[t.Col].Add(t.Coef)
	}

	emitted := make([]emittedRow, 0, len(p.Constraints))
	for _, raw := range p.Constraints {
		row := make([]rational.Rational, n0)
		for _, t := range raw.LHS {
			row[t.Col] = row[t.Col].Add(t.Coef)
		}
		for _, t := range raw.RHS {
			row[t.Col] = row[t.Col].Sub(t.Coef)
		}
		b := raw.RHSLiteral.Sub(raw.LHSLiteral)
		cmp := raw.Cmp

		if b.IsNegative() {
			row = negateRow(row)
			b = b.Neg()
			cmp = flipComparator(cmp)
		}

		if dropped := applyBoundingShortCircuit(row, b, cmp, names, sym); dropped {
			continue
		}

		var slackSign int
		switch cmp {
		case "<=":
			slackSign = 1
		case ">=":
			slackSign = -1
		case "==":
			slackSign = 0
		default:
			panic(fmt.Errorf("%w: unknown comparator %q", ErrShape, cmp))
		}

		emitted = append(emitted, emittedRow{row: row, b: b, slackSign: slackSign})
	}

	m := len(emitted)

	// Free-variable expansion (§4.4): allocate shadow columns for every
	// name still free after every constraint has been seen.
	freeNames := sym.FreeNames()
	ns := len(freeNames)
	n := n0 + ns

	c := make([]rational.Rational, n)
	copy(c, c0)
	for i := range emitted {
		extended := make([]rational.Rational, n)
		copy(extended, emitted[i].row)
		emitted[i].row = extended
	}
	for idx, name := range freeNames {
		v, ok := sym.Lookup(name)
		if !ok {
			panic(fmt.Errorf("%w: free variable %q missing from symbol table", ErrShape, name))
		}
		shadowCol := n0 + idx
		sym.SetShadow(name, shadowCol)
		c[shadowCol] = c0[v.Col].Neg()
		for i := range emitted {
			emitted[i].row[shadowCol] = emitted[i].row[v.Col].Neg()
		}
	}

	// LP Assembler (§4.5): M = [A|S], one slack/surplus column per row.
	k := m
	width := n + k
	M := make([][]rational.Rational, m)
	B := make([]rational.Rational, m)
	for i, er := range emitted {
		if len(er.row) != n {
			panic(fmt.Errorf("%w: row %d has width %d, want %d", ErrShape, i, len(er.row), n))
		}
		full := make([]rational.Rational, width)
		copy(full, er.row)
		if er.slackSign != 0 {
			full[n+i] = rational.FromInt64(int64(er.slackSign))
		}
		M[i] = full
		B[i] = er.b
	}
	C := make([]rational.Rational, width)
	copy(C, c)

	// Initial Basis & Artificial-Variable Introducer (§4.6).
	basicVars := make([]int, m)
	for i := range basicVars {
		basicVars[i] = -1
	}
	claimed := make([]bool, width)
	for i := 0; i < m; i++ {
		for col := 0; col < width; col++ {
			if claimed[col] {
				continue
			}
			if isUnitColumnForRow(M, col, i, m) {
				basicVars[i] = col
				claimed[col] = true
				break
			}
		}
	}

	var artificialCols []int
	for i := 0; i < m; i++ {
		if basicVars[i] != -1 {
			continue
		}
		artCol := width + len(artificialCols)
		for r := range M {
			M[r] = append(M[r], rational.Zero())
		}
		M[i][artCol] = rational.One()
		C = append(C, rational.Zero())
		basicVars[i] = artCol
		artificialCols = append(artificialCols, artCol)
	}

	return &StandardForm{
		M:              M,
		B:              B,
		C:              C,
		Gamma:          p.ObjLiteral,
		IsMax:          p.IsMax,
		N:              n,
		K:              k,
		BasicVars:      basicVars,
		ArtificialCols: artificialCols,
		Sym:            sym,
	}, nil
}

func negateRow(row []rational.Rational) []rational.Rational {
	out := make([]rational.Rational, len(row))
	for i, v := range row {
		out[i] = v.Neg()
	}
	return out
}

func flipComparator(cmp string) string {
	switch cmp {
	case "<=":
		return ">="
	case ">=":
		return "<="
	default:
		return cmp
	}
}

// applyBoundingShortCircuit implements §4.3's bounding-constraint rule: a
// single-term "k*x >= b" constraint (k>0, b>=0) proves x non-negative
// without needing a row. If b==0 the row is dropped entirely (default
// non-negativity already covers it); otherwise the row is kept as an
// ordinary surplus row but x is removed from the free set either way.
//
// §9's open question on "- x <= 0" extends this: a single-term "k*x <= 0"
// with k<0 is the same statement turned around (multiply by -1, flip the
// comparator, and it's "-k*x >= 0" with -k>0, b=0) and must be elided the
// same way. A "<=" row with k<0 and b>0 (a lower bound x >= -b/|k| below
// zero) does not prove x non-negative, so it is kept as an ordinary row
// and x stays free.
func applyBoundingShortCircuit(row []rational.Rational, b rational.Rational, cmp string, names []string, sym *lpmodel.SymbolTable) (dropped bool) {
	nonZeroCol := -1
	for col, v := range row {
		if v.IsZero() {
			continue
		}
		if nonZeroCol != -1 {
			return false // more than one term
		}
		nonZeroCol = col
	}
	if nonZeroCol == -1 {
		return false
	}
	k := row[nonZeroCol]

	switch {
	case cmp == ">=" && k.IsPositive():
		sym.MarkBound(names[nonZeroCol])
		return b.IsZero()
	case cmp == "<=" && k.IsNegative() && b.IsZero():
		sym.MarkBound(names[nonZeroCol])
		return true
	default:
		return false
	}
}

// isUnitColumnForRow reports whether column col of M equals the i-th unit
// vector e_i over the m constraint rows (§4.6).
func isUnitColumnForRow(M [][]rational.Rational, col, i, m int) bool {
	for r := 0; r < m; r++ {
		want := r == i
		v := M[r][col]
		if want {
			if v.Cmp(rational.One()) != 0 {
				return false
			}
		} else if !v.IsZero() {
			return false
		}
	}
	return true
}
