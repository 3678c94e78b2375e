// Package result implements the Result Shaper (§4.9): it turns a
// simplex.Result, still expressed in internal tableau-column space, into
// the user-facing values §6 specifies -- free variables collapsed back to
// a single signed value, everything rendered as a decimal quotient.
package result

import (
	"strings"

	"linsolve/lpmodel"
	"linsolve/normalize"
	"linsolve/rational"
	"linsolve/simplex"
)

// decimalPrec bounds how many fractional digits are rendered before
// trailing zeros are trimmed; §6 only requires "full precision preserved
// up to the boundary function's formatting choice", so this is a
// formatting choice, not a correctness one -- the underlying rational.Rational
// values carry no rounding regardless of how many digits are printed.
const decimalPrec = 16

// Shaped is the fully user-facing form of a solve, ready for the §6
// output writer.
type Shaped struct {
	Status      simplex.Status
	Objective   string   // only set when Status == Optimal
	Solution    []string // only set when Status == Optimal; one per original variable, in declaration order
	Certificate []string
}

// Shape implements §4.9 for all three outcomes.
func Shape(sf *normalize.StandardForm, res *simplex.Result) Shaped {
	switch res.Status {
	case simplex.Optimal:
		return Shaped{
			Status:      simplex.Optimal,
			Objective:   formatDecimal(res.Value),
			Solution:    collapseFreeVars(sf.Sym, res.X),
			Certificate: formatAll(res.Dual),
		}
	case simplex.Infeasible:
		return Shaped{
			Status:      simplex.Infeasible,
			Certificate: formatAll(res.FarkasY),
		}
	case simplex.Unbounded:
		return Shaped{
			Status:      simplex.Unbounded,
			Certificate: collapseFreeVars(sf.Sym, res.Direction),
		}
	default:
		return Shaped{Status: res.Status}
	}
}

// collapseFreeVars projects a vector over the internal (original+shadow)
// column range back onto the user-declared variables, reversing the
// free-variable split x = x' - x'' for every name that needed one.
func collapseFreeVars(sym *lpmodel.SymbolTable, vec []rational.Rational) []string {
	names := sym.Names()
	out := make([]string, len(names))
	for i, name := range names {
		v, _ := sym.Lookup(name)
		val := vec[v.Col]
		if v.ShadowCol >= 0 {
			val = val.Sub(vec[v.ShadowCol])
		}
		out[i] = formatDecimal(val)
	}
	return out
}

func formatAll(vec []rational.Rational) []string {
	out := make([]string, len(vec))
	for i, v := range vec {
		out[i] = formatDecimal(v)
	}
	return out
}

func formatDecimal(r rational.Rational) string {
	s := r.DecimalString(decimalPrec)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
