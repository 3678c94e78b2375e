package simplex

import "linsolve/rational"

// Status is the three-way outcome §4.8/§6 define for a solved LP.
type Status int

const (
	Optimal Status = iota
	Infeasible
	Unbounded
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "otimo"
	case Infeasible:
		return "inviavel"
	case Unbounded:
		return "ilimitado"
	default:
		return "unknown"
	}
}

// Result is everything the result shaper (§4.9) needs to render the final
// status line, solution, and certificate, still expressed in internal
// (post-expansion) column space.
type Result struct {
	Status Status

	// Optimal only.
	Value rational.Rational
	X     []rational.Rational // length sf.N, original+shadow column range
	Dual  []rational.Rational // length m, the y certificate

	// Infeasible only.
	FarkasY []rational.Rational // length m

	// Unbounded only.
	Direction []rational.Rational // length sf.N+sf.K, var+slack range
}
