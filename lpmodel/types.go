package lpmodel

import "linsolve/rational"

// Term is a single (column, coefficient) pair, already resolved against a
// SymbolTable. Terms for the same column within one side of an equation
// are merged (summed) by the parser before this type is used further.
type Term struct {
	Col  int
	Coef rational.Rational
}

// RawConstraint is one constraint line after expression parsing but
// before §4.3 normalization: both sides still separate, signs
// un-reconciled, comparator as written.
type RawConstraint struct {
	LHS        []Term
	LHSLiteral rational.Rational
	RHS        []Term
	RHSLiteral rational.Rational
	Cmp        string // "<=", ">=", "=="
}

// Problem is the output of the parser: the objective (already folded to a
// maximization, per §4.1's MIN token-level negation) plus the raw,
// not-yet-standardized constraints, and the symbol table they were parsed
// against.
type Problem struct {
	Sym         *SymbolTable
	IsMax       bool
	ObjTerms    []Term
	ObjLiteral  rational.Rational
	Constraints []RawConstraint
}
