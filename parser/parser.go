// Package parser implements the lexer and expression parser of §4.1:
// splitting input lines into tokens, classifying objective vs. constraint
// lines, and evaluating term chains into exact rational coefficients.
package parser

import (
	"fmt"
	"strings"

	"linsolve/lpmodel"
)

var comparators = []string{"<=", ">=", "=="}

// findComparator returns the index of the single comparator token in
// tokens, or -1 if none is present.
func findComparator(tokens []string) int {
	for i, tok := range tokens {
		for _, c := range comparators {
			if tok == c {
				return i
			}
		}
	}
	return -1
}

// ParseProblem parses the full input text (§4.1-§4.2): one objective line
// (MAX/MIN) and zero or more constraint lines, blank lines ignored. It
// returns the symbol table it built along the way and the parsed-but-not-
// yet-standardized Problem (§4.3 normalization happens downstream, in
// package normalize).
func ParseProblem(input string) (*lpmodel.Problem, error) {
	sym := lpmodel.NewSymbolTable()
	problem := &lpmodel.Problem{Sym: sym}
	haveObjective := false

	for lineNo, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)

		switch tokens[0] {
		case "MAX", "MIN":
			if haveObjective {
				return nil, fmt.Errorf("%w: line %d: multiple objective lines", ErrParse, lineNo+1)
			}
			isMax := tokens[0] == "MAX"
			expr, err := evalExpr(tokens[1:], sym)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
			}
			problem.IsMax = isMax
			if isMax {
				problem.ObjTerms = expr.terms
				problem.ObjLiteral = expr.literal
			} else {
				problem.ObjTerms = negateTerms(expr.terms)
				problem.ObjLiteral = expr.literal.Neg()
			}
			haveObjective = true

		default:
			idx := findComparator(tokens)
			if idx < 0 {
				return nil, fmt.Errorf("%w: line %d: missing comparator (<=, >=, ==)", ErrParse, lineNo+1)
			}
			lhs, err := evalExpr(tokens[:idx], sym)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
			}
			rhs, err := evalExpr(tokens[idx+1:], sym)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
			}
			problem.Constraints = append(problem.Constraints, lpmodel.RawConstraint{
				LHS:        lhs.terms,
				LHSLiteral: lhs.literal,
				RHS:        rhs.terms,
				RHSLiteral: rhs.literal,
				Cmp:        tokens[idx],
			})
		}
	}

	if !haveObjective {
		return nil, fmt.Errorf("%w: no MAX/MIN objective line found", ErrParse)
	}
	return problem, nil
}

func negateTerms(terms []lpmodel.Term) []lpmodel.Term {
	out := make([]lpmodel.Term, len(terms))
	for i, t := range terms {
		out[i] = lpmodel.Term{Col: t.Col, Coef: t.Coef.Neg()}
	}
	return out
}
