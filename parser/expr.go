package parser

import (
	"fmt"
	"regexp"
	"strings"

	"linsolve/lpmodel"
	"linsolve/rational"
)

// identRegexp matches a variable name: a letter or underscore, then any
// run of letters, digits, or underscores. §9 picks this rule explicitly
// over the source's digit-leading branches.
var identRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z_0-9]*$`)

// splitChain breaks a product/quotient chain like "2*3*x/5" into its
// operand strings and the '*'/'/' operators between them, preserving
// order so the chain can be evaluated left-to-right.
func splitChain(s string) (operands []string, ops []byte) {
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '*' || c == '/' {
			operands = append(operands, cur.String())
			cur.Reset()
			ops = append(ops, c)
			continue
		}
		cur.WriteByte(c)
	}
	operands = append(operands, cur.String())
	return operands, ops
}

// parseTerm evaluates a single term token (§4.1): an optional leading sign,
// then a literal, a bare variable, or a product/quotient chain containing
// exactly one variable. It returns the term's coefficient and variable name
// (empty when the term is a pure literal).
func parseTerm(tok string) (coef rational.Rational, varName string, err error) {
	s := tok
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" {
		return rational.Rational{}, "", fmt.Errorf("%w: empty term %q", ErrParse, tok)
	}

	operands, ops := splitChain(s)
	for i, operand := range operands {
		if identRegexp.MatchString(operand) {
			if varName != "" {
				return rational.Rational{}, "", fmt.Errorf("%w: two variables in one term %q", ErrParse, tok)
			}
			varName = operand
			operands[i] = "1"
		}
	}

	value, err := rational.Parse(operands[0])
	if err != nil {
		return rational.Rational{}, "", fmt.Errorf("%w: %s", ErrParse, err)
	}
	for i, op := range ops {
		operand, err := rational.Parse(operands[i+1])
		if err != nil {
			return rational.Rational{}, "", fmt.Errorf("%w: %s", ErrParse, err)
		}
		switch op {
		case '*':
			value = value.Mul(operand)
		case '/':
			if operand.IsZero() {
				return rational.Rational{}, "", fmt.Errorf("%w: division by zero literal in %q", ErrParse, tok)
			}
			value, err = value.Div(operand)
			if err != nil {
				return rational.Rational{}, "", fmt.Errorf("%w: %s", ErrParse, err)
			}
		}
	}

	if neg {
		value = value.Neg()
	}
	return value, varName, nil
}

// exprResult is an expression evaluated against a symbol table: a dense,
// column-merged term list plus the accumulated literal residue.
type exprResult struct {
	terms   []lpmodel.Term
	literal rational.Rational
}

// evalExpr evaluates a space-separated sequence of term tokens joined by
// "+"/"-" operator tokens (§4.1), resolving variable names against sym.
func evalExpr(tokens []string, sym *lpmodel.SymbolTable) (exprResult, error) {
	acc := make(map[int]rational.Rational)
	colOrder := make([]int, 0, len(tokens))
	literal := rational.Zero()

	pendingSign := 1
	for _, tok := range tokens {
		if tok == "+" {
			pendingSign = 1
			continue
		}
		if tok == "-" {
			pendingSign = -1
			continue
		}

		coef, varName, err := parseTerm(tok)
		if err != nil {
			return exprResult{}, err
		}
		if pendingSign < 0 {
			coef = coef.Neg()
		}
		pendingSign = 1

		if varName == "" {
			literal = literal.Add(coef)
			continue
		}
		v := sym.Resolve(varName)
		if _, seen := acc[v.Col]; !seen {
			colOrder = append(colOrder, v.Col)
			acc[v.Col] = rational.Zero()
		}
		acc[v.Col] = acc[v.Col].Add(coef)
	}

	terms := make([]lpmodel.Term, 0, len(colOrder))
	for _, col := range colOrder {
		terms = append(terms, lpmodel.Term{Col: col, Coef: acc[col]})
	}
	return exprResult{terms: terms, literal: literal}, nil
}
