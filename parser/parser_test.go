package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linsolve/parser"
)

func TestParseSimpleMax(t *testing.T) {
	p, err := parser.ParseProblem("MAX x1 + x2\nx1 + x2 <= 4\nx1 <= 3\nx2 <= 3\n")
	require.NoError(t, err)
	assert.True(t, p.IsMax)
	assert.Len(t, p.ObjTerms, 2)
	assert.Len(t, p.Constraints, 3)
}

func TestParseMinNegatesObjective(t *testing.T) {
	p, err := parser.ParseProblem("MIN x1 + x2\nx1 + x2 >= 2\n")
	require.NoError(t, err)
	assert.False(t, p.IsMax)
	for _, term := range p.ObjTerms {
		assert.Equal(t, -1, term.Coef.Sign())
	}
}

func TestParseConstantFolding(t *testing.T) {
	p, err := parser.ParseProblem("MAX x + 7\nx <= 2\n")
	require.NoError(t, err)
	require.Len(t, p.ObjTerms, 1)
	assert.Equal(t, "7", p.ObjLiteral.String())
}

func TestParseChainCoefficient(t *testing.T) {
	p, err := parser.ParseProblem("MAX 2*3*x/5\nx <= 10\n")
	require.NoError(t, err)
	require.Len(t, p.ObjTerms, 1)
	assert.Equal(t, "6/5", p.ObjTerms[0].Coef.String())
}

func TestParseBlankLinesIgnored(t *testing.T) {
	p, err := parser.ParseProblem("\nMAX x1\n\nx1 <= 5\n\n")
	require.NoError(t, err)
	assert.Len(t, p.Constraints, 1)
}

func TestParseMissingComparatorErrors(t *testing.T) {
	_, err := parser.ParseProblem("MAX x1\nx1 3\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrParse))
}

func TestParseTwoVariablesInOneTermErrors(t *testing.T) {
	_, err := parser.ParseProblem("MAX x1\nx1*y1 <= 3\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrParse))
}

func TestParseDivisionByZeroLiteralErrors(t *testing.T) {
	_, err := parser.ParseProblem("MAX x1\nx1/0 <= 3\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrParse))
}

func TestParseNoObjectiveErrors(t *testing.T) {
	_, err := parser.ParseProblem("x1 <= 3\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrParse))
}

func TestParseDecimalAndFractionLiterals(t *testing.T) {
	p, err := parser.ParseProblem("MAX x\nx <= 1/2\n")
	require.NoError(t, err)
	assert.Equal(t, "1/2", p.Constraints[0].RHSLiteral.String())

	p2, err := parser.ParseProblem("MAX x\nx <= 0.5\n")
	require.NoError(t, err)
	assert.Equal(t, "1/2", p2.Constraints[0].RHSLiteral.String())
}
