package result_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linsolve/normalize"
	"linsolve/parser"
	"linsolve/result"
	"linsolve/simplex"
)

func shape(t *testing.T, input string) result.Shaped {
	t.Helper()
	p, err := parser.ParseProblem(input)
	require.NoError(t, err)
	sf, err := normalize.Build(p)
	require.NoError(t, err)
	res := simplex.Solve(sf)
	return result.Shape(sf, res)
}

func TestShapeOptimalBoundedMax(t *testing.T) {
	s := shape(t, "MAX x1 + x2\nx1 + x2 <= 4\nx1 <= 3\nx2 <= 3\n")
	require.Equal(t, simplex.Optimal, s.Status)
	assert.Equal(t, "4", s.Objective)
	require.Len(t, s.Solution, 2)
	assert.Equal(t, "3", s.Solution[0])
	assert.Equal(t, "1", s.Solution[1])
}

func TestShapeFreeVariableCollapsed(t *testing.T) {
	s := shape(t, "MAX y\ny <= 5\n")
	require.Equal(t, simplex.Optimal, s.Status)
	assert.Equal(t, "5", s.Objective)
	require.Len(t, s.Solution, 1)
	assert.Equal(t, "5", s.Solution[0])
}

func TestShapeInfeasibleHasCertificateNoSolution(t *testing.T) {
	// x1 needs an explicit bound here -- without one it stays free (see
	// simplex.TestS3LiteralInputIsBoundedNotInfeasible) and the system is
	// actually feasible.
	s := shape(t, "MAX x1\nx1 + x2 == 3\nx2 >= 5\nx1 >= 0\n")
	require.Equal(t, simplex.Infeasible, s.Status)
	assert.Nil(t, s.Solution)
	assert.NotEmpty(t, s.Certificate)
}

func TestShapeUnboundedDirectionCollapsed(t *testing.T) {
	s := shape(t, "MAX x1\nx1 - x2 <= 1\n")
	require.Equal(t, simplex.Unbounded, s.Status)
	require.Len(t, s.Certificate, 2)
}

func TestShapeDecimalTrimsTrailingZeros(t *testing.T) {
	s := shape(t, "MAX x\nx <= 1/2\n")
	assert.Equal(t, "0.5", s.Objective)
}
