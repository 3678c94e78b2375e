package rational_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linsolve/rational"
)

func TestParseIntegerDecimalFraction(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"3", "3"},
		{"-7", "-7"},
		{"3.14", "157/50"},
		{"-0.5", "-1/2"},
		{"1/2", "1/2"},
		{"-4/3", "-4/3"},
		{"6/3", "2"},
	}
	for _, c := range cases {
		got, err := rational.Parse(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got.String(), c.in)
	}
}

func TestParseRejectsDivisionByZeroLiteral(t *testing.T) {
	_, err := rational.Parse("3/0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, rational.ErrInvalidLiteral))
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := rational.Parse("abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, rational.ErrInvalidLiteral))
}

func TestArithmeticIsExact(t *testing.T) {
	a, _ := rational.FromFrac(1, 3)
	b, _ := rational.FromFrac(1, 6)
	assert.Equal(t, "1/2", a.Add(b).String())
	assert.Equal(t, "1/6", a.Sub(b).String())
	assert.Equal(t, "1/18", a.Mul(b).String())
	quot, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, "2", quot.String())
}

func TestDivByZeroReported(t *testing.T) {
	a := rational.FromInt64(5)
	_, err := a.Div(rational.Zero())
	require.Error(t, err)
	assert.True(t, errors.Is(err, rational.ErrDivByZero))
}

func TestSignHelpers(t *testing.T) {
	assert.True(t, rational.Zero().IsZero())
	assert.True(t, rational.FromInt64(-3).IsNegative())
	assert.True(t, rational.FromInt64(3).IsPositive())
	assert.Equal(t, -1, rational.FromInt64(-1).Cmp(rational.FromInt64(0)))
}

func TestNoRoundingAcrossManyOps(t *testing.T) {
	sum := rational.Zero()
	third, _ := rational.FromFrac(1, 3)
	for i := 0; i < 30; i++ {
		sum = sum.Add(third)
	}
	assert.Equal(t, "10", sum.String())
}
