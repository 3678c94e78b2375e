// Package rational implements exact rational arithmetic for the simplex
// engine. Every coefficient, tableau entry, and certificate value in this
// module is a Rational; none of it ever touches a float64.
package rational

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidLiteral is returned by Parse when a token is not a valid
// integer, decimal, or p/q literal.
var ErrInvalidLiteral = errors.New("rational: invalid numeric literal")

// ErrDivByZero is returned by Div and FromFrac when the divisor/denominator
// is zero.
var ErrDivByZero = errors.New("rational: division by zero")

// Rational is an exact p/q value, always kept in lowest terms with a
// positive denominator (big.Rat's invariant, preserved across every op
// here).
type Rational struct {
	v big.Rat
}

// Zero is the additive identity.
func Zero() Rational { return Rational{} }

// One is the multiplicative identity.
func One() Rational { return FromInt64(1) }

// FromInt64 builds an integer Rational.
func FromInt64(n int64) Rational {
	var r Rational
	r.v.SetInt64(n)
	return r
}

// FromFrac builds num/den, reduced to lowest terms.
func FromFrac(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrDivByZero
	}
	var r Rational
	r.v.SetFrac64(num, den)
	return r, nil
}

// Parse accepts an integer ("3", "-7"), a decimal ("3.14", "-0.5"), or an
// explicit p/q fraction ("1/2", "-4/3") and returns its exact value.
// math/big already parses all three forms and reduces the result; a
// zero-denominator fraction ("3/0") is rejected by SetString itself, which
// is exactly the "division by zero literal" error §4.1 asks for.
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, fmt.Errorf("%w: empty literal", ErrInvalidLiteral)
	}
	var r Rational
	if _, ok := r.v.SetString(s); !ok {
		return Rational{}, fmt.Errorf("%w: %q", ErrInvalidLiteral, s)
	}
	return r, nil
}

// Add returns a+b.
func (a Rational) Add(b Rational) Rational {
	var z Rational
	z.v.Add(&a.v, &b.v)
	return z
}

// Sub returns a-b.
func (a Rational) Sub(b Rational) Rational {
	var z Rational
	z.v.Sub(&a.v, &b.v)
	return z
}

// Mul returns a*b.
func (a Rational) Mul(b Rational) Rational {
	var z Rational
	z.v.Mul(&a.v, &b.v)
	return z
}

// Div returns a/b. Division by zero is reported, never panics; pivot sites
// in simplex only ever call this on entries already proven nonzero by the
// ratio test, per §9.
func (a Rational) Div(b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, ErrDivByZero
	}
	var z Rational
	z.v.Quo(&a.v, &b.v)
	return z, nil
}

// Neg returns -a.
func (a Rational) Neg() Rational {
	var z Rational
	z.v.Neg(&a.v)
	return z
}

// Cmp returns -1, 0, or +1 as a <, ==, > b.
func (a Rational) Cmp(b Rational) int {
	return a.v.Cmp(&b.v)
}

// Sign returns -1, 0, or +1 as a is negative, zero, or positive.
func (a Rational) Sign() int { return a.v.Sign() }

// IsZero reports whether a == 0.
func (a Rational) IsZero() bool { return a.v.Sign() == 0 }

// IsPositive reports whether a > 0.
func (a Rational) IsPositive() bool { return a.v.Sign() > 0 }

// IsNegative reports whether a < 0.
func (a Rational) IsNegative() bool { return a.v.Sign() < 0 }

// String renders the value as a reduced integer or "p/q" fraction,
// matching the teacher's fraction.Print convention (bare numerator when
// the denominator is 1).
func (a Rational) String() string {
	if a.v.IsInt() {
		return a.v.Num().String()
	}
	return a.v.Num().String() + "/" + a.v.Denom().String()
}

// Float64 returns the nearest float64 approximation. Nothing in the solve
// pipeline calls it; the output boundary renders values with DecimalString.
func (a Rational) Float64() float64 {
	f, _ := a.v.Float64()
	return f
}

// DecimalString renders the value as numerator divided by denominator in
// decimal form, rounded to exactly prec fractional digits; trailing zeros
// are kept (result.formatDecimal trims them for the §6 output).
func (a Rational) DecimalString(prec int) string {
	return a.v.FloatString(prec)
}
