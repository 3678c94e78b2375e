package simplex

import "errors"

// ErrArithmetic marks an attempted pivot on a zero entry. §7 calls this an
// ArithmeticError: "should be impossible given the ratio test; fatal if it
// occurs." Raised via panic, recovered only at the cmd/ boundary.
var ErrArithmetic = errors.New("simplex: pivot on zero entry")

// ErrShape mirrors normalize.ErrShape for invariant violations discovered
// while building or stripping the tableau (e.g. a row/column count that
// doesn't match the standard-form system handed in).
var ErrShape = errors.New("simplex: inconsistent tableau shape")
