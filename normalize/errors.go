package normalize

import "errors"

// ErrShape marks an internal invariant violation during standard-form
// assembly (row/column size mismatch). §7 classifies this as a
// ShapeError: "should be impossible if §4 is correctly implemented;
// treated as a programmer bug and fatal." It is raised via panic and
// recovered only at the cmd/ boundary.
var ErrShape = errors.New("normalize: inconsistent row/column shape")
