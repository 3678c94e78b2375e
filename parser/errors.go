package parser

import "errors"

// ErrParse is the sentinel every parser failure wraps. Callers use
// errors.Is(err, ErrParse) to detect the §7 ParseError class; the wrapped
// message carries the offending token or line for diagnostics.
var ErrParse = errors.New("parser: malformed input")
