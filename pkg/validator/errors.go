package validator

import "errors"

// ErrInvalidPattern is returned when a pattern constraint cannot be compiled.
var ErrInvalidPattern = errors.New("invalid pattern")
