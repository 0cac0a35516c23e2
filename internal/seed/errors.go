package seed

import "errors"

// Sentinel kinds for fixture validation.
var (
	ErrMissingID         = errors.New("missing id")
	ErrInvalidMode       = errors.New("invalid participation mode")
	ErrInvalidResultType = errors.New("invalid result type")
)
