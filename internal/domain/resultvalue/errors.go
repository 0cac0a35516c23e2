package resultvalue

import "errors"

// Sentinel kinds for normalization errors. Callers match with errors.Is.
var (
	ErrUnknownType       = errors.New("unknown result type")
	ErrTypeMismatch      = errors.New("value does not match workout result type")
	ErrInvalidTimeFormat = errors.New("invalid time format")
)
