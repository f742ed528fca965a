package codec

import "errors"

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrCorruptPayload = errors.New("corrupt payload")
	ErrTokenTooLarge  = errors.New("token too large")
)

// Non-fatal: the offending field keeps its default.
var (
	ErrUnknownField = errors.New("unknown field")
	ErrOutOfCatalog = errors.New("reference not in catalog")
	ErrInvalidValue = errors.New("invalid value")
)

// Issue is a field the decoder dropped or replaced with its default.
type Issue struct {
	Field string
	Err   error
}

func (i Issue) Error() string {
	return i.Field + ": " + i.Err.Error()
}

func (i Issue) Unwrap() error {
	return i.Err
}
