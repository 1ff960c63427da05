package patch

import "errors"

var (
	// ErrIncomparable is returned when Compare meets a pair of leaves it has no rule for.
	ErrIncomparable = errors.New("incomparable values")
	// ErrShape is returned when a delta does not fit the shape of the state it is applied to.
	ErrShape = errors.New("delta does not match state shape")
	// ErrInvalidValue is returned when decoding input that is not a number, bool, string, list or map.
	ErrInvalidValue = errors.New("invalid patch value")
)
