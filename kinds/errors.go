package kinds

import "errors"

// Predefined errors for the kinds package.
var (
	// ErrIndexOutOfRange is returned when an index-based operation falls
	// outside the wrapped value's bounds.
	ErrIndexOutOfRange = errors.New("kinds: index out of range")

	// ErrDivisionByZero is returned by Number.Div for a zero divisor.
	ErrDivisionByZero = errors.New("kinds: division by zero")

	// ErrKeyNotFound is returned when a Dict operation requires a key that is
	// not present.
	ErrKeyNotFound = errors.New("kinds: key not found")
)
