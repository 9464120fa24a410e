package refined

import "errors"

// Predefined errors for the refined package.
var (
	// ErrNilValidator indicates a refinement was declared without a validator hook.
	ErrNilValidator = errors.New("refined: validator hook must not be nil")

	// ErrEmptyName indicates a refinement was declared with an empty name.
	ErrEmptyName = errors.New("refined: type name must not be empty")

	// ErrUnimplemented indicates a deliberately disabled entry point was invoked,
	// e.g. constructing a family value without indexing a member first.
	ErrUnimplemented = errors.New("refined: operation not implemented")

	// ErrDecode indicates raw input could not be decoded into the supertype
	// before validation ran.
	ErrDecode = errors.New("refined: failed to decode raw value")
)
