package config

import "errors"

// Predefined errors for the config package.
var (
	// ErrNilPointer is returned when a nil destination is passed to Load.
	ErrNilPointer = errors.New("config: destination must not be nil")

	// ErrParsingConfig is returned when the environment cannot be parsed into
	// the destination struct.
	ErrParsingConfig = errors.New("config: failed to parse environment")

	// ErrLoadingEnv is returned when an explicitly named .env file cannot be
	// loaded.
	ErrLoadingEnv = errors.New("config: failed to load env file")
)
