package domain

import "errors"

// Domain errors represent error conditions in the sgynorm domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInputNotFound is returned when the configured input folder does not exist.
	ErrInputNotFound = errors.New("sgynorm: input folder not found")

	// ErrBadTraceFile is returned when a file cannot be parsed as a valid
	// trace file (corrupt data or an unsupported sample format).
	ErrBadTraceFile = errors.New("sgynorm: not a valid trace file")

	// ErrDegenerateCorpus is returned when the global maximum over the whole
	// corpus is zero, so the normalization divisor is undefined.
	ErrDegenerateCorpus = errors.New("sgynorm: corpus global maximum is zero")

	// ErrAlreadyRunning is returned when Start() is called on a running instance.
	ErrAlreadyRunning = errors.New("sgynorm: already running")

	// ErrNotRunning is returned when Stop() is called on a stopped instance.
	ErrNotRunning = errors.New("sgynorm: not running")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("sgynorm: invalid configuration")
)
