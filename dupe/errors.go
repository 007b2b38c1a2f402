package dupe

import "errors"

// Sentinel errors for package dupe.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Configuration errors, detected before any hashing work starts
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
	ErrInvalidJobs      = errors.New("worker count must be positive")
	ErrBadGlob          = errors.New("malformed glob pattern")
)
