// Package errs defines the sentinel errors shared by the smallvec packages.
//
// Precondition violations (bad indices, bad ranges, negative sizes) are raised
// as panics whose value is an error wrapping one of these sentinels, so code
// that recovers can still match them with errors.Is. Configuration problems are
// returned as ordinary errors.
package errs

import "errors"

// Precondition violations.
var (
	// ErrIndexOutOfRange indicates a position outside the live elements.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidRange indicates a sub-range with lo > hi or hi beyond the length.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidLength indicates a negative target length.
	ErrInvalidLength = errors.New("invalid length")
	// ErrInvalidCapacity indicates a negative capacity request.
	ErrInvalidCapacity = errors.New("invalid capacity")
)

// Configuration errors.
var (
	// ErrInvalidOption indicates an option value that cannot be applied.
	ErrInvalidOption = errors.New("invalid option")
	// ErrPoolTypeMismatch indicates a pool whose element type differs from the container's.
	ErrPoolTypeMismatch = errors.New("pool element type mismatch")
)
