package heaparray

import "errors"

var (
	// ErrNegativeCapacity indicates a capacity below zero was requested.
	ErrNegativeCapacity = errors.New("heaparray: capacity must be non-negative")

	// ErrCapacityOverflow indicates capacity·sizeof(A) does not fit the addressable range.
	ErrCapacityOverflow = errors.New("heaparray: capacity overflow")

	// ErrOutOfRange indicates an index outside [0, Cap()).
	ErrOutOfRange = errors.New("heaparray: index out of range")
)
