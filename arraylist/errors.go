package arraylist

import (
	"errors"

	"github.com/katalvlaran/lvcontainers/heaparray"
)

var (
	// ErrOutOfRange indicates an index outside the valid logical range.
	ErrOutOfRange = errors.New("arraylist: index out of range")

	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("arraylist: list is empty")
)

// Allocation failures are reported with the heaparray sentinels so that a
// single errors.Is check works at every layer.
var (
	ErrNegativeCapacity = heaparray.ErrNegativeCapacity
	ErrCapacityOverflow = heaparray.ErrCapacityOverflow
)
