package heaparray

import (
	"fmt"
	"math"
	"math/bits"
	"unsafe"
)

// maxAllocBytes is the largest single block WithCapacity will request.
// It mirrors the Go runtime's own ceiling on 64-bit heaps (48-bit address space).
const maxAllocBytes = min(1<<47-1, math.MaxInt)

// HeapArray is a fixed-capacity buffer of A. The zero value is an empty
// array with Cap() == 0; use WithCapacity to allocate storage.
type HeapArray[A any] struct {
	data     []A // len(data) == capacity, never appended to
	capacity int
}

// WithCapacity allocates storage for exactly n elements of A, each set to
// A's zero value.
//
// Stage 1 (Validate): reject n < 0 and byte-size overflow.
// Stage 2 (Execute): allocate one block of n slots (none for n == 0).
//
// Zero-size element types need no storage and report Cap() == math.MaxInt
// regardless of n.
//
// Complexity: O(n) time and memory.
func WithCapacity[A any](n int) (*HeapArray[A], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeCapacity, n)
	}

	var zero A
	size := unsafe.Sizeof(zero)
	if size == 0 {
		// make of a zero-size element type allocates nothing, whatever the length.
		return &HeapArray[A]{data: make([]A, math.MaxInt), capacity: math.MaxInt}, nil
	}

	hi, total := bits.Mul64(uint64(n), uint64(size))
	if hi != 0 || total > maxAllocBytes {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrCapacityOverflow, n, size)
	}

	if n == 0 {
		return &HeapArray[A]{}, nil
	}

	return &HeapArray[A]{data: make([]A, n), capacity: n}, nil
}

// Cap returns the number of slots owned by the array.
func (h *HeapArray[A]) Cap() int {
	return h.capacity
}

// At returns the value stored at index i.
// Complexity: O(1).
func (h *HeapArray[A]) At(i int) (A, error) {
	if err := h.check(i); err != nil {
		var zero A
		return zero, err
	}

	return h.data[i], nil
}

// Set stores v at index i.
// Complexity: O(1).
func (h *HeapArray[A]) Set(i int, v A) error {
	if err := h.check(i); err != nil {
		return err
	}
	h.data[i] = v

	return nil
}

// Swap exchanges the values at indices a and b in place.
// Both indices are validated before anything is written.
func (h *HeapArray[A]) Swap(a, b int) error {
	if err := h.check(a); err != nil {
		return err
	}
	if err := h.check(b); err != nil {
		return err
	}
	h.data[a], h.data[b] = h.data[b], h.data[a]

	return nil
}

// Copy allocates a new HeapArray of newCapacity and copies the first
// min(Cap(), newCapacity) slots into it. Remaining slots of the new array
// hold A's zero value. The receiver is left untouched and stays usable.
//
// Complexity: O(newCapacity).
func (h *HeapArray[A]) Copy(newCapacity int) (*HeapArray[A], error) {
	dst, err := WithCapacity[A](newCapacity)
	if err != nil {
		return nil, err
	}
	copy(dst.data, h.data)

	return dst, nil
}

// Fill sets every slot to v.
// Complexity: O(Cap()), O(1) for zero-size A.
func (h *HeapArray[A]) Fill(v A) {
	if unsafe.Sizeof(v) == 0 {
		return
	}
	for i := range h.data {
		h.data[i] = v
	}
}

// Slice returns a view over all Cap() slots. Writes through the view are
// writes to the array. The view is invalidated by Release.
func (h *HeapArray[A]) Slice() []A {
	return h.data[:h.capacity:h.capacity]
}

// Release zeroes every slot, so values referenced from A become collectable,
// and drops the block. Afterwards Cap() == 0 and every index is out of range.
func (h *HeapArray[A]) Release() {
	clear(h.data)
	h.data = nil
	h.capacity = 0
}

// check validates 0 ≤ i < Cap().
func (h *HeapArray[A]) check(i int) error {
	if i < 0 || i >= h.capacity {
		return fmt.Errorf("%w: index %d, capacity %d", ErrOutOfRange, i, h.capacity)
	}

	return nil
}
