package arraylist

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/lvcontainers/heaparray"
)

// DefaultCapacity is the starting capacity used by New and Of.
const DefaultCapacity = 10

// ArrayList is a growable list of A. The zero value is an empty list with
// no storage; the first Push allocates.
type ArrayList[A any] struct {
	length   int
	elements heaparray.HeapArray[A] // slots [length, Cap) hold zero values
}

// New creates an empty list with DefaultCapacity.
func New[A any]() *ArrayList[A] {
	l, err := WithCapacity[A](DefaultCapacity)
	if err != nil {
		// DefaultCapacity is small and positive: only an allocator abort can fail it.
		panic(err)
	}

	return l
}

// WithCapacity creates an empty list that can hold n elements before growing.
func WithCapacity[A any](n int) (*ArrayList[A], error) {
	elements, err := heaparray.WithCapacity[A](n)
	if err != nil {
		return nil, err
	}

	return &ArrayList[A]{elements: *elements}, nil
}

// Of creates a list holding values in order, with room for at least
// DefaultCapacity elements.
func Of[A any](values ...A) *ArrayList[A] {
	l, err := WithCapacity[A](max(len(values), DefaultCapacity))
	if err != nil {
		// values already live in memory, so an equal-sized block is addressable.
		panic(err)
	}
	copy(l.elements.Slice(), values)
	l.length = len(values)

	return l
}

// Len returns the number of live elements. O(1).
func (l *ArrayList[A]) Len() int {
	return l.length
}

// Cap returns the number of allocated slots. O(1).
func (l *ArrayList[A]) Cap() int {
	return l.elements.Cap()
}

// Push appends v, doubling capacity first when the list is full.
// Complexity: amortised O(1).
func (l *ArrayList[A]) Push(v A) error {
	return l.Insert(l.length, v)
}

// Insert places v at index i, shifting [i, Len) one slot to the right.
//
// Stage 1 (Validate): 0 ≤ i ≤ Len, else ErrOutOfRange.
// Stage 2 (Grow): when Len == Cap, double the buffer.
// Stage 3 (Shift): move elements from the high end downward so no unread
// slot is overwritten, then write v.
//
// Complexity: O(Len − i), plus O(Len) on growth.
func (l *ArrayList[A]) Insert(i int, v A) error {
	if i < 0 || i > l.length {
		return fmt.Errorf("%w: insert at %d, length %d", ErrOutOfRange, i, l.length)
	}
	if err := l.ensureCapacity(); err != nil {
		return err
	}

	buf := l.elements.Slice()
	for j := l.length; j > i; j-- {
		buf[j] = buf[j-1]
	}
	buf[i] = v
	l.length++

	return nil
}

// RemoveAt removes and returns the element at index i, shifting
// [i+1, Len) one slot to the left. The vacated tail slot is zeroed.
// Complexity: O(Len − i).
func (l *ArrayList[A]) RemoveAt(i int) (A, error) {
	var zero A
	if i < 0 || i >= l.length {
		return zero, fmt.Errorf("%w: remove at %d, length %d", ErrOutOfRange, i, l.length)
	}

	buf := l.elements.Slice()
	removed := buf[i]
	for j := i; j < l.length-1; j++ {
		buf[j] = buf[j+1]
	}
	l.length--
	buf[l.length] = zero

	return removed, nil
}

// Pop removes and returns the last element.
func (l *ArrayList[A]) Pop() (A, error) {
	if l.length == 0 {
		var zero A
		return zero, ErrEmpty
	}

	return l.RemoveAt(l.length - 1)
}

// At returns the element at index i, valid for 0 ≤ i < Len.
func (l *ArrayList[A]) At(i int) (A, error) {
	if i < 0 || i >= l.length {
		var zero A
		return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, l.length)
	}

	return l.elements.At(i)
}

// Set overwrites the element at index i, valid for 0 ≤ i < Len.
func (l *ArrayList[A]) Set(i int, v A) error {
	if i < 0 || i >= l.length {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, l.length)
	}

	return l.elements.Set(i, v)
}

// Slice returns a view of the live elements. Its length and capacity are
// both Len, so appending to it never writes into the list's spare slots.
// The view is invalidated when the list grows.
func (l *ArrayList[A]) Slice() []A {
	return l.elements.Slice()[:l.length:l.length]
}

// Clear zeroes the live elements and sets Len to 0. Capacity is kept.
func (l *ArrayList[A]) Clear() {
	clear(l.Slice())
	l.length = 0
}

// All yields (index, value) pairs in index order.
func (l *ArrayList[A]) All() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		for i := 0; i < l.length; i++ {
			v, _ := l.elements.At(i)
			if !yield(i, v) {
				return
			}
		}
	}
}

// ensureCapacity grows the buffer to max(1, 2·Cap) when Len == Cap.
// The new block is fully populated before it replaces the owned one.
func (l *ArrayList[A]) ensureCapacity() error {
	capacity := l.elements.Cap()
	if l.length < capacity {
		return nil
	}

	next := 1
	switch {
	case capacity > math.MaxInt/2:
		next = math.MaxInt
	case capacity > 0:
		next = capacity * 2
	}
	if next <= capacity {
		return fmt.Errorf("%w: cannot grow past %d", ErrCapacityOverflow, capacity)
	}

	grown, err := l.elements.Copy(next)
	if err != nil {
		return err
	}
	old := l.elements
	l.elements = *grown
	old.Release()

	return nil
}
