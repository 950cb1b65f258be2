package binaryheap

import (
	"cmp"

	"github.com/katalvlaran/lvcontainers/arraylist"
)

// Heap is a max-heap: Pop always returns the greatest element by less.
type Heap[A any] struct {
	data *arraylist.ArrayList[A]
	less func(a, b A) bool
}

// New creates an empty max-heap ordered by cmp.Less.
func New[A cmp.Ordered]() *Heap[A] {
	return NewFunc(cmp.Less[A])
}

// NewFunc creates an empty max-heap ordered by less.
func NewFunc[A any](less func(a, b A) bool) *Heap[A] {
	return &Heap[A]{data: arraylist.New[A](), less: less}
}

// Len returns the number of elements.
func (h *Heap[A]) Len() int {
	return h.data.Len()
}

// Push adds v. The only error is an allocation failure from the backing list.
func (h *Heap[A]) Push(v A) error {
	if err := h.data.Push(v); err != nil {
		return err
	}
	h.siftUp(h.data.Len() - 1)

	return nil
}

// Peek returns the greatest element without removing it.
func (h *Heap[A]) Peek() (A, bool) {
	if h.data.Len() == 0 {
		var zero A
		return zero, false
	}
	v, _ := h.data.At(0)

	return v, true
}

// Pop removes and returns the greatest element, or false when empty.
func (h *Heap[A]) Pop() (A, bool) {
	n := h.data.Len()
	if n == 0 {
		var zero A
		return zero, false
	}

	s := h.data.Slice()
	s[0], s[n-1] = s[n-1], s[0]
	top, _ := h.data.Pop()
	h.siftDown(0)

	return top, true
}

func (h *Heap[A]) siftUp(i int) {
	s := h.data.Slice()
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(s[parent], s[i]) {
			return
		}
		s[parent], s[i] = s[i], s[parent]
		i = parent
	}
}

func (h *Heap[A]) siftDown(i int) {
	s := h.data.Slice()
	for {
		largest := i
		if c := 2*i + 1; c < len(s) && h.less(s[largest], s[c]) {
			largest = c
		}
		if c := 2*i + 2; c < len(s) && h.less(s[largest], s[c]) {
			largest = c
		}
		if largest == i {
			return
		}
		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}
