package linkedlist

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvcontainers/arraylist"
)

// ref addresses a node in the arena. The zero ref means "no node"; any other
// ref r lives in arena slot r-1, which keeps the zero List usable.
type ref int

const none ref = 0

// node wraps one value with its links.
type node[A any] struct {
	value A
	prev  ref // back-reference, traversal only
	next  ref // owning link to the successor
}

// List is a doubly linked list of A. The zero value is an empty list.
// A List must not be copied after first use.
type List[A any] struct {
	arena  arraylist.ArrayList[node[A]]
	first  ref
	last   ref
	free   ref // vacated slots, chained through next
	length int
}

// New creates an empty list.
func New[A any]() *List[A] {
	return &List[A]{}
}

// Len returns the number of values in the list. O(1).
func (l *List[A]) Len() int {
	return l.length
}

// IsEmpty reports whether the list holds no values. O(1).
func (l *List[A]) IsEmpty() bool {
	return l.length == 0
}

// Append adds v after the current last node. The new node's back-reference
// points at the old last node, whose owning link is redirected to it.
// Complexity: O(1), no traversal.
func (l *List[A]) Append(v A) {
	r := l.alloc(node[A]{value: v, prev: l.last})
	if l.last == none {
		l.first = r
	} else {
		l.at(l.last).next = r
	}
	l.last = r
	l.length++
}

// PushFront adds v before the current first node; the new node takes
// ownership of the old head. Complexity: O(1).
func (l *List[A]) PushFront(v A) {
	r := l.alloc(node[A]{value: v, next: l.first})
	if l.first == none {
		l.last = r
	} else {
		l.at(l.first).prev = r
	}
	l.first = r
	l.length++
}

// First returns the first value, or false when the list is empty.
func (l *List[A]) First() (A, bool) {
	return l.valueOf(l.first)
}

// Last returns the last value, or false when the list is empty.
func (l *List[A]) Last() (A, bool) {
	return l.valueOf(l.last)
}

// PopFront removes and returns the first value, or false when empty.
func (l *List[A]) PopFront() (A, bool) {
	r := l.first
	if r == none {
		var zero A
		return zero, false
	}

	n := l.at(r)
	v := n.value
	l.first = n.next
	if l.first == none {
		l.last = none
	} else {
		l.at(l.first).prev = none
	}
	l.release(r)

	return v, true
}

// PopBack removes and returns the last value, or false when empty.
func (l *List[A]) PopBack() (A, bool) {
	r := l.last
	if r == none {
		var zero A
		return zero, false
	}

	n := l.at(r)
	v := n.value
	l.last = n.prev
	if l.last == none {
		l.first = none
	} else {
		l.at(l.last).next = none
	}
	l.release(r)

	return v, true
}

// Clear releases every node, from first to last in forward order, then
// resets the list to empty. No back-reference survives the call.
// Complexity: O(n).
func (l *List[A]) Clear() {
	for r := l.first; r != none; {
		n := l.at(r)
		next := n.next
		*n = node[A]{}
		r = next
	}
	l.arena.Clear()
	l.first, l.last, l.free = none, none, none
	l.length = 0
}

// All yields values from first to last following owning links.
// The list must not be mutated during iteration.
func (l *List[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for r := l.first; r != none; {
			n := l.at(r)
			if !yield(n.value) {
				return
			}
			r = n.next
		}
	}
}

// Backward yields values from last to first following back-references.
// The list must not be mutated during iteration.
func (l *List[A]) Backward() iter.Seq[A] {
	return func(yield func(A) bool) {
		for r := l.last; r != none; {
			n := l.at(r)
			if !yield(n.value) {
				return
			}
			r = n.prev
		}
	}
}

// at returns the node addressed by r. The pointer is valid until the arena grows.
func (l *List[A]) at(r ref) *node[A] {
	return &l.arena.Slice()[r-1]
}

func (l *List[A]) valueOf(r ref) (A, bool) {
	if r == none {
		var zero A
		return zero, false
	}

	return l.at(r).value, true
}

// alloc stores n in a recycled slot when one is free, else in a new arena slot.
func (l *List[A]) alloc(n node[A]) ref {
	if r := l.free; r != none {
		slot := l.at(r)
		l.free = slot.next
		*slot = n

		return r
	}

	if err := l.arena.Push(n); err != nil {
		panic(fmt.Errorf("linkedlist: node allocation: %w", err))
	}

	return ref(l.arena.Len())
}

// release zeroes the slot of an unlinked node and puts it on the free chain.
func (l *List[A]) release(r ref) {
	*l.at(r) = node[A]{next: l.free}
	l.free = r
	l.length--
}
