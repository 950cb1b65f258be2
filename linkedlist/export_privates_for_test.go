package linkedlist

// Test bridge (white-box): exposes link checks to linkedlist_test without
// widening the production API.

import "fmt"

// VerifyLinks walks the chain both ways and reports the first broken invariant.
func VerifyLinks[A any](l *List[A]) error {
	if (l.first == none) != (l.length == 0) || (l.last == none) != (l.length == 0) {
		return fmt.Errorf("ends first=%d last=%d disagree with length %d", l.first, l.last, l.length)
	}

	count, tail := 0, none
	for r, prev := l.first, none; r != none; r = l.at(r).next {
		if l.at(r).prev != prev {
			return fmt.Errorf("node %d: prev=%d, want %d", r, l.at(r).prev, prev)
		}
		prev, tail = r, r
		count++
		if count > l.length {
			return fmt.Errorf("forward walk exceeds length %d", l.length)
		}
	}
	if count != l.length || tail != l.last {
		return fmt.Errorf("forward walk visited %d nodes ending at %d, want %d ending at %d", count, tail, l.length, l.last)
	}

	back := 0
	head := none
	for r := l.last; r != none; r = l.at(r).prev {
		head = r
		back++
		if back > l.length {
			return fmt.Errorf("backward walk exceeds length %d", l.length)
		}
	}
	if head != l.first {
		return fmt.Errorf("backward walk ends at %d, want first %d", head, l.first)
	}

	return nil
}

// ArenaLen reports how many arena slots (live or free) the list holds.
func ArenaLen[A any](l *List[A]) int {
	return l.arena.Len()
}
