package sorting

import (
	"cmp"

	"github.com/katalvlaran/lvcontainers/arraylist"
)

// MergeSort returns a new slice holding data in ascending order.
// data itself is not modified.
func MergeSort[A cmp.Ordered](data []A) []A {
	return MergeSortFunc(data, cmp.Less[A])
}

// MergeSortFunc returns a new slice holding data ordered by less.
//
// Algorithm Outline:
//  1. Divide: split at the middle until runs have length ≤ 1.
//  2. Conquer: merge two sorted runs into an arraylist sized for both,
//     taking from the left run on ties so the sort is stable.
//
// Complexity: O(n log n) time in every case, O(n) auxiliary space per level.
func MergeSortFunc[A any](data []A, less func(a, b A) bool) []A {
	switch len(data) {
	case 0:
		return []A{}
	case 1:
		return []A{data[0]}
	}

	middle := len(data) / 2

	return merge(MergeSortFunc(data[:middle], less), MergeSortFunc(data[middle:], less), less)
}

// merge combines two sorted runs.
func merge[A any](left, right []A, less func(a, b A) bool) []A {
	out, err := arraylist.WithCapacity[A](len(left) + len(right))
	if err != nil {
		// both runs are already resident, so an equal-sized buffer is addressable.
		panic(err)
	}

	l, r := 0, 0
	for l < len(left) && r < len(right) {
		if less(right[r], left[l]) {
			_ = out.Push(right[r])
			r++
		} else {
			_ = out.Push(left[l])
			l++
		}
	}
	for ; l < len(left); l++ {
		_ = out.Push(left[l])
	}
	for ; r < len(right); r++ {
		_ = out.Push(right[r])
	}

	return out.Slice()
}
