package sorting

import "cmp"

// QuickSort sorts data in ascending order, in place.
func QuickSort[A cmp.Ordered](data []A) {
	QuickSortFunc(data, cmp.Less[A])
}

// QuickSortFunc sorts data in place by less.
//
// Algorithm Outline:
//  1. Choose the median of the first, middle and last element as pivot.
//  2. Partition: move the pivot to the end, sweep smaller-or-equal elements
//     to the front, then drop the pivot between the two halves.
//  3. Recurse into the smaller half and loop on the larger one, bounding
//     stack depth to O(log n).
//
// Complexity: O(n log n) average, O(n²) worst; not stable.
func QuickSortFunc[A any](data []A, less func(a, b A) bool) {
	for len(data) > 1 {
		p := partition(data, medianOfThree(data, less), less)
		if p < len(data)-p-1 {
			QuickSortFunc(data[:p], less)
			data = data[p+1:]
		} else {
			QuickSortFunc(data[p+1:], less)
			data = data[:p]
		}
	}
}

// partition places data[pivot] at its final index and returns that index.
// Everything left of it is not greater, everything right is greater.
func partition[A any](data []A, pivot int, less func(a, b A) bool) int {
	last := len(data) - 1
	data[pivot], data[last] = data[last], data[pivot]

	next := 0
	for i := 0; i < last; i++ {
		if !less(data[last], data[i]) {
			data[i], data[next] = data[next], data[i]
			next++
		}
	}
	data[next], data[last] = data[last], data[next]

	return next
}

// medianOfThree returns the index of the median of data[0], data[mid], data[last].
func medianOfThree[A any](data []A, less func(a, b A) bool) int {
	lo, hi := 0, len(data)-1
	mid := lo + (hi-lo)/2

	a, b, c := data[lo], data[mid], data[hi]
	switch {
	case !less(b, a) && !less(c, b), !less(b, c) && !less(a, b): // a ≤ b ≤ c or c ≤ b ≤ a
		return mid
	case !less(a, b) && !less(c, a), !less(a, c) && !less(b, a): // b ≤ a ≤ c or c ≤ a ≤ b
		return lo
	default:
		return hi
	}
}
