package sorting

import "cmp"

// SelectionSort sorts data in ascending order, in place.
func SelectionSort[A cmp.Ordered](data []A) {
	SelectionSortFunc(data, cmp.Less[A])
}

// SelectionSortFunc sorts data in place by less. Each pass selects the
// minimum of the unsorted suffix and swaps it into position, so at most
// n-1 swaps are performed. Not stable.
//
// Complexity: O(n²) comparisons, O(n) writes.
func SelectionSortFunc[A any](data []A, less func(a, b A) bool) {
	for i := 0; i < len(data); i++ {
		minIdx := i
		for x := i + 1; x < len(data); x++ {
			if less(data[x], data[minIdx]) {
				minIdx = x
			}
		}
		if minIdx != i {
			data[i], data[minIdx] = data[minIdx], data[i]
		}
	}
}
