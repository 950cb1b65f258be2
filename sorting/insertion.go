package sorting

import "cmp"

// InsertionSort sorts data in ascending order, in place.
func InsertionSort[A cmp.Ordered](data []A) {
	InsertionSortFunc(data, cmp.Less[A])
}

// InsertionSortFunc sorts data in place by less, sinking each element
// leftward past every larger predecessor. Stable.
//
// Complexity: O(n²) worst, O(n) on sorted input, no extra memory.
func InsertionSortFunc[A any](data []A, less func(a, b A) bool) {
	for i := 1; i < len(data); i++ {
		for x := i; x > 0 && less(data[x], data[x-1]); x-- {
			data[x], data[x-1] = data[x-1], data[x]
		}
	}
}
