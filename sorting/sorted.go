package sorting

import "cmp"

// IsSorted reports whether data is in ascending order.
func IsSorted[A cmp.Ordered](data []A) bool {
	return IsSortedFunc(data, cmp.Less[A])
}

// IsSortedFunc reports whether no element is less than its predecessor.
func IsSortedFunc[A any](data []A, less func(a, b A) bool) bool {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}

	return true
}
