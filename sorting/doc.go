// Package sorting implements four classic comparison sorts over a
// contiguous view of elements.
//
// What
//
//   - InsertionSort – in place, stable, O(n²); O(n·k) when every element is
//     at most k places from its sorted position. Good for small or nearly
//     sorted input.
//   - SelectionSort – in place, not stable, O(n²) comparisons but only O(n)
//     swaps.
//   - MergeSort     – returns a new slice, stable, O(n log n) in every case,
//     O(n) auxiliary space.
//   - QuickSort     – in place, not stable, O(n log n) average, O(n²) worst;
//     median-of-three pivot selection.
//
// Every algorithm has a Func variant taking a strict less(a, b) ordering,
// and consumes nothing but a []A. That makes them work identically on a
// plain slice and on arraylist.ArrayList.Slice():
//
//	l := arraylist.Of(9, 8, 1, 5)
//	sorting.QuickSort(l.Slice()) // sorts the list in place
//
// Determinism
//
//	No randomness is used; equal input always yields equal output.
package sorting
