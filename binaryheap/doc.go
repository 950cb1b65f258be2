// Package binaryheap provides a binary max-heap stored in an arraylist.
//
// The element at index i has children 2i+1 and 2i+2 and parent (i-1)/2.
// Push sifts the new element up; Pop swaps the root with the last element,
// removes it, and sifts the new root down.
//
// Complexity: Push, Pop O(log n); Peek, Len O(1).
package binaryheap
