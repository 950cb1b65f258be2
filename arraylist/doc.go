// Package arraylist provides ArrayList, a growable array list built on a
// single heaparray.HeapArray.
//
// What
//
//   - Logical length (Len) distinct from allocated capacity (Cap).
//   - Push grows the buffer to max(1, 2·Cap) when full: amortised O(1).
//   - Insert/RemoveAt shift elements at arbitrary indices: O(Len − i).
//   - Slice exposes exactly the live elements as a contiguous, mutable view,
//     which is what the sorting package consumes.
//
// Ownership
//
//	An ArrayList owns exactly one HeapArray. Growth copies into a new array
//	first and only then replaces the owned handle and releases the old block,
//	so there is never a moment where two buffers belong to the list.
//	Views returned by Slice are invalidated by any growth.
//
// Errors
//
//   - ErrOutOfRange       – index outside the valid logical range of the operation.
//   - ErrEmpty            – Pop on an empty list.
//   - ErrNegativeCapacity – requested capacity below zero (heaparray sentinel).
//   - ErrCapacityOverflow – buffer cannot grow further (heaparray sentinel).
//
// A failed operation never mutates the list.
//
// Concurrency
//
//	Not safe for concurrent mutation; there is no internal locking.
package arraylist
