// Package heaparray provides HeapArray, a fixed-capacity, heap-allocated,
// indexable buffer with explicit allocation and no automatic growth.
//
// 🚀 What is a HeapArray?
//
//	The leaf building block of lvcontainers. A HeapArray owns exactly one
//	contiguous block of Cap() slots. The block never resizes in place:
//	growing means Copy into a new array, after which the owner swaps its
//	handle. arraylist, linkedlist (arena) and bloom (bit words) are all
//	built on top of it.
//
// ✨ Key properties:
//   - every slot starts at the element type's zero value
//   - all indexed access is bounds-checked and reports ErrOutOfRange
//   - zero-size element types (struct{}, [0]T) report Cap() == math.MaxInt
//   - byte-size overflow is reported as ErrCapacityOverflow before allocating
//   - no method ever shrinks capacity
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvcontainers/heaparray"
//
//	a, err := heaparray.WithCapacity[uint8](4)
//	if err != nil {
//	  // ErrNegativeCapacity or ErrCapacityOverflow
//	}
//	_ = a.Set(0, 5)
//	_ = a.Swap(0, 3)
//	b, _ := a.Copy(8) // b[0:4] == a[0:4], b[4:8] are zero
//
// Errors:
//   - ErrNegativeCapacity – a capacity below zero was requested.
//   - ErrCapacityOverflow – capacity·sizeof(A) exceeds the addressable limit.
//   - ErrOutOfRange       – index outside [0, Cap()).
//
// Out-of-memory is not an error value: like the Go allocator itself, an
// unsatisfiable request that passed the overflow check aborts the program.
//
// Complexity:
//   - WithCapacity, Copy: O(n)
//   - At, Set, Swap, Cap: O(1)
package heaparray
