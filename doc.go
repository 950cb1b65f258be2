// Package lvcontainers is a small teaching library of hand-built containers
// and classic sorting algorithms, written without leaning on append-grown
// slices, container/heap or container/list.
//
// 🚀 What is inside?
//
//	Containers, each with explicit allocation and explicit ownership:
//		• heaparray  – fixed-capacity heap buffer, bounds-checked, grows only by Copy
//		• arraylist  – growable list over a heaparray, doubling growth, shifting insert/remove
//		• linkedlist – doubly linked list, index-linked arena, O(1) at both ends
//	Collaborators that consume them:
//		• sorting    – insertion, selection, merge and quick sort over a []A view
//		• binaryheap – max-heap stored in an arraylist
//		• murmur     – MurmurHash3 x86_32
//		• bloom      – Bloom filter over heaparray words and murmur hashes
//
// ✨ Why read it?
//
//   - Every growth step is visible: allocate new, copy, swap the handle, release old
//   - Bounds and allocation failures are distinct sentinel errors (errors.Is)
//   - The linked list shows head-owns-chain ownership with back-references
//     that never decide lifetime
//   - Pure Go, no cgo, no unsafe pointers handed to callers
//
// Layout, leaves first:
//
//	heaparray/  : HeapArray[A]
//	arraylist/  : ArrayList[A] (owns one HeapArray)
//	linkedlist/ : List[A] (arena is an ArrayList of nodes)
//	sorting/    : sorts; MergeSort buffers through an ArrayList
//	binaryheap/ : Heap[A]
//	murmur/     : Sum32, Sum32Seed
//	bloom/      : Filter
//	examples/   : runnable scenarios
//
// None of the types are safe for concurrent mutation.
//
//	go get github.com/katalvlaran/lvcontainers
package lvcontainers
