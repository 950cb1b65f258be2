package binaryheap_test

import (
	"testing"

	"github.com/katalvlaran/lvcontainers/binaryheap"
)

// BenchmarkPush pushes 1000 ascending keys, the worst case for sift-up.
func BenchmarkPush(b *testing.B) {
	for i := 0; i < b.N; i++ {
		h := binaryheap.New[uint32]()
		for j := uint32(0); j < 1000; j++ {
			_ = h.Push(j)
		}
	}
}

// BenchmarkPushPop measures a steady-state push/pop pair on a 1000-element heap.
func BenchmarkPushPop(b *testing.B) {
	h := binaryheap.New[int]()
	for j := 0; j < 1000; j++ {
		_ = h.Push(j)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Push(i % 2000)
		h.Pop()
	}
}
