package linkedlist_test

import (
	"testing"

	"github.com/katalvlaran/lvcontainers/linkedlist"
)

// BenchmarkAppend measures O(1) append including arena growth.
func BenchmarkAppend(b *testing.B) {
	l := linkedlist.New[int]()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Append(i)
	}
}

// BenchmarkQueue measures steady-state Append+PopFront, which reuses freed slots.
func BenchmarkQueue(b *testing.B) {
	l := linkedlist.New[int]()
	for i := 0; i < 64; i++ {
		l.Append(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Append(i)
		if _, ok := l.PopFront(); !ok {
			b.Fatal("PopFront on non-empty list reported empty")
		}
	}
}
