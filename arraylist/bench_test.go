package arraylist_test

import (
	"testing"

	"github.com/katalvlaran/lvcontainers/arraylist"
)

// BenchmarkPush measures amortised push cost from the default capacity.
func BenchmarkPush(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := arraylist.New[int]()
		for j := 0; j < 1000; j++ {
			if err := l.Push(j); err != nil {
				b.Fatalf("Push failed: %v", err)
			}
		}
	}
}

// BenchmarkInsertFront measures the O(n) shift of an insert and removal at
// index 0 of a 1000-element list.
func BenchmarkInsertFront(b *testing.B) {
	l := arraylist.Of(make([]int, 1000)...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := l.Insert(0, i); err != nil {
			b.Fatalf("Insert failed: %v", err)
		}
		if _, err := l.RemoveAt(0); err != nil {
			b.Fatalf("RemoveAt failed: %v", err)
		}
	}
}
