package binaryheap_test

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/katalvlaran/lvcontainers/binaryheap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeap_Basic pushes three values and pops them greatest first.
func TestHeap_Basic(t *testing.T) {
	h := binaryheap.New[uint8]()
	require.NoError(t, h.Push(5))
	require.NoError(t, h.Push(15))
	require.NoError(t, h.Push(10))
	assert.Equal(t, 3, h.Len())

	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, uint8(15), top)

	for _, want := range []uint8{15, 10, 5} {
		v, ok := h.Pop()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}

	_, ok = h.Pop()
	assert.False(t, ok)
	_, ok = h.Peek()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
}

// TestHeap_MatchesBTree checks pop order against btree.DeleteMax on unique random keys.
func TestHeap_MatchesBTree(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	h := binaryheap.New[int]()
	ref := btree.NewOrderedG[int](8)

	for i := 0; i < 500; i++ {
		v := rng.Intn(100_000)
		if _, dup := ref.ReplaceOrInsert(v); dup {
			continue
		}
		require.NoError(t, h.Push(v))
	}
	require.Equal(t, ref.Len(), h.Len())

	for ref.Len() > 0 {
		want, _ := ref.DeleteMax()
		got, ok := h.Pop()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	assert.Equal(t, 0, h.Len())
}

// TestHeap_Duplicates verifies equal keys all come back out.
func TestHeap_Duplicates(t *testing.T) {
	h := binaryheap.New[int]()
	for _, v := range []int{3, 1, 3, 2, 3, 1} {
		require.NoError(t, h.Push(v))
	}

	var out []int
	for h.Len() > 0 {
		v, _ := h.Pop()
		out = append(out, v)
	}
	assert.Equal(t, []int{3, 3, 3, 2, 1, 1}, out)
}

// TestHeap_Interleaved mixes pushes and pops, checking each pop against a btree.
func TestHeap_Interleaved(t *testing.T) {
	h := binaryheap.New[int]()
	ref := btree.NewOrderedG[int](4)
	next := 0

	for round := 0; round < 50; round++ {
		for i := 0; i < 3; i++ {
			v := (next * 37) % 101
			next++
			if _, dup := ref.ReplaceOrInsert(v); !dup {
				require.NoError(t, h.Push(v))
			}
		}
		want, _ := ref.DeleteMax()
		got, ok := h.Pop()
		require.True(t, ok)
		require.Equal(t, want, got, "round %d", round)
	}
}

// TestNewFunc verifies a custom ordering turns the heap into a min-heap.
func TestNewFunc(t *testing.T) {
	h := binaryheap.NewFunc(func(a, b string) bool { return a > b })
	for _, s := range []string{"m", "c", "x", "a"} {
		require.NoError(t, h.Push(s))
	}

	v, _ := h.Pop()
	assert.Equal(t, "a", v)
	v, _ = h.Pop()
	assert.Equal(t, "c", v)
}
