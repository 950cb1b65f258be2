package bloom

import (
	"math"

	"github.com/katalvlaran/lvcontainers/heaparray"
	"github.com/katalvlaran/lvcontainers/murmur"
)

const wordBits = 64

// Filter is a Bloom filter over byte strings.
type Filter struct {
	words    *heaparray.HeapArray[uint64]
	capacity uint32 // m, number of bits
	expected uint32 // n, expected number of added values
	hashes   uint32 // k
}

// New creates a filter with capacity bits sized for expected values.
//
// Stage 1 (Validate): capacity > 0, expected > 0, options well-formed.
// Stage 2 (Derive): k = max(1, ⌈capacity/expected · ln 2⌉) unless overridden.
// Stage 3 (Allocate): ⌈capacity/64⌉ zeroed words.
func New(capacity, expected uint32, opts ...Option) (*Filter, error) {
	if capacity == 0 {
		return nil, ErrZeroCapacity
	}
	if expected == 0 {
		return nil, ErrZeroExpected
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.HashCount < 0 {
		return nil, ErrBadHashCount
	}

	k := uint32(o.HashCount)
	if k == 0 {
		k = uint32(math.Ceil(float64(capacity) / float64(expected) * math.Ln2))
		k = max(1, k)
	}

	words, err := heaparray.WithCapacity[uint64](int((uint64(capacity) + wordBits - 1) / wordBits))
	if err != nil {
		return nil, err
	}

	return &Filter{words: words, capacity: capacity, expected: expected, hashes: k}, nil
}

// Cap returns the number of bits m.
func (f *Filter) Cap() uint32 {
	return f.capacity
}

// HashCount returns the number of hash functions k.
func (f *Filter) HashCount() uint32 {
	return f.hashes
}

// Add records data in the filter. Complexity: O(k·len(data)).
func (f *Filter) Add(data []byte) {
	words := f.words.Slice()
	for seed := uint32(0); seed < f.hashes; seed++ {
		bit := murmur.Sum32Seed(data, seed) % f.capacity
		words[bit/wordBits] |= 1 << (bit % wordBits)
	}
}

// Contains reports false if data was definitely never added, and true if it
// may have been.
func (f *Filter) Contains(data []byte) bool {
	words := f.words.Slice()
	for seed := uint32(0); seed < f.hashes; seed++ {
		bit := murmur.Sum32Seed(data, seed) % f.capacity
		if words[bit/wordBits]&(1<<(bit%wordBits)) == 0 {
			return false
		}
	}

	return true
}

// Clear resets every bit.
func (f *Filter) Clear() {
	f.words.Fill(0)
}

// ExpectedFalsePositiveRate estimates the false-positive probability once
// the expected number of values has been added: (1 − e^(−k·n/m))^k.
func (f *Filter) ExpectedFalsePositiveRate() float64 {
	k := float64(f.hashes)
	exponent := -k * float64(f.expected) / float64(f.capacity)

	return math.Pow(1-math.Exp(exponent), k)
}
