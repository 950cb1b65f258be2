package bloom

import "errors"

var (
	// ErrZeroCapacity indicates a filter with no bits was requested.
	ErrZeroCapacity = errors.New("bloom: capacity must be > 0")

	// ErrZeroExpected indicates the expected number of values was zero.
	ErrZeroExpected = errors.New("bloom: expected length must be > 0")

	// ErrBadHashCount indicates a negative hash count override.
	ErrBadHashCount = errors.New("bloom: hash count must be >= 0")
)

// Option configures optional behavior of a Filter.
// Use with New(capacity, expected, opts...).
type Option func(*Options)

// Options holds configurable parameters for a Filter.
type Options struct {
	// HashCount fixes the number of hash functions k.
	// Zero (default) derives k from capacity and expected length.
	HashCount int
}

// DefaultOptions returns Options with a derived hash count.
func DefaultOptions() Options {
	return Options{HashCount: 0}
}

// WithHashCount returns an Option that fixes the number of hash functions.
// k == 0 restores the derived default; k < 0 makes New fail with ErrBadHashCount.
func WithHashCount(k int) Option {
	return func(o *Options) {
		o.HashCount = k
	}
}
