// Package murmur implements MurmurHash3 x86_32, a fast non-cryptographic
// hash for platforms with efficient multiplication. It backs the bloom
// package, which derives k independent hashes by varying the seed.
package murmur

import (
	"encoding/binary"
	"math/bits"
)

const (
	c1 uint32 = 0xcc9e2d51
	c2 uint32 = 0x1b873593
	r1        = 15
	r2        = 13
	m  uint32 = 5
	n  uint32 = 0xe6546b64
)

// Sum32 returns the MurmurHash3 x86_32 hash of data with seed 0.
func Sum32(data []byte) uint32 {
	return Sum32Seed(data, 0)
}

// Sum32Seed returns the MurmurHash3 x86_32 hash of data with the given seed.
// Blocks are read little-endian regardless of host byte order.
func Sum32Seed(data []byte, seed uint32) uint32 {
	hash := seed
	length := len(data)

	nblocks := length / 4
	for i := 0; i < nblocks; i++ {
		k := binary.LittleEndian.Uint32(data[i*4:])
		k *= c1
		k = bits.RotateLeft32(k, r1)
		k *= c2

		hash ^= k
		hash = bits.RotateLeft32(hash, r2)*m + n
	}

	tail := data[nblocks*4:]
	var k1 uint32
	switch len(tail) {
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		k1 *= c1
		k1 = bits.RotateLeft32(k1, r1)
		k1 *= c2
		hash ^= k1
	}

	hash ^= uint32(length)

	return fmix32(hash)
}

// fmix32 is the finalisation mix forcing all bits of the hash to avalanche.
func fmix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16

	return h
}
