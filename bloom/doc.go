// Package bloom provides a Bloom filter: a fixed-size bit set answering
// "definitely not added" or "possibly added".
//
// 🚀 How it works
//
//	Each value is hashed k times with MurmurHash3 (seeds 0..k-1). Every
//	hash, reduced modulo the bit capacity m, selects one bit. Add sets all
//	k bits; Contains reports true only if all k bits are set. There are no
//	false negatives; the false-positive rate for n added values is about
//
//	  (1 − e^(−k·n/m))^k
//
// ✨ Sizing
//
//	New(m, n) derives k = max(1, ⌈m/n · ln 2⌉), the k that minimises the
//	false-positive rate for n expected values. WithHashCount overrides it.
//	Bits are stored in a heaparray.HeapArray of 64-bit words.
//
// ⚙️ Usage:
//
//	f, err := bloom.New(1024, 100)
//	if err != nil {
//	  // ErrZeroCapacity, ErrZeroExpected or ErrBadHashCount
//	}
//	f.Add([]byte("alice"))
//	f.Contains([]byte("alice")) // true
//	f.Contains([]byte("bob"))   // false (with high probability)
package bloom
