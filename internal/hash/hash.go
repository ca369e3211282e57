// Package hash provides a fixed-width content hash used to key canonical
// type strings for the checker's overload-conflict test.
//
// Adapted from github.com/grailbio/gql/hash: a 32-byte digest with a
// commutative Add (order doesn't matter, used to combine a set of children)
// and an order-sensitive Merge (used to fold a sequence of sub-hashes).
package hash

import (
	"crypto/sha512"
	"encoding/hex"

	"github.com/spaolacci/murmur3"
)

// Hash is a 32-byte digest.
type Hash [32]byte

// String returns a hex representation of the hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Add combines two hashes order-independently by adding them as 256-bit
// big-endian integers (modulo 2^256). Add is commutative and associative,
// so it is safe to use when combining an unordered set of children (e.g.
// struct fields reached via map iteration).
func (h Hash) Add(other Hash) Hash {
	var out Hash
	var carry uint16
	for i := len(out) - 1; i >= 0; i-- {
		sum := uint16(h[i]) + uint16(other[i]) + carry
		out[i] = byte(sum)
		carry = sum >> 8
	}
	return out
}

// Merge combines two hashes order-sensitively: Merge(a, b) != Merge(b, a) in
// general. Use this to fold a sequence whose order is semantically
// meaningful (e.g. tuple elements, statements in a block).
func (h Hash) Merge(other Hash) Hash {
	buf := make([]byte, 0, 64)
	buf = append(buf, h[:]...)
	buf = append(buf, other[:]...)
	return sha512.Sum512_256(buf)
}

// Bytes hashes an arbitrary byte slice.
func Bytes(b []byte) Hash {
	return sha512.Sum512_256(b)
}

// String hashes a string.
func String(s string) Hash {
	return Bytes([]byte(s))
}

// Int hashes an integer.
func Int(n int64) Hash {
	buf := [8]byte{}
	for i := 0; i < 8; i++ {
		buf[i] = byte(n >> (8 * i))
	}
	return Bytes(buf[:])
}

// Bucket re-hashes h into one of numBuckets slots using a seeded murmur3
// pass. sha512's low-order bits don't carry enough independent entropy for
// direct modulo bucketing, the same problem noted next to
// murmur3.Sum32WithSeed in gql's parallel reduce table; re-hashing with a
// cheap seeded hash fixes it. Used by the checker's overload registration
// to shard existing signatures by their parameter-set hash.
func (h Hash) Bucket(seed uint32, numBuckets int) int {
	if numBuckets <= 0 {
		return 0
	}
	return int(murmur3.Sum32WithSeed(h[:], seed)) % numBuckets
}
