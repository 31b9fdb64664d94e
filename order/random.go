package order

import (
	"hash/fnv"

	"golang.org/x/exp/constraints"
)

// StableRandom returns an ordering which looks random but is deterministic for
// a given seed: a is taller than b if the seeded hash of a is smaller. The
// order does not depend on how the values compare under any other predicate,
// which makes StableRandom a Tall predicate for treaps.
//
// Values with identical hashes are equal under StableRandom.
func StableRandom[T any](seed uint64, hash func(T) uint64) LessFunc[T] {
	return func(a, b T) bool {
		return mix(hash(a)^seed) < mix(hash(b)^seed)
	}
}

// HashString is a 64-bit FNV-1a hash of s.
func HashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// HashInt spreads the bits of an integer.
func HashInt[T constraints.Integer](v T) uint64 {
	return mix(uint64(v))
}

// mix is the splitmix64 finalizer.
func mix(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
