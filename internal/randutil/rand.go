// Package randutil builds reproducible random sources for board sampling.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. Both PCG
// words are derived from the one seed so every caller gets the same stream
// for the same value.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// Stream returns the seed for worker i of a sweep seeded with seed, so
// workers draw independent streams without sharing a source.
func Stream(seed int64, i int) int64 {
	return int64(splitmix(uint64(seed) + uint64(i+1)*goldenRatio64))
}

// Pick returns a random element of items. It panics if items is empty.
func Pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
