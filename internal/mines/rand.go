package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// Rand is the randomness a board consumes while placing mines.
// [*rand.Rand] satisfies it.
type Rand interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewRand returns a PCG generator seeded from the runtime's hash seed.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// sample draws k distinct values out of [0, n) with a partial Fisher-Yates
// shuffle, so every k-subset is equally likely.
func sample(r Rand, n, k int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := range k {
		j := i + r.IntN(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:k]
}
