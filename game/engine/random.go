package engine

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// pcgStream is the fixed second PCG word; the seed alone selects the sequence
const pcgStream = 0x9e3779b97f4a7c15

// RandSource is the randomness consumed by shuffling. *rand.Rand satisfies it.
type RandSource interface {
	// IntN returns a uniform value in [0, n)
	IntN(n int) int
}

// NewRandSource returns a generator seeded once from the operating system's
// entropy source
func NewRandSource() *rand.Rand {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(invariantf("reading entropy: %v", err))
	}
	return rand.New(rand.NewChaCha8(seed))
}

// NewSeededSource returns a deterministic generator for reproducible shuffles
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgStream))
}
