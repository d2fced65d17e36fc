// Package mix draws the random shape of a drink: the three-way ratio split,
// the ingredient picks, and the glassware.
package mix

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Source is the randomness provider for drink generation.
//
// Implementations need not be safe for concurrent use; every generation
// works from its own Source, injected so a seeded one can replay a drink.
type Source interface {
	// Float64 returns a uniform random float64 in [0, 1).
	Float64() float64
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// seededSource implements Source with a deterministic PRNG.
type seededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a Source that replays the same draw sequence for
// the same seed. Use it to reproduce a drink from a known seed.
func NewSeededSource(seed int64) Source {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform random float64 in [0, 1).
func (s *seededSource) Float64() float64 {
	return s.rng.Float64()
}

// Intn returns a random int in [0, n).
//
// Precondition: n > 0. Panics with "mix: Intn called with n <= 0" if n <= 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("mix: Intn called with n <= 0")
	}
	return s.rng.Intn(n)
}

// NewBarSource returns the default process Source: a PRNG seeded once from
// crypto/rand. The uniformity of Float64 matters more here than
// cryptographic strength, so crypto/rand seeds the generator rather than
// serving every draw.
//
// Panics with "mix: crypto/rand failure: <err>" if crypto/rand fails.
func NewBarSource() Source {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		panic("mix: crypto/rand failure: " + err.Error())
	}
	return NewSeededSource(int64(binary.LittleEndian.Uint64(b[:])))
}
