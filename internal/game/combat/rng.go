package combat

import (
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
)

// Source is the random stream consumed by battle resolution.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// NewSource returns a deterministic PCG-backed source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SeedFromID derives a stable seed from an arbitrary battle identifier,
// so a battle can be replayed from its ID alone.
func SeedFromID(id string) uint64 {
	sum := blake2b.Sum256([]byte(id))
	return binary.LittleEndian.Uint64(sum[:8])
}
