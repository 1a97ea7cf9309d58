// Package rng provides the per-replication random source used by the
// transition engine, treatment machinery, and PSA driver. Each
// replication constructs its own Source from a deterministic seed and
// never shares it across goroutines, per the concurrency model's RNG
// discipline (§5): the source must not be a global, shared generator.
package rng

import (
	"math/rand"

	"github.com/valyala/fastrand"
)

// Source wraps a fastrand.RNG: a small, non-global generator state
// that is cheap to construct per replication and carries no package-
// level mutable state, unlike math/rand's top-level functions. This
// is the direct analogue of the teacher's own use of
// github.com/valyala/fastrand for its own per-run random draws.
type Source struct {
	rng  fastrand.RNG
	norm *rand.Rand // backs Normal; built once per Source, never per draw.
}

// New seeds a fresh Source. Same seed, same traversal order, same
// draw sequence: this is the determinism contract §5 and §8 require.
func New(seed uint64) *Source {
	s := &Source{}
	s.rng.Seed(uint32(seed))
	s.norm = rand.New(randSource64{s: s})
	return s
}

// Float64 draws a uniform value in [0,1).
func (s *Source) Float64() float64 {
	return float64(s.rng.Uint32()) / (1 << 32)
}

// Uint32n draws a uniform value in [0,n).
func (s *Source) Uint32n(n uint32) uint32 {
	return s.rng.Uint32n(n)
}

// Uint64 packs two Uint32 draws into a 64-bit word, used by the
// math/rand.Source64 adapter in normal.go.
func (s *Source) Uint64() uint64 {
	hi := uint64(s.rng.Uint32())
	lo := uint64(s.rng.Uint32())
	return hi<<32 | lo
}
