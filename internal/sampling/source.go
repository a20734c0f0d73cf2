// Package sampling provides the seeded random primitives used by every
// generator. A Source is an explicit dependency threaded through the
// generation pipeline; nothing in this module touches the global rand stream.
package sampling

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand"
)

// Source wraps a private rand.Rand. It is not safe for concurrent use;
// callers that fan out across goroutines derive one Source per goroutine
// via Child.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// NewSource creates a Source from the given seed. Seed 0 selects a
// crypto-random seed, so distinct zero-seeded sources are independent.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = cryptoSeed()
	}
	return &Source{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed this source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Child derives an independent source seeded from this one. Two children
// split off the same parent in the same order always get the same seeds,
// which keeps batch generation reproducible per parent seed even when the
// children are consumed on different goroutines.
func (s *Source) Child() *Source {
	seed := s.rng.Int63()
	if seed == 0 {
		seed = 1
	}
	return &Source{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

func cryptoSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand failing is unrecoverable on every supported platform;
		// fall back to a constant rather than panic in a generation path.
		return 1
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]))
	if seed == 0 {
		seed = 1
	}
	return seed
}

// BoundedNormal draws a normal variate and clamps it into [min, max].
// Clamping piles probability mass onto the bounds instead of redrawing,
// so the result is only approximately normal near min and max.
func (s *Source) BoundedNormal(mean, stdDev, min, max float64) float64 {
	v := s.rng.NormFloat64()*stdDev + mean
	return math.Min(max, math.Max(min, v))
}

// Normal draws an unclamped normal variate.
func (s *Source) Normal(mean, stdDev float64) float64 {
	return s.rng.NormFloat64()*stdDev + mean
}

// WeightedIndex picks an index with probability proportional to its weight.
// Weights are expected to sum to 1 but this is not enforced; if the draw
// overshoots the accumulated total the last index wins.
func (s *Source) WeightedIndex(weights []float64) int {
	if len(weights) == 0 {
		return 0
	}
	roll := s.rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if roll < acc {
			return i
		}
	}
	return len(weights) - 1
}

// IntBetween returns a uniform integer in [min, max] inclusive.
func (s *Source) IntBetween(min, max int) int {
	if min >= max {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// FloatBetween returns a uniform float in [min, max].
func (s *Source) FloatBetween(min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// Chance returns true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}
