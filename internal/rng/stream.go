// Package rng provides the deterministic random stream and weighted sampling
// used by system generation.
package rng

import (
	"hash/fnv"
	"math"
)

// DefaultState replaces a zero seed. xorshift has an all-zero fixed point.
const DefaultState uint32 = 123456789

// twoPow32 normalizes a uint32 draw into [0,1).
const twoPow32 = 4294967296.0

// Source yields floats in [0,1).
type Source interface {
	Next() float64
}

// Stream is a xorshift32 generator. The output sequence depends only on the
// seed, so a shared seed reproduces an identical system.
type Stream struct {
	x uint32
}

// New creates a stream seeded with seed.
func New(seed uint32) *Stream {
	if seed == 0 {
		seed = DefaultState
	}
	return &Stream{x: seed}
}

// Next advances the state and returns it scaled to [0,1).
func (s *Stream) Next() float64 {
	x := s.x
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	s.x = x
	return float64(x) / twoPow32
}

// State returns the current internal state.
func (s *Stream) State() uint32 {
	return s.x
}

// Range returns a uniform float in [min,max).
func (s *Stream) Range(min, max float64) float64 {
	return min + s.Next()*(max-min)
}

// IntRange returns a uniform int in [min,max], both inclusive.
func (s *Stream) IntRange(min, max int) int {
	return min + int(math.Floor(s.Next()*float64(max-min+1)))
}

// Angle returns a uniform angle in [0,2π).
func (s *Stream) Angle() float64 {
	return s.Next() * 2 * math.Pi
}

// Chance draws once and reports whether the draw fell below p.
func (s *Stream) Chance(p float64) bool {
	return s.Next() < p
}

// SeedFromString hashes s with 32-bit FNV-1a.
func SeedFromString(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
