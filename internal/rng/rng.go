// Package rng holds the random sources threaded through every stochastic
// step of a game. Each game owns one source; sources are not safe for
// concurrent use.
package rng

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// RandomSource yields uniform floats in [0, 1).
type RandomSource interface {
	Float64() float64
}

type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	return float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
}

// DefaultRNG returns a non-replayable source. Games that may need to be
// replayed take NewSeededRNG instead.
func DefaultRNG() RandomSource { return cryptoSource{} }

type pcgSource struct{ r *rand.Rand }

// NewSeededRNG returns a PCG-backed source; equal seeds replay equal games.
func NewSeededRNG(seed uint64) RandomSource {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *pcgSource) Float64() float64 { return s.r.Float64() }

// NewSeed picks a seed for a slate that was not given one.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := cryptoRand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Between returns a uniform float in [min, max).
func Between(src RandomSource, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + src.Float64()*(max-min)
}

// IntBetween returns a uniform int in [min, max], both inclusive.
func IntBetween(src RandomSource, min, max int) int {
	if max <= min {
		return min
	}
	n := max - min + 1
	v := int(src.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return min + v
}

// Triangular averages two uniform draws over [min, max], which favors the
// middle of the range.
func Triangular(src RandomSource, min, max float64) float64 {
	if max <= min {
		return min
	}
	t := (src.Float64() + src.Float64()) / 2
	return min + t*(max-min)
}
