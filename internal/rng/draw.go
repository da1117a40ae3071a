package rng

import "math"

// Chance reports a hit with probability p. Engine-computed odds can drift
// outside [0,1], so p is clamped rather than rejected; NaN never hits.
// Certain outcomes do not consume a draw.
func Chance(p float64, src RandomSource) bool {
	switch {
	case math.IsNaN(p), p <= 0:
		return false
	case p >= 1:
		return true
	}
	if src == nil {
		src = DefaultRNG()
	}
	return src.Float64() < p
}
