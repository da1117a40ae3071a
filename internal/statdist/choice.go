// Package statdist decides which players get credit for a play whose
// result is already settled. Nothing here feeds back into yardage.
package statdist

import (
	"math"

	"github.com/xtding233/gridiron-sim/internal/rng"
)

// WeightedRandomChoice picks one item with chance proportional to its
// weight. Non-positive and non-finite weights never win. It reports false
// for empty or mismatched input and when no weight is positive.
func WeightedRandomChoice[T any](items []T, weights []float64, src rng.RandomSource) (T, bool) {
	var zero T
	if len(items) == 0 || len(items) != len(weights) {
		return zero, false
	}
	total := 0.0
	for _, w := range weights {
		if usable(w) {
			total += w
		}
	}
	if total <= 0 {
		return zero, false
	}
	if src == nil {
		src = rng.DefaultRNG()
	}
	r := src.Float64() * total
	last := -1
	for i, w := range weights {
		if !usable(w) {
			continue
		}
		last = i
		r -= w
		if r < 0 {
			return items[i], true
		}
	}
	return items[last], true
}

func usable(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
