package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource counts draws taken from a seeded source.
type countingSource struct {
	RandomSource
	n int
}

func (c *countingSource) Float64() float64 {
	c.n++
	return c.RandomSource.Float64()
}

func TestChanceCertainOddsTakeNoDraw(t *testing.T) {
	src := &countingSource{RandomSource: NewSeededRNG(7)}
	for _, p := range []float64{-3, 0, math.NaN()} {
		assert.False(t, Chance(p, src), "p=%v", p)
	}
	for _, p := range []float64{1, 4, math.Inf(1)} {
		assert.True(t, Chance(p, src), "p=%v", p)
	}
	assert.Zero(t, src.n)

	Chance(0.5, src)
	assert.Equal(t, 1, src.n)
}

func TestChanceHitRate(t *testing.T) {
	// a 15% out-of-bounds rate over a season of snaps
	src := NewSeededRNG(42)
	const n = 40000
	hits := 0
	for i := 0; i < n; i++ {
		if Chance(0.15, src) {
			hits++
		}
	}
	assert.InDelta(t, 0.15, float64(hits)/n, 0.01)
}

func TestSeededReplay(t *testing.T) {
	// the huddle, yardage and injury draws a machine makes, in order
	sequence := func(seed uint64) []float64 {
		src := NewSeededRNG(seed)
		var out []float64
		for i := 0; i < 40; i++ {
			out = append(out,
				float64(IntBetween(src, 30, 40)),
				Triangular(src, -4, 12),
				Between(src, 0.9, 1.1),
			)
			if Chance(0.01, src) {
				out = append(out, -1)
			}
		}
		return out
	}
	assert.Equal(t, sequence(99), sequence(99))
	assert.NotEqual(t, sequence(99), sequence(100))
}

func TestIntBetweenInclusive(t *testing.T) {
	src := NewSeededRNG(3)
	seen := map[int]int{}
	for i := 0; i < 3000; i++ {
		v := IntBetween(src, -2, 2)
		require.GreaterOrEqual(t, v, -2)
		require.LessOrEqual(t, v, 2)
		seen[v]++
	}
	assert.Len(t, seen, 5)
	for v, c := range seen {
		assert.InDelta(t, 600, c, 120, "value %d", v)
	}
	assert.Equal(t, 4, IntBetween(src, 4, 4))
	assert.Equal(t, 9, IntBetween(src, 9, 2))
}

// one is a source stuck at the top of its range.
type one struct{}

func (one) Float64() float64 { return 1 }

func TestIntBetweenTopOfRange(t *testing.T) {
	assert.Equal(t, 7, IntBetween(one{}, 3, 7))
}

func TestTriangularFavorsMiddle(t *testing.T) {
	src := NewSeededRNG(5)
	const n = 20000
	middle, sum := 0, 0.0
	for i := 0; i < n; i++ {
		v := Triangular(src, 0, 30)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 30.0)
		if v >= 10 && v < 20 {
			middle++
		}
		sum += v
	}
	// a flat draw would put a third of the mass in the middle band
	assert.Greater(t, float64(middle)/n, 0.5)
	assert.InDelta(t, 15, sum/n, 0.3)
	assert.Equal(t, 6.0, Triangular(src, 6, 6))
}

func TestBetween(t *testing.T) {
	src := NewSeededRNG(8)
	for i := 0; i < 1000; i++ {
		v := Between(src, 0.85, 1.15)
		require.GreaterOrEqual(t, v, 0.85)
		require.Less(t, v, 1.15)
	}
	assert.Equal(t, 2.0, Between(src, 2, 1))
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
