package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/rng"
)

var allTiers = []football.ConsistencyTier{
	football.TierMetronome, football.TierSteady, football.TierAverage,
	football.TierStreaky, football.TierVolatile, football.TierChaotic,
}

func TestTierRanges(t *testing.T) {
	want := map[football.ConsistencyTier][2]float64{
		football.TierMetronome: {-2, 2},
		football.TierSteady:    {-4, 4},
		football.TierAverage:   {-7, 7},
		football.TierStreaky:   {-10, 12},
		football.TierVolatile:  {-15, 15},
		football.TierChaotic:   {-20, 20},
	}
	for tier, r := range want {
		lo, hi := TierRange(tier)
		assert.Equal(t, r[0], lo, tier)
		assert.Equal(t, r[1], hi, tier)
	}
}

func TestStreakDirectionBias(t *testing.T) {
	src := rng.NewSeededRNG(11)
	for _, tier := range allTiers {
		lo, hi := TierRange(tier)
		hot, cold := 0, 0
		const trials = 200
		for i := 0; i < trials; i++ {
			h := CalculateWeeklyVariance(football.ConsistencyProfile{Tier: tier, CurrentStreak: football.StreakHot, StreakGamesRemaining: 2}, nil, src)
			c := CalculateWeeklyVariance(football.ConsistencyProfile{Tier: tier, CurrentStreak: football.StreakCold, StreakGamesRemaining: 2}, nil, src)
			if h.Variance > 0 {
				hot++
			}
			if c.Variance < 0 {
				cold++
			}
			for _, v := range []float64{h.Variance, c.Variance} {
				assert.GreaterOrEqual(t, v, lo-5, tier)
				assert.LessOrEqual(t, v, hi+5, tier)
			}
		}
		assert.GreaterOrEqual(t, hot, trials/2, "hot draws for %s", tier)
		assert.GreaterOrEqual(t, cold, trials/2, "cold draws for %s", tier)
	}
}

func TestMidStreakCountsDown(t *testing.T) {
	res := CalculateWeeklyVariance(football.ConsistencyProfile{
		Tier: football.TierStreaky, CurrentStreak: football.StreakHot, StreakGamesRemaining: 3,
	}, nil, rng.NewSeededRNG(1))
	assert.Equal(t, football.StreakHot, res.NewStreak)
	assert.Equal(t, 2, res.StreakGamesRemaining)
}

func TestNeutralDrawsStayInRange(t *testing.T) {
	src := rng.NewSeededRNG(5)
	for _, tier := range allTiers {
		lo, hi := TierRange(tier)
		for i := 0; i < 300; i++ {
			res := CalculateWeeklyVariance(football.ConsistencyProfile{Tier: tier, CurrentStreak: football.StreakNeutral}, nil, src)
			if res.NewStreak == football.StreakNeutral {
				assert.GreaterOrEqual(t, res.Variance, lo)
				assert.LessOrEqual(t, res.Variance, hi)
				assert.Zero(t, res.StreakGamesRemaining)
			} else {
				assert.GreaterOrEqual(t, res.StreakGamesRemaining, 0)
				assert.LessOrEqual(t, res.StreakGamesRemaining, 4)
			}
		}
	}
}

func TestExpiredStreakResetsOrRestarts(t *testing.T) {
	src := rng.NewSeededRNG(21)
	neutral := 0
	for i := 0; i < 200; i++ {
		res := CalculateWeeklyVariance(football.ConsistencyProfile{
			Tier: football.TierMetronome, CurrentStreak: football.StreakCold, StreakGamesRemaining: 0,
		}, nil, src)
		if res.NewStreak == football.StreakNeutral {
			neutral++
		}
	}
	// metronomes rarely start a streak, so an expired one almost always resets
	assert.Greater(t, neutral, 180)
}

func TestStreakStartFollowsPreviousSign(t *testing.T) {
	src := rng.NewSeededRNG(8)
	prev := 6.0
	hot, started := 0, 0
	for i := 0; i < 4000; i++ {
		res := CalculateWeeklyVariance(football.ConsistencyProfile{Tier: football.TierStreaky, CurrentStreak: football.StreakNeutral}, &prev, src)
		if res.NewStreak == football.StreakNeutral {
			continue
		}
		started++
		if res.NewStreak == football.StreakHot {
			hot++
		}
	}
	require.Greater(t, started, 500)
	share := float64(hot) / float64(started)
	assert.InDelta(t, 0.7, share, 0.06)
}

func TestAdvanceRosterWritesProfiles(t *testing.T) {
	players := []*football.Player{
		{ID: "a", Consistency: &football.ConsistencyProfile{Tier: football.TierStreaky, CurrentStreak: football.StreakHot, StreakGamesRemaining: 2}},
		{ID: "b"},
	}
	got := AdvanceRoster(players, map[football.PlayerID]float64{"a": 4}, rng.NewSeededRNG(2))
	require.Len(t, got, 2)
	assert.Greater(t, got["a"], 0.0)
	assert.Equal(t, 1, players[0].Consistency.StreakGamesRemaining)
	assert.Nil(t, players[1].Consistency)
}
