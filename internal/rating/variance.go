package rating

import (
	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/rng"
)

// streakBonus is added on top of a streak-biased draw.
const streakBonus = 2.0

// tierParams describes one consistency tier.
type tierParams struct {
	min, max    float64 // variance range
	streakStart float64 // chance a neutral player starts a streak this week
	minLength   int
	maxLength   int
}

var tiers = map[football.ConsistencyTier]tierParams{
	football.TierMetronome: {-2, 2, 0.02, 1, 1},
	football.TierSteady:    {-4, 4, 0.05, 1, 2},
	football.TierAverage:   {-7, 7, 0.10, 1, 3},
	football.TierStreaky:   {-10, 12, 0.25, 2, 5},
	football.TierVolatile:  {-15, 15, 0.18, 1, 4},
	football.TierChaotic:   {-20, 20, 0.22, 1, 3},
}

func paramsFor(tier football.ConsistencyTier) tierParams {
	if p, ok := tiers[tier]; ok {
		return p
	}
	return tiers[football.TierAverage]
}

// TierRange returns the variance range of a tier; unknown tiers use average.
func TierRange(tier football.ConsistencyTier) (min, max float64) {
	p := paramsFor(tier)
	return p.min, p.max
}

// VarianceResult is one week's form and the streak state to persist.
type VarianceResult struct {
	Variance             float64
	NewStreak            football.StreakState
	StreakGamesRemaining int
}

// CalculateWeeklyVariance advances a consistency profile by one week.
//   - mid-streak: continue it, biased toward its direction, and count down
//   - otherwise maybe start a streak (direction follows last week's sign
//     70% of the time when previous is given)
//   - otherwise draw a centered value and reset to neutral
func CalculateWeeklyVariance(profile football.ConsistencyProfile, previous *float64, src rng.RandomSource) VarianceResult {
	if src == nil {
		src = rng.DefaultRNG()
	}
	p := paramsFor(profile.Tier)

	if profile.CurrentStreak != football.StreakNeutral && profile.CurrentStreak != "" && profile.StreakGamesRemaining > 0 {
		return VarianceResult{
			Variance:             streakDraw(p, profile.CurrentStreak, src),
			NewStreak:            profile.CurrentStreak,
			StreakGamesRemaining: profile.StreakGamesRemaining - 1,
		}
	}

	if rng.Chance(p.streakStart, src) {
		dir := pickDirection(previous, src)
		length := rng.IntBetween(src, p.minLength, p.maxLength)
		return VarianceResult{
			Variance:             streakDraw(p, dir, src),
			NewStreak:            dir,
			StreakGamesRemaining: length - 1,
		}
	}

	return VarianceResult{
		Variance:  rng.Triangular(src, p.min, p.max),
		NewStreak: football.StreakNeutral,
	}
}

func pickDirection(previous *float64, src rng.RandomSource) football.StreakState {
	if previous == nil || *previous == 0 {
		if rng.Chance(0.5, src) {
			return football.StreakHot
		}
		return football.StreakCold
	}
	same := football.StreakHot
	if *previous < 0 {
		same = football.StreakCold
	}
	if rng.Chance(0.7, src) {
		return same
	}
	if same == football.StreakHot {
		return football.StreakCold
	}
	return football.StreakHot
}

// streakDraw samples the half of the range matching the streak direction.
func streakDraw(p tierParams, dir football.StreakState, src rng.RandomSource) float64 {
	mid := (p.min + p.max) / 2
	if dir == football.StreakCold {
		return rng.Between(src, p.min, mid) - streakBonus
	}
	return rng.Between(src, mid, p.max) + streakBonus
}

// AdvanceRoster rolls one week of form for every player, writes the new
// streak state back to each player's profile and returns the variance map
// the engine reads for the whole week. previous may be nil.
func AdvanceRoster(players []*football.Player, previous map[football.PlayerID]float64, src rng.RandomSource) map[football.PlayerID]float64 {
	out := make(map[football.PlayerID]float64, len(players))
	for _, pl := range players {
		if pl == nil {
			continue
		}
		profile := football.ConsistencyProfile{Tier: football.TierAverage, CurrentStreak: football.StreakNeutral}
		if pl.Consistency != nil {
			profile = *pl.Consistency
		}
		var prev *float64
		if v, ok := previous[pl.ID]; ok {
			prev = &v
		}
		res := CalculateWeeklyVariance(profile, prev, src)
		out[pl.ID] = res.Variance
		if pl.Consistency != nil {
			pl.Consistency.CurrentStreak = res.NewStreak
			pl.Consistency.StreakGamesRemaining = res.StreakGamesRemaining
		}
	}
	return out
}
