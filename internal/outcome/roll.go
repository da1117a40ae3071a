package outcome

import (
	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/rng"
)

const outOfBoundsRate = 0.15

// Effects are side details of a rolled outcome the game clock and the
// change-of-possession logic need.
type Effects struct {
	ClockStopped bool
	OutOfBounds  bool
	ReturnYards  int // interception or fumble return
}

// Roll is what a draw exposes: the outcome, a concrete yardage inside the
// entry's range and its side effects. Shares stay inside the table.
type Roll struct {
	Outcome football.Outcome
	Yards   int
	Effects Effects
}

// RollOutcome draws an entry by cumulative share, then a yardage within
// its range.
func RollOutcome(t Table, src rng.RandomSource) Roll {
	if src == nil {
		src = rng.DefaultRNG()
	}
	e, ok := pick(t, src)
	if !ok {
		return Roll{Outcome: football.OutcomeNoGain}
	}
	r := Roll{
		Outcome: e.Outcome,
		Yards:   rng.IntBetween(src, e.Yards.Min, e.Yards.Max),
	}
	switch {
	case e.Outcome == football.OutcomeInterception || e.Outcome == football.OutcomeFumbleLost:
		r.Effects.ClockStopped = true
		r.Effects.ReturnYards = returnYards(src)
	case e.Outcome == football.OutcomeIncomplete,
		e.Outcome == football.OutcomeTouchdown,
		e.Outcome == football.OutcomePenaltyOffense,
		e.Outcome == football.OutcomePenaltyDefense:
		r.Effects.ClockStopped = true
	case IsPositiveOutcome(e.Outcome) && rng.Chance(outOfBoundsRate, src):
		r.Effects.OutOfBounds = true
		r.Effects.ClockStopped = true
	}
	return r
}

func pick(t Table, src rng.RandomSource) (Entry, bool) {
	r := src.Float64()
	cum := 0.0
	last := -1
	for i, e := range t {
		if e.Probability <= 0 {
			continue
		}
		last = i
		cum += e.Probability
		if r < cum {
			return e, true
		}
	}
	// float drift: the draw landed past the final cumulative share
	if last >= 0 {
		return t[last], true
	}
	return Entry{}, false
}

func returnYards(src rng.RandomSource) int {
	if rng.Chance(0.06, src) {
		return rng.IntBetween(src, 30, 100)
	}
	return rng.IntBetween(src, 0, 25)
}
