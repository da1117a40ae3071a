package slate

import (
	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/rating"
	"github.com/xtding233/gridiron-sim/internal/rng"
)

// Week is the form every player carries into one round of games. Streak
// state is kept here so it survives rosters being rebuilt between weeks.
type Week struct {
	Number   int
	Variance map[football.PlayerID]float64
	Streaks  map[football.PlayerID]football.ConsistencyProfile
}

// AdvanceWeek rolls one week of form for every player: exactly once per
// player, never per play. Players missing from the list, such as teams on
// a bye, keep last week's form and streak unchanged.
func AdvanceWeek(prev Week, players []*football.Player, src rng.RandomSource) Week {
	if src == nil {
		src = rng.DefaultRNG()
	}
	for _, p := range players {
		if p == nil || p.Consistency == nil {
			continue
		}
		if s, ok := prev.Streaks[p.ID]; ok {
			p.Consistency.CurrentStreak = s.CurrentStreak
			p.Consistency.StreakGamesRemaining = s.StreakGamesRemaining
		}
	}

	next := Week{
		Number:   prev.Number + 1,
		Variance: rating.AdvanceRoster(players, prev.Variance, src),
		Streaks:  make(map[football.PlayerID]football.ConsistencyProfile, len(players)),
	}
	for _, p := range players {
		if p != nil && p.Consistency != nil {
			next.Streaks[p.ID] = *p.Consistency
		}
	}
	for id, v := range prev.Variance {
		if _, ok := next.Variance[id]; !ok {
			next.Variance[id] = v
		}
	}
	for id, st := range prev.Streaks {
		if _, ok := next.Streaks[id]; !ok {
			next.Streaks[id] = st
		}
	}
	return next
}

// Apply copies the week's variance onto a freshly built team.
func (w Week) Apply(t *football.TeamGameState) {
	if len(w.Variance) == 0 {
		return
	}
	t.EnsureMaps()
	for _, p := range t.Roster() {
		if v, ok := w.Variance[p.ID]; ok {
			t.WeeklyVariance[p.ID] = v
		}
	}
}
