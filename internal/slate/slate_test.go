package slate

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/football/footballtest"
	"github.com/xtding233/gridiron-sim/internal/game"
	"github.com/xtding233/gridiron-sim/internal/rng"
)

// league builds footballtest teams by id; ids not listed are unknown.
type league map[string]float64

func (l league) Team(id string) (*football.TeamGameState, error) {
	q, ok := l[id]
	if !ok {
		return nil, fmt.Errorf("no team %q", id)
	}
	return footballtest.NewTeam(id, q), nil
}

var teams = league{"a": 70, "b": 70, "c": 66, "d": 74, "strong": 88, "weak": 50}

func quick() game.Config { return game.Config{QuarterLength: 300} }

func TestRunSlate(t *testing.T) {
	games := []Matchup{
		{Home: "a", Away: "b", Config: quick()},
		{Home: "c", Away: "d", Config: quick()},
		{Home: "a", Away: "ghost", Config: quick()},
		{Home: "d", Away: "a", Config: quick()},
	}
	out, err := RunSlate(context.Background(), teams, games, Week{}, Options{Workers: 2, Seed: 7})
	require.NoError(t, err)
	require.Len(t, out, len(games))

	for i, s := range out {
		assert.Equal(t, games[i].Home, s.Home)
		if games[i].Away == "ghost" {
			assert.Contains(t, s.Error, "ghost")
			continue
		}
		assert.Empty(t, s.Error)
		assert.NotEmpty(t, s.GameID)
		assert.Positive(t, s.Plays)
		assert.Nil(t, s.Final)
		switch {
		case s.Score.Home > s.Score.Away:
			assert.Equal(t, s.Home, s.Winner)
		case s.Score.Away > s.Score.Home:
			assert.Equal(t, s.Away, s.Winner)
		default:
			assert.Empty(t, s.Winner)
		}
	}
}

func TestRunSlateIsReproducible(t *testing.T) {
	games := []Matchup{{Home: "a", Away: "b", Config: quick()}, {Home: "c", Away: "d", Config: quick()}}
	first, err := RunSlate(context.Background(), teams, games, Week{}, Options{Seed: 99})
	require.NoError(t, err)
	second, err := RunSlate(context.Background(), teams, games, Week{}, Options{Seed: 99, Workers: 1})
	require.NoError(t, err)
	for i := range first {
		assert.Equal(t, first[i].Seed, second[i].Seed)
		assert.Equal(t, first[i].Score, second[i].Score)
		assert.Equal(t, first[i].Plays, second[i].Plays)
	}
	assert.NotEqual(t, first[0].Seed, first[1].Seed)
}

func TestRunSlateKeepsPlays(t *testing.T) {
	out, err := RunSlate(context.Background(), teams, []Matchup{{Home: "a", Away: "b", Config: quick()}}, Week{}, Options{Seed: 3, KeepPlays: true})
	require.NoError(t, err)
	require.NotNil(t, out[0].Final)
	assert.True(t, out[0].Final.IsComplete)
	assert.Len(t, out[0].Final.Plays, out[0].Plays)
}

func TestRunSlateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunSlate(ctx, teams, []Matchup{{Home: "a", Away: "b"}}, Week{}, Options{Seed: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestAdvanceWeek(t *testing.T) {
	src := rng.NewSeededRNG(5)
	team := footballtest.NewTeam("a", 70)
	players := team.Roster()

	w1 := AdvanceWeek(Week{}, players, src)
	assert.Equal(t, 1, w1.Number)
	assert.Len(t, w1.Variance, len(players))
	assert.Len(t, w1.Streaks, len(players))
	lo, hi := -7.0-5, 7.0+5
	for _, v := range w1.Variance {
		assert.GreaterOrEqual(t, v, lo)
		assert.LessOrEqual(t, v, hi)
	}

	fresh := footballtest.NewTeam("a", 70)
	w2 := AdvanceWeek(w1, fresh.Roster(), src)
	assert.Equal(t, 2, w2.Number)
	for id, s := range w2.Streaks {
		assert.GreaterOrEqual(t, s.StreakGamesRemaining, 0, id)
	}

	w2.Apply(fresh)
	for _, p := range fresh.Roster() {
		assert.Equal(t, w2.Variance[p.ID], fresh.WeeklyVariance[p.ID])
	}
}

func TestAdvanceWeekKeepsByeTeams(t *testing.T) {
	src := rng.NewSeededRNG(6)
	a, b := footballtest.NewTeam("a", 70), footballtest.NewTeam("b", 70)
	w1 := AdvanceWeek(Week{}, append(a.Roster(), b.Roster()...), src)

	// b is on a bye in week two
	w2 := AdvanceWeek(w1, footballtest.NewTeam("a", 70).Roster(), src)
	assert.Equal(t, 2, w2.Number)
	assert.Len(t, w2.Variance, len(w1.Variance))
	assert.Len(t, w2.Streaks, len(w1.Streaks))
	for _, p := range b.Roster() {
		assert.Equal(t, w1.Variance[p.ID], w2.Variance[p.ID], p.ID)
		assert.Equal(t, w1.Streaks[p.ID], w2.Streaks[p.ID], p.ID)
	}

	rested := footballtest.NewTeam("b", 70)
	w2.Apply(rested)
	for _, p := range rested.Roster() {
		assert.Equal(t, w1.Variance[p.ID], rested.WeeklyVariance[p.ID])
	}
}

func TestRunMonteCarlo(t *testing.T) {
	odds, err := RunMonteCarlo(context.Background(), teams, Matchup{Home: "strong", Away: "weak", Config: quick()}, 40, Week{}, Options{Seed: 11})
	require.NoError(t, err)
	assert.Equal(t, 40, odds.Trials)
	assert.Zero(t, odds.Failed)
	assert.InDelta(t, 1.0, odds.HomeWinRate+odds.AwayWinRate+odds.TieRate, 1e-9)
	assert.Greater(t, odds.HomeWinRate, odds.AwayWinRate)
	assert.Greater(t, odds.Margin.Mean, 0.0)
	for _, s := range []Stats{odds.HomeScore, odds.AwayScore, odds.Margin} {
		assert.LessOrEqual(t, s.P10, s.P50)
		assert.LessOrEqual(t, s.P50, s.P90)
		assert.InDelta(t, s.Var, s.StdDev*s.StdDev, 1e-9)
	}

	_, err = RunMonteCarlo(context.Background(), teams, Matchup{Home: "a", Away: "b"}, 0, Week{}, Options{})
	require.ErrorIs(t, err, ErrNoTrials)
}

func TestCalcStats(t *testing.T) {
	s := calcStats([]float64{3, 1, 2})
	assert.InDelta(t, 2.0, s.Mean, 1e-9)
	assert.InDelta(t, 1.0, s.Var, 1e-9)
	assert.Equal(t, 2.0, s.P50)

	one := calcStats([]float64{7})
	assert.Equal(t, Stats{Mean: 7, P10: 7, P50: 7, P90: 7}, one)
	assert.Equal(t, Stats{}, calcStats(nil))
}
