package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/football/footballtest"
	"github.com/xtding233/gridiron-sim/internal/rng"
)

func TestFieldGoals(t *testing.T) {
	src := rng.NewSeededRNG(21)
	kick, recv := footballtest.NewTeam("k", 85), footballtest.NewTeam("r", 60)
	made := 0
	const n = 400
	for i := 0; i < n; i++ {
		res, err := ResolveSpecialTeamsPlay(kick, recv, football.PlayFieldGoal, ctxAt(4, 5, 90), src)
		require.NoError(t, err)
		assertValidNextSnap(t, res)
		if res.Outcome == football.OutcomeFieldGoalMade {
			made++
			assert.Equal(t, 3, res.PointsScored)
			assert.False(t, res.PossessionChanged)
		} else {
			assert.True(t, res.PossessionChanged)
			assert.GreaterOrEqual(t, res.NewFieldPosition, missedKickSpot)
		}
	}
	assert.Greater(t, made, n*8/10)
}

func TestPunts(t *testing.T) {
	src := rng.NewSeededRNG(22)
	kick, recv := footballtest.NewTeam("k", 70), footballtest.NewTeam("r", 70)
	net := 0
	const n = 500
	for i := 0; i < n; i++ {
		res, err := ResolveSpecialTeamsPlay(kick, recv, football.PlayPunt, ctxAt(4, 8, 25+i%30), src)
		require.NoError(t, err)
		assertValidNextSnap(t, res)
		assert.True(t, res.PossessionChanged)
		if res.Touchdown {
			assert.Equal(t, recv.TeamID, res.ScoringTeam)
		}
		net += res.YardsGained
	}
	avg := float64(net) / n
	assert.Greater(t, avg, 25.0)
	assert.Less(t, avg, 50.0)
}

func TestKickoffs(t *testing.T) {
	src := rng.NewSeededRNG(23)
	kick, recv := footballtest.NewTeam("k", 70), footballtest.NewTeam("r", 70)
	for _, kind := range []football.PlayType{football.PlayKickoff, football.PlayFreeKick} {
		for i := 0; i < 300; i++ {
			res, err := ResolveSpecialTeamsPlay(kick, recv, kind, ctxAt(1, 10, KickoffSpot), src)
			require.NoError(t, err)
			assertValidNextSnap(t, res)
			assert.True(t, res.PossessionChanged)
			if res.Outcome == football.OutcomeTouchback {
				assert.Equal(t, 25, res.NewFieldPosition)
			}
		}
	}
	_, err := ResolveSpecialTeamsPlay(kick, recv, football.PlayInsideRun, ctxAt(1, 10, 30), src)
	require.ErrorIs(t, err, ErrUnsupportedPlay)
}

func TestConversions(t *testing.T) {
	src := rng.NewSeededRNG(24)
	off, def := footballtest.NewTeam("o", 70), footballtest.NewTeam("d", 70)
	good := map[football.PlayType]int{}
	const n = 2000
	for _, kind := range []football.PlayType{football.PlayExtraPoint, football.PlayTwoPoint} {
		for i := 0; i < n; i++ {
			res, err := ResolveConversion(off, def, kind, ctxAt(1, 10, 98), src)
			require.NoError(t, err)
			assertValidNextSnap(t, res)
			if res.Outcome == football.OutcomeConversionGood {
				good[kind]++
				assert.Equal(t, off.TeamID, res.ScoringTeam)
			} else {
				assert.Zero(t, res.PointsScored)
			}
		}
	}
	assert.Greater(t, float64(good[football.PlayExtraPoint])/n, 0.85)
	assert.InDelta(t, 0.47, float64(good[football.PlayTwoPoint])/n, 0.08)

	_, err := ResolveConversion(off, def, football.PlayPunt, ctxAt(1, 10, 98), src)
	require.ErrorIs(t, err, ErrUnsupportedPlay)
}
