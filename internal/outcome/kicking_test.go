package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/gridiron-sim/internal/football"
)

func TestFieldGoalTable(t *testing.T) {
	short, err := GenerateFieldGoalTable(80, 25, 0)
	require.NoError(t, err)
	assert.Greater(t, short.Probability(football.OutcomeFieldGoalMade), 0.9)
	assert.InDelta(t, 1.0, sumOf(short), Tolerance)

	long, err := GenerateFieldGoalTable(80, 55, 0)
	require.NoError(t, err)
	assert.Less(t, long.Probability(football.OutcomeFieldGoalMade), 0.7)
	assert.InDelta(t, 1.0, sumOf(long), Tolerance)
}

func TestFieldGoalShape(t *testing.T) {
	made := func(rating, dist, wind float64) float64 {
		tbl, err := GenerateFieldGoalTable(rating, dist, wind)
		require.NoError(t, err)
		return tbl.Probability(football.OutcomeFieldGoalMade)
	}
	assert.Greater(t, made(80, 40, 0), made(80, 50, 0), "longer kicks miss more")
	assert.Greater(t, made(90, 50, 0), made(60, 50, 0), "better kickers make more")
	assert.Greater(t, made(80, 50, 0), made(80, 50, 25), "wind hurts")
	assert.Greater(t, made(1, 80, 40), 0.0)
}

func TestFieldGoalDistance(t *testing.T) {
	assert.Equal(t, 25, FieldGoalDistance(92))
	assert.Equal(t, 55, FieldGoalDistance(62))
}

func TestPuntTable(t *testing.T) {
	deep, err := GeneratePuntTable(60, 20)
	require.NoError(t, err)
	near, err := GeneratePuntTable(60, 60)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sumOf(deep), Tolerance)
	assert.InDelta(t, 1.0, sumOf(near), Tolerance)
	assert.Greater(t, near.Probability(football.OutcomeTouchback), deep.Probability(football.OutcomeTouchback))
}

func TestKickoffTable(t *testing.T) {
	weak, err := GenerateKickoffTable(30)
	require.NoError(t, err)
	strong, err := GenerateKickoffTable(95)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sumOf(weak), Tolerance)
	assert.Greater(t, strong.Probability(football.OutcomeTouchback), weak.Probability(football.OutcomeTouchback))
	for _, e := range strong {
		if e.Outcome == football.OutcomeTouchback {
			assert.Equal(t, YardRange{KickoffTouchbackSpot, KickoffTouchbackSpot}, e.Yards)
		}
	}
}
