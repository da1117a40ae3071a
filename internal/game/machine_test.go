package game

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/football/footballtest"
	"github.com/xtding233/gridiron-sim/internal/rng"
)

func newMachine(t *testing.T, seed uint64, cfg Config) *Machine {
	t.Helper()
	m, err := NewMachine(footballtest.NewTeam("home", 72), footballtest.NewTeam("away", 68), cfg, rng.NewSeededRNG(seed))
	require.NoError(t, err)
	return m
}

func TestNewMachineDefaults(t *testing.T) {
	m := newMachine(t, 1, Config{})
	st := m.State()

	_, err := uuid.Parse(st.GameID)
	require.NoError(t, err)
	assert.Equal(t, Clock{Quarter: 1, TimeRemaining: DefaultQuarterLength}, st.Clock)
	assert.Equal(t, Score{}, st.Score)
	assert.Equal(t, football.StakesRegular, st.Stakes)
	assert.Equal(t, football.WeatherClear, st.Weather.Condition)
	assert.True(t, st.NeedsKickoff)
	assert.Equal(t, football.Home, st.KickoffTeam)
	assert.Equal(t, Timeouts{Home: 3, Away: 3}, st.Timeouts)
	assert.False(t, m.IsGameOver())

	playoff := newMachine(t, 1, Config{Stakes: football.StakesChampionship})
	assert.True(t, playoff.State().Playoff)
}

func TestNewMachineFillsWeather(t *testing.T) {
	tests := []struct {
		name string
		in   football.Weather
		want football.Weather
	}{
		{"condition only", football.Weather{Condition: football.WeatherRain},
			football.Weather{Condition: football.WeatherRain, TemperatureF: football.DefaultTemperatureF}},
		{"temperature only", football.Weather{TemperatureF: 18, WindMPH: 9},
			football.Weather{Condition: football.WeatherClear, TemperatureF: 18, WindMPH: 9}},
		{"dome", football.Weather{Dome: true}, football.DomeWeather()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMachine(t, 1, Config{Weather: tt.in})
			assert.Equal(t, tt.want, m.State().Weather)
		})
	}
}

func TestNewMachineRejectsBadRosters(t *testing.T) {
	thin := footballtest.NewTeam("thin", 70)
	thin.DepthChart[football.PosOL] = thin.DepthChart[football.PosOL][:3]
	_, err := NewMachine(footballtest.NewTeam("home", 70), thin, Config{}, rng.NewSeededRNG(1))
	require.ErrorIs(t, err, football.ErrInvalidRoster)

	_, err = NewMachine(nil, footballtest.NewTeam("away", 70), Config{}, rng.NewSeededRNG(1))
	require.ErrorIs(t, err, football.ErrInvalidRoster)

	same := footballtest.NewTeam("same", 70)
	_, err = NewMachine(same, footballtest.NewTeam("same", 70), Config{}, rng.NewSeededRNG(1))
	require.ErrorIs(t, err, football.ErrInvalidRoster)
}

func TestOpeningKickoff(t *testing.T) {
	m := newMachine(t, 2, Config{})
	res, err := m.ExecutePlay()
	require.NoError(t, err)
	assert.Equal(t, football.PlayKickoff, res.PlayType)
	assert.Equal(t, "home", res.OffenseTeam)
	assert.Equal(t, 1, res.Sequence)
	if !res.Touchdown {
		assert.Equal(t, football.Away, m.State().Possession)
		assert.False(t, m.State().NeedsKickoff)
	}
}

func TestSimulateToEnd(t *testing.T) {
	tests := []struct {
		name       string
		home, away float64
	}{
		{"close", 72, 68},
		{"favorite at home", 75, 60},
		{"mismatch", 80, 55},
		{"underdog at home", 60, 75},
		{"elite pair", 90, 90},
	}
	const seeds = 25
	var points, snaps, games int
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(1); seed <= seeds; seed++ {
				m, err := NewMachine(footballtest.NewTeam("home", tt.home), footballtest.NewTeam("away", tt.away),
					Config{QuarterLength: 900}, rng.NewSeededRNG(seed))
				require.NoError(t, err)
				st, err := m.SimulateToEnd()
				require.NoError(t, err)

				assert.True(t, st.IsComplete)
				assert.False(t, st.InProgress)
				assert.True(t, m.IsGameOver())
				assert.NotEmpty(t, st.Plays)
				assert.GreaterOrEqual(t, st.Clock.Quarter, 4)
				for _, s := range []int{st.Score.Home, st.Score.Away} {
					assert.GreaterOrEqual(t, s, 0, "seed %d", seed)
					assert.Less(t, s, 100, "seed %d", seed)
				}

				scored := map[string]int{}
				for i, p := range st.Plays {
					assert.Equal(t, i+1, p.Sequence)
					scored[p.ScoringTeam] += p.PointsScored
					if p.PlayType.IsPass() || p.PlayType.IsRun() {
						snaps++
					}
					if p.Touchdown && p.Quarter <= 4 {
						require.Greater(t, len(st.Plays), i+1)
						next := st.Plays[i+1].PlayType
						assert.Contains(t, []football.PlayType{football.PlayExtraPoint, football.PlayTwoPoint}, next)
					}
				}
				assert.Equal(t, st.Score.Home, scored["home"], "seed %d", seed)
				assert.Equal(t, st.Score.Away, scored["away"], "seed %d", seed)
				points += st.Score.Home + st.Score.Away
				games++

				_, err = m.ExecutePlay()
				require.ErrorIs(t, err, ErrGameOver)
			}
		})
	}

	require.Positive(t, games)
	meanPoints := float64(points) / float64(games)
	meanSnaps := float64(snaps) / float64(games)
	assert.InDelta(t, 47, meanPoints, 27, "mean combined points")
	assert.InDelta(t, 135, meanSnaps, 35, "mean scrimmage snaps")
}

func TestStateNeverExposesHiddenFields(t *testing.T) {
	m := newMachine(t, 3, Config{})
	for i := 0; i < 40; i++ {
		_, err := m.ExecutePlay()
		require.NoError(t, err)
	}
	st := m.State()
	require.GreaterOrEqual(t, len(st.Plays), 20)

	raw, err := json.Marshal(st)
	require.NoError(t, err)
	lower := strings.ToLower(string(raw))
	for _, w := range []string{"probability", "effectiverating", "modifier", "outcometable", "variance"} {
		assert.NotContains(t, lower, w)
	}
}

func TestCallTimeout(t *testing.T) {
	m := newMachine(t, 4, Config{})
	assert.True(t, m.CallTimeout(football.Home))
	assert.Equal(t, 2, m.State().Timeouts.Home)
	assert.Equal(t, 3, m.State().Timeouts.Away)

	assert.True(t, m.CallTimeout(football.Home))
	assert.True(t, m.CallTimeout(football.Home))
	before := m.State()
	assert.False(t, m.CallTimeout(football.Home))
	assert.Equal(t, before, m.State())
	assert.False(t, m.CallTimeout(football.Side("visitors")))
}

func TestHalftimeResetsTimeoutsAndFlipsKickoff(t *testing.T) {
	m := newMachine(t, 5, Config{QuarterLength: 300})
	require.NoError(t, m.SimulateQuarter())
	assert.Equal(t, 2, m.State().Clock.Quarter)
	require.NoError(t, m.SimulateQuarter())

	st := m.State()
	assert.Equal(t, Clock{Quarter: 3, TimeRemaining: 300}, st.Clock)
	assert.Equal(t, Timeouts{Home: 3, Away: 3}, st.Timeouts)
	assert.True(t, st.NeedsKickoff)
	assert.Equal(t, football.Away, st.KickoffTeam)
}

func TestDriveFromTheFive(t *testing.T) {
	touchdowns := 0
	for seed := uint64(1); seed <= 100; seed++ {
		m := newMachine(t, seed, Config{})
		require.NoError(t, m.PlaceBall(football.Home, 95, 1, 5))
		d, err := m.SimulateDrive()
		require.NoError(t, err)
		assert.Equal(t, "home", d.Team)
		assert.Equal(t, 95, d.StartFieldPosition)
		assert.NotEmpty(t, d.Plays)
		if d.Result == DriveTouchdown {
			touchdowns++
		}
	}
	assert.Greater(t, touchdowns, 0)
}

func TestDriveStartsWithKickoff(t *testing.T) {
	m := newMachine(t, 6, Config{})
	d, err := m.SimulateDrive()
	require.NoError(t, err)
	assert.Equal(t, "away", d.Team)
	assert.True(t, isKick(d.Plays[0].PlayType))
	assert.NotEmpty(t, d.Result)
}

func TestPlaceBallValidates(t *testing.T) {
	m := newMachine(t, 7, Config{})
	require.ErrorIs(t, m.PlaceBall(football.Home, 0, 1, 10), ErrInvalidPlacement)
	require.ErrorIs(t, m.PlaceBall(football.Home, 95, 1, 10), ErrInvalidPlacement)
	require.ErrorIs(t, m.PlaceBall(football.Home, 50, 5, 10), ErrInvalidPlacement)
	require.NoError(t, m.PlaceBall(football.Away, 40, 3, 7))

	s := m.CurrentContext()
	assert.Equal(t, football.Situation{Down: 3, Distance: 7, FieldPosition: 40, Quarter: 1, TimeRemaining: DefaultQuarterLength}, s)
}

func TestSameSeedSameGame(t *testing.T) {
	a, err := newMachine(t, 42, Config{GameID: "g"}).SimulateToEnd()
	require.NoError(t, err)
	b, err := newMachine(t, 42, Config{GameID: "g"}).SimulateToEnd()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPlayLimit(t *testing.T) {
	m := newMachine(t, 8, Config{MaxPlays: 5})
	_, err := m.SimulateToEnd()
	require.ErrorIs(t, err, ErrSimulationBound)
}

func TestOvertime(t *testing.T) {
	for _, playoff := range []bool{false, true} {
		for seed := uint64(1); seed <= 5; seed++ {
			m := newMachine(t, seed, Config{Playoff: playoff, QuarterLength: 600})
			m.st.Clock = Clock{Quarter: 4, TimeRemaining: 1}
			m.st.Score = Score{Home: 10, Away: 10}
			require.NoError(t, m.PlaceBall(football.Home, 20, 4, 25))

			st, err := m.SimulateToEnd()
			require.NoError(t, err)
			assert.True(t, st.IsComplete)
			if st.Clock.Quarter > 4 && st.Score.Home != st.Score.Away {
				last := st.Plays[len(st.Plays)-1]
				assert.Positive(t, last.PointsScored, "overtime ends on the first score")
			}
			if playoff {
				assert.NotEmpty(t, st.Winner())
			}
		}
	}
}
