package football_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/football/footballtest"
)

func TestValidateAcceptsFullRoster(t *testing.T) {
	require.NoError(t, footballtest.NewTeam("sea", 70).Validate())
}

func TestValidateRejectsMissingPersonnel(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*football.TeamGameState)
		want   string
	}{
		{"no quarterback", func(t *football.TeamGameState) { delete(t.DepthChart, football.PosQB) }, "QB"},
		{"short line", func(t *football.TeamGameState) { t.DepthChart[football.PosOL] = t.DepthChart[football.PosOL][:4] }, "5 OL"},
		{"thin defense", func(t *football.TeamGameState) { delete(t.DepthChart, football.PosLB) }, "11 defenders"},
		{"no kicker", func(t *football.TeamGameState) { delete(t.DepthChart, football.PosK) }, "kicker"},
		{"no punter", func(t *football.TeamGameState) { delete(t.DepthChart, football.PosP) }, "punter"},
		{"duplicate", func(t *football.TeamGameState) {
			t.DepthChart[football.PosRB] = append(t.DepthChart[football.PosRB], t.DepthChart[football.PosWR][0])
		}, "listed twice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := footballtest.NewTeam("den", 70)
			tt.mutate(team)
			err := team.Validate()
			require.ErrorIs(t, err, football.ErrInvalidRoster)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStartersSkipOutPlayers(t *testing.T) {
	team := footballtest.NewTeam("kc", 70)
	qb1 := team.DepthChart[football.PosQB][0]
	qb2 := team.DepthChart[football.PosQB][1]

	team.SetInjury(qb1.ID, football.Out)
	assert.Equal(t, qb2.ID, team.Starter(football.PosQB).ID)

	team.SetInjury(qb2.ID, football.Out)
	got := team.Starters(football.PosQB, 1)
	require.Len(t, got, 1, "an injured player still fills the slot when nobody else is left")
}

func TestSetInjuryNeverDowngrades(t *testing.T) {
	team := footballtest.NewTeam("gb", 70)
	id := team.DepthChart[football.PosRB][0].ID
	team.SetInjury(id, football.Doubtful)
	team.SetInjury(id, football.Questionable)
	assert.Equal(t, football.Doubtful, team.Injuries[id])
}

func TestRecordSnapsAndRecover(t *testing.T) {
	team := footballtest.NewTeam("min", 70)
	rb := team.DepthChart[football.PosRB][0]
	for i := 0; i < 80; i++ {
		team.RecordSnaps([]*football.Player{rb}, 2)
	}
	assert.Equal(t, 80, team.SnapCounts[rb.ID])
	assert.Equal(t, 100.0, team.Fatigue[rb.ID])

	team.Recover(30)
	assert.Equal(t, 70.0, team.Fatigue[rb.ID])
	team.Recover(500)
	assert.Zero(t, team.Fatigue[rb.ID])
}

func TestShortName(t *testing.T) {
	p := &football.Player{ID: "x", Name: "Jordan Love"}
	assert.Equal(t, "J. Love", p.ShortName())
	assert.Equal(t, "x", (&football.Player{ID: "x"}).ShortName())
}
