// Package footballtest builds complete, valid team game states for tests.
package footballtest

import (
	"fmt"

	"github.com/xtding233/gridiron-sim/internal/football"
)

var depth = []struct {
	pos    football.Position
	count  int
	skills []football.Skill
}{
	{football.PosQB, 2, []football.Skill{football.SkillPassing, football.SkillRushing}},
	{football.PosRB, 3, []football.Skill{football.SkillRushing, football.SkillReceiving}},
	{football.PosWR, 4, []football.Skill{football.SkillReceiving, football.SkillRushing}},
	{football.PosTE, 2, []football.Skill{football.SkillReceiving, football.SkillRunBlocking, football.SkillPassBlocking}},
	{football.PosOL, 6, []football.Skill{football.SkillPassBlocking, football.SkillRunBlocking}},
	{football.PosDL, 5, []football.Skill{football.SkillPassRush, football.SkillRunDefense, football.SkillTackling}},
	{football.PosLB, 4, []football.Skill{football.SkillRunDefense, football.SkillTackling, football.SkillCoverage, football.SkillPassRush}},
	{football.PosCB, 3, []football.Skill{football.SkillCoverage, football.SkillTackling}},
	{football.PosS, 3, []football.Skill{football.SkillCoverage, football.SkillTackling, football.SkillRunDefense}},
	{football.PosK, 1, []football.Skill{football.SkillKickPower, football.SkillKickAccuracy}},
	{football.PosP, 1, []football.Skill{football.SkillPunting, football.SkillKickPower}},
}

// NewTeam returns a valid team whose starters have every skill at quality
// and whose backups sit a few points lower.
func NewTeam(id string, quality float64) *football.TeamGameState {
	t := football.NewTeamGameState(id, "Team "+id)
	t.OffensiveScheme = "west_coast"
	t.DefensiveScheme = "cover_3"
	for _, d := range depth {
		for i := 0; i < d.count; i++ {
			skills := make(map[football.Skill]float64, len(d.skills))
			for _, s := range d.skills {
				skills[s] = clamp(quality - float64(i)*6)
			}
			t.AddPlayer(&football.Player{
				ID:          football.PlayerID(fmt.Sprintf("%s-%s%d", id, d.pos, i+1)),
				Name:        fmt.Sprintf("Player %s%d", d.pos, i+1),
				Position:    d.pos,
				Skills:      skills,
				ItFactor:    50,
				Consistency: &football.ConsistencyProfile{Tier: football.TierAverage, CurrentStreak: football.StreakNeutral},
				Injury:      football.Healthy,
			})
		}
	}
	return t
}

// Player returns a standalone healthy player with every listed skill at v.
func Player(id string, pos football.Position, v float64, skills ...football.Skill) *football.Player {
	m := make(map[football.Skill]float64, len(skills))
	for _, s := range skills {
		m[s] = v
	}
	return &football.Player{
		ID:          football.PlayerID(id),
		Name:        "Test " + id,
		Position:    pos,
		Skills:      m,
		ItFactor:    50,
		Consistency: &football.ConsistencyProfile{Tier: football.TierAverage, CurrentStreak: football.StreakNeutral},
		Injury:      football.Healthy,
	}
}

func clamp(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 100 {
		return 100
	}
	return v
}
