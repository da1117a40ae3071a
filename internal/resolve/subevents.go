package resolve

import (
	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/outcome"
	"github.com/xtding233/gridiron-sim/internal/rng"
	"github.com/xtding233/gridiron-sim/internal/statdist"
)

const (
	postPlayPenaltyRate    = 0.05
	scrimmageInjuryRate    = 0.006
	specialTeamsInjuryRate = 0.008
	holdingYards           = 10
	defensiveHoldingYards  = 5
	passInterferenceYards  = 15
)

var injurySeverities = []football.InjuryStatus{football.Questionable, football.Doubtful, football.Out}
var injuryShares = []float64{0.55, 0.25, 0.20}

// halfDistance caps a penalty at half the distance to the goal line.
func halfDistance(yards, toGoal int) int {
	return min(yards, toGoal/2)
}

// postPlayPenalty may flag a live-ball foul. Holding wipes out a gain and
// replays the down from the previous spot; defensive holding and pass
// interference only matter when the offense did not gain and give an
// automatic first down.
func postPlayPenalty(res *football.PlayResult, s football.Situation, pt football.PlayType, o offenseUnit, d defenseUnit, c *credits, src rng.RandomSource) {
	if !rng.Chance(postPlayPenaltyRate, src) {
		return
	}
	f := s.FieldPosition
	switch {
	case outcome.IsPositiveOutcome(res.Outcome) && res.YardsGained > 0:
		yards := halfDistance(holdingYards, f)
		if yards == 0 {
			return
		}
		res.Outcome = football.OutcomePenaltyOffense
		res.YardsGained = -yards
		res.FirstDown = false
		res.TurnoverOnDowns = false
		res.PossessionChanged = false
		res.PenaltyOccurred = true
		res.ClockStopped = true
		res.Penalty = &football.Penalty{Type: football.PenaltyHolding, AgainstOffense: true, Yards: -yards}
		setSnap(res, s.Down, s.Distance+yards, f-yards)
		c.flagged = pickOne(o.line, src)

	case pt.IsPass() && (res.Outcome == football.OutcomeIncomplete || res.YardsGained <= 0):
		want, kind := defensiveHoldingYards, football.PenaltyDefensiveHolding
		if res.Outcome == football.OutcomeIncomplete && pt != football.PlayScreenPass && pt != football.PlayShortPass {
			want, kind = passInterferenceYards, football.PenaltyPassInterference
		}
		yards := halfDistance(want, 100-f)
		if yards == 0 {
			return
		}
		res.Outcome = football.OutcomePenaltyDefense
		res.YardsGained = yards
		res.TurnoverOnDowns = false
		res.PossessionChanged = false
		res.FirstDown = true
		res.PenaltyOccurred = true
		res.ClockStopped = true
		res.Penalty = &football.Penalty{Type: kind, Yards: yards, AutomaticFirstDown: true}
		firstDown(res, f+yards)
		c.flagged = pickOne(d.secondary, src)
	}
}

type participant struct {
	team   *football.TeamGameState
	player *football.Player
}

// injury may sideline one participant for the rest of the game. The
// player record itself is never touched.
func injury(res *football.PlayResult, ps []participant, rate float64, c *credits, src rng.RandomSource) {
	if !rng.Chance(rate, src) {
		return
	}
	var live []participant
	for _, p := range ps {
		if p.player != nil && p.team != nil {
			live = append(live, p)
		}
	}
	if len(live) == 0 {
		return
	}
	hurt := live[rng.IntBetween(src, 0, len(live)-1)]
	severity, _ := statdist.WeightedRandomChoice(injurySeverities, injuryShares, src)
	hurt.team.SetInjury(hurt.player.ID, severity)
	res.InjuryOccurred = true
	res.ClockStopped = true
	res.Injury = &football.Injury{PlayerID: hurt.player.ID, Severity: severity}
	c.hurt = hurt.player
}
