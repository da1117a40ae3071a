package resolve

import (
	"fmt"

	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/outcome"
	"github.com/xtding233/gridiron-sim/internal/rng"
	"github.com/xtding233/gridiron-sim/internal/statdist"
)

const (
	snapFatigue = 2.0
	// KickoffSpot is where New* points after a touchdown or field goal.
	KickoffSpot = 35
	// FreeKickSpot is where New* points after a safety.
	FreeKickSpot = 20
)

// credits are the players a description names.
type credits struct {
	passer  *football.Player
	carrier *football.Player // runner, receiver or returner
	tackler *football.Player
	assist  *football.Player
	flagged *football.Player
	hurt    *football.Player
	kicker  *football.Player
}

// ResolvePlay resolves one snap from scrimmage. Punts and field goals are
// passed on to ResolveSpecialTeamsPlay.
func ResolvePlay(off, def *football.TeamGameState, calls Calls, ctx Context, src rng.RandomSource) (football.PlayResult, error) {
	if src == nil {
		src = rng.DefaultRNG()
	}
	pt := calls.Offense.PlayType
	switch {
	case pt == football.PlayPunt, pt == football.PlayFieldGoal:
		return ResolveSpecialTeamsPlay(off, def, pt, ctx, src)
	case pt == football.PlayKneel:
		return resolveKneel(off, def, calls, ctx), nil
	case !pt.IsPass() && !pt.IsRun():
		return football.PlayResult{}, fmt.Errorf("%w: %s", ErrUnsupportedPlay, pt)
	}

	s := ctx.Situation
	o := lineupOffense(off)
	d := lineupDefense(def)
	offC, defC := newRater(ctx, src).composites(off, def, o, d, pt)
	offC += matchup(pt, calls.Defense.PlayType)

	tbl, err := outcome.GenerateOutcomeTable(offC, defC, pt, outcome.Situation{
		Down:           s.Down,
		YardsToGo:      s.Distance,
		YardsToEndzone: s.YardsToEndzone(),
	}, s.FieldPosition)
	if err != nil {
		return football.PlayResult{}, fmt.Errorf("resolve %s: %w", pt, err)
	}
	roll := outcome.RollOutcome(tbl, src)

	res := newResult(off, calls, s)
	res.Outcome = roll.Outcome
	res.YardsGained = roll.Yards
	res.ClockStopped = roll.Effects.ClockStopped
	if roll.Effects.OutOfBounds && !s.OutOfBoundsStopsClock() {
		res.ClockStopped = false
	}

	c := attribute(&res, off, def, o, d, pt, roll, s, src)
	applyTransition(&res, s, roll, off.TeamID, def.TeamID)
	played := res

	if isScrimmageResult(res) {
		postPlayPenalty(&res, s, pt, o, d, &c, src)
	}
	injury(&res, []participant{{off, c.carrier}, {off, c.passer}, {def, c.tackler}}, scrimmageInjuryRate, &c, src)

	off.RecordSnaps(o.onField(), snapFatigue)
	def.RecordSnaps(d.all(), snapFatigue)

	res.Description = describePlay(res, played, pt, c)
	return res, nil
}

func newResult(off *football.TeamGameState, calls Calls, s football.Situation) football.PlayResult {
	return football.PlayResult{
		Quarter:       s.Quarter,
		TimeRemaining: s.TimeRemaining,
		OffenseTeam:   off.TeamID,
		PlayType:      calls.Offense.PlayType,
		Formation:     calls.Offense.Formation,
		DefensiveCall: calls.Defense.PlayType,
	}
}

// attribute credits the play to players once yardage is settled.
func attribute(res *football.PlayResult, off, def *football.TeamGameState, o offenseUnit, d defenseUnit, pt football.PlayType, r outcome.Roll, s football.Situation, src rng.RandomSource) credits {
	var c credits
	switch r.Outcome {
	case football.OutcomePenaltyOffense:
		c.flagged = pickOne(o.line, src)
		return c
	case football.OutcomePenaltyDefense:
		c.flagged = pickOne(d.all(), src)
		return c
	}

	if pt.IsPass() {
		c.passer = o.qb
		if r.Outcome != football.OutcomeSack {
			c.carrier = statdist.SelectPassTarget(o.receivers, pt, s, off, src)
		}
	} else if pt == football.PlayQBSneak || len(o.backs) == 0 {
		c.carrier = o.qb
	} else {
		c.carrier = statdist.SelectRunningBack(o.backs, off, statdist.RotationContext{
			ShortYardage: s.Distance <= 2,
			TwoMinute:    s.IsTwoMinute(),
		}, src)
	}

	tc := statdist.TackleContext{PlayType: pt, Outcome: r.Outcome, Yards: r.Yards}
	switch r.Outcome {
	case football.OutcomeTouchdown, football.OutcomeIncomplete:
	case football.OutcomeInterception, football.OutcomeFumbleLost:
		// the defender who takes the ball away
		c.tackler = statdist.SelectPrimaryTackler(d.all(), statdist.TackleContext{PlayType: pt, Outcome: r.Outcome, Yards: 20}, def, src)
	default:
		c.tackler = statdist.SelectPrimaryTackler(d.all(), tc, def, src)
		if c.tackler != nil && r.Outcome != football.OutcomeSack && statdist.ShouldHaveAssistTackle(src) {
			c.assist = statdist.SelectAssistTackler(d.all(), c.tackler, tc, def, src)
		}
	}

	if pt.IsPass() {
		res.PrimaryOffensivePlayer = idOf(c.passer)
		res.TargetPlayer = idOf(c.carrier)
	} else {
		res.PrimaryOffensivePlayer = idOf(c.carrier)
	}
	res.PrimaryDefensivePlayer = idOf(c.tackler)
	res.AssistDefensivePlayer = idOf(c.assist)
	return c
}

func idOf(p *football.Player) football.PlayerID {
	if p == nil {
		return ""
	}
	return p.ID
}

func pickOne(ps []*football.Player, src rng.RandomSource) *football.Player {
	if len(ps) == 0 {
		return nil
	}
	return ps[rng.IntBetween(src, 0, len(ps)-1)]
}

// applyTransition sets down, distance and spot for whoever snaps next.
func applyTransition(res *football.PlayResult, s football.Situation, r outcome.Roll, offID, defID string) {
	f := s.FieldPosition
	switch r.Outcome {
	case football.OutcomePenaltyOffense:
		spot := clampSpot(f + r.Yards)
		yards := spot - f
		res.YardsGained = yards
		res.PenaltyOccurred = true
		res.ClockStopped = true
		p := &football.Penalty{Type: football.PenaltyFalseStart, AgainstOffense: true, Yards: yards}
		if -yards > 5 {
			p.Type = football.PenaltyHolding
		}
		res.Penalty = p
		setSnap(res, s.Down, s.Distance-yards, spot)
		return

	case football.OutcomePenaltyDefense:
		spot := clampSpot(f + r.Yards)
		yards := spot - f
		res.YardsGained = yards
		res.PenaltyOccurred = true
		res.ClockStopped = true
		p := &football.Penalty{Type: football.PenaltyOffside, Yards: yards}
		switch {
		case yards >= 15:
			p.Type = football.PenaltyPassInterference
			p.AutomaticFirstDown = true
		case yards > 5:
			p.Type = football.PenaltyDefensiveHolding
			p.AutomaticFirstDown = true
		}
		res.Penalty = p
		if p.AutomaticFirstDown || yards >= s.Distance {
			res.FirstDown = true
			firstDown(res, spot)
		} else {
			setSnap(res, s.Down, s.Distance-yards, spot)
		}
		return

	case football.OutcomeInterception, football.OutcomeFumbleLost:
		spot := f + r.Yards
		if spot < 0 {
			spot = 0
		}
		res.Turnover = true
		res.PossessionChanged = true
		res.ClockStopped = true
		defSpot := 100 - spot + r.Effects.ReturnYards
		if defSpot >= 100 {
			touchdown(res, defID)
			return
		}
		firstDown(res, clampSpot(defSpot))
		return
	}

	spot := f + r.Yards
	switch {
	case r.Outcome == football.OutcomeTouchdown || spot >= 100:
		res.Outcome = football.OutcomeTouchdown
		res.YardsGained = 100 - f
		touchdown(res, offID)
	case spot <= 0:
		res.YardsGained = -f
		safety(res, defID)
	case r.Yards >= s.Distance:
		res.FirstDown = true
		firstDown(res, spot)
	case s.Down >= 4:
		res.TurnoverOnDowns = true
		res.PossessionChanged = true
		res.ClockStopped = true
		firstDown(res, 100-spot)
	default:
		setSnap(res, s.Down+1, s.Distance-r.Yards, spot)
	}
}

func setSnap(res *football.PlayResult, down, distance, spot int) {
	if distance < 1 {
		distance = 1
	}
	if limit := 100 - spot; distance > limit {
		distance = limit
	}
	res.NewDown, res.NewDistance, res.NewFieldPosition = down, distance, spot
}

func firstDown(res *football.PlayResult, spot int) {
	setSnap(res, 1, 10, spot)
}

func touchdown(res *football.PlayResult, team string) {
	res.Touchdown = true
	res.ClockStopped = true
	res.PointsScored = 6
	res.ScoringTeam = team
	firstDown(res, KickoffSpot)
}

func safety(res *football.PlayResult, team string) {
	res.Safety = true
	res.ClockStopped = true
	res.PointsScored = 2
	res.ScoringTeam = team
	firstDown(res, FreeKickSpot)
}

func clampSpot(spot int) int {
	if spot < 1 {
		return 1
	}
	if spot > 99 {
		return 99
	}
	return spot
}

// isScrimmageResult reports a live-ball play that stayed with the offense
// or went over on downs; only these can draw a flag after the snap.
func isScrimmageResult(res football.PlayResult) bool {
	return !res.Touchdown && !res.Safety && !res.Turnover && !res.PenaltyOccurred
}

func resolveKneel(off, def *football.TeamGameState, calls Calls, ctx Context) football.PlayResult {
	s := ctx.Situation
	yards := -1
	if s.FieldPosition <= 1 {
		yards = 0
	}
	res := newResult(off, calls, s)
	roll := outcome.Roll{Outcome: football.OutcomeKneelDown, Yards: yards}
	res.Outcome = roll.Outcome
	res.YardsGained = yards
	qb := off.Starter(football.PosQB)
	res.PrimaryOffensivePlayer = idOf(qb)
	applyTransition(&res, s, roll, off.TeamID, def.TeamID)
	res.Description = describePlay(res, res, football.PlayKneel, credits{carrier: qb})
	return res
}
