package resolve

import (
	"fmt"
	"math"

	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/outcome"
	"github.com/xtding233/gridiron-sim/internal/rng"
	"github.com/xtding233/gridiron-sim/internal/statdist"
)

const (
	// ExtraPointDistance is the kick length of a point after touchdown.
	ExtraPointDistance = 33
	twoPointBase       = 0.47
	missedKickSpot     = 20
	holdDepth          = 7
	freeKickShift      = 10
)

// ResolveSpecialTeamsPlay resolves a field goal, punt, kickoff or free kick.
// kicking is the team putting its foot on the ball; PossessionChanged
// reports whether receiving has it afterwards.
func ResolveSpecialTeamsPlay(kicking, receiving *football.TeamGameState, kind football.PlayType, ctx Context, src rng.RandomSource) (football.PlayResult, error) {
	if src == nil {
		src = rng.DefaultRNG()
	}
	switch kind {
	case football.PlayFieldGoal:
		return resolveFieldGoal(kicking, receiving, ctx, src)
	case football.PlayPunt:
		return resolvePunt(kicking, receiving, ctx, src)
	case football.PlayKickoff, football.PlayFreeKick:
		return resolveKickoff(kicking, receiving, kind, ctx, src)
	}
	return football.PlayResult{}, fmt.Errorf("%w: %s", ErrUnsupportedPlay, kind)
}

func kickResult(kicking *football.TeamGameState, kind football.PlayType, f football.Formation, s football.Situation) football.PlayResult {
	return football.PlayResult{
		Quarter:       s.Quarter,
		TimeRemaining: s.TimeRemaining,
		OffenseTeam:   kicking.TeamID,
		PlayType:      kind,
		Formation:     f,
		DefensiveCall: football.DefenseSpecial,
		ClockStopped:  true,
	}
}

func kickerRating(r rater, t *football.TeamGameState, k *football.Player, distance int) float64 {
	acc := r.player(t, k, football.SkillKickAccuracy)
	if distance <= 45 {
		return acc
	}
	return blend(weighted{acc, 0.6}, weighted{r.player(t, k, football.SkillKickPower), 0.4})
}

func resolveFieldGoal(kicking, receiving *football.TeamGameState, ctx Context, src rng.RandomSource) (football.PlayResult, error) {
	s := ctx.Situation
	k := kicking.Starter(football.PosK)
	dist := outcome.FieldGoalDistance(s.FieldPosition)
	tbl, err := outcome.GenerateFieldGoalTable(kickerRating(newRater(ctx, src), kicking, k, dist), float64(dist), ctx.Weather.EffectiveWind())
	if err != nil {
		return football.PlayResult{}, fmt.Errorf("resolve field goal: %w", err)
	}
	roll := outcome.RollOutcome(tbl, src)

	res := kickResult(kicking, football.PlayFieldGoal, football.FormationFieldGoal, s)
	res.Outcome = roll.Outcome
	res.PrimaryOffensivePlayer = idOf(k)
	c := credits{kicker: k}
	if roll.Outcome == football.OutcomeFieldGoalMade {
		res.PointsScored = 3
		res.ScoringTeam = kicking.TeamID
		firstDown(&res, KickoffSpot)
	} else {
		res.PossessionChanged = true
		firstDown(&res, clampSpot(max(missedKickSpot, 100-(s.FieldPosition-holdDepth))))
	}
	injury(&res, []participant{{kicking, k}}, specialTeamsInjuryRate, &c, src)
	kicking.RecordSnaps([]*football.Player{k}, snapFatigue)
	res.Description = describeKick(res, c, dist, 0)
	return res, nil
}

func resolvePunt(kicking, receiving *football.TeamGameState, ctx Context, src rng.RandomSource) (football.PlayResult, error) {
	s := ctx.Situation
	f := s.FieldPosition
	p := kicking.Starter(football.PosP)
	r := newRater(ctx, src)
	pr := r.player(kicking, p, football.SkillPunting)
	tbl, err := outcome.GeneratePuntTable(pr, f)
	if err != nil {
		return football.PlayResult{}, fmt.Errorf("resolve punt: %w", err)
	}
	roll := outcome.RollOutcome(tbl, src)

	res := kickResult(kicking, football.PlayPunt, football.FormationPunt, s)
	res.Outcome = roll.Outcome
	res.PrimaryOffensivePlayer = idOf(p)
	res.PossessionChanged = true
	c := credits{kicker: p}

	gross := int(math.Round(rng.Between(src, 28, 44) + (pr-50)*0.2 - ctx.Weather.EffectiveWind()*0.1))
	gross = max(gross, 15)
	landing := f + gross
	ret := 0

	switch roll.Outcome {
	case football.OutcomeBlocked:
		spot := f - rng.IntBetween(src, 5, 10)
		res.YardsGained = spot - f
		if spot <= 0 {
			touchdown(&res, receiving.TeamID)
		} else {
			firstDown(&res, 100-spot)
		}
	case football.OutcomeTouchback:
		res.YardsGained = 100 - f - outcome.PuntTouchbackSpot
		firstDown(&res, outcome.PuntTouchbackSpot)
	case football.OutcomeFairCatch, football.OutcomeOutOfBounds:
		if landing >= 100 {
			res.Outcome = football.OutcomeTouchback
			res.YardsGained = 100 - f - outcome.PuntTouchbackSpot
			firstDown(&res, outcome.PuntTouchbackSpot)
			break
		}
		res.YardsGained = gross
		firstDown(&res, 100-landing)
		if roll.Outcome == football.OutcomeFairCatch {
			c.carrier = returner(receiving)
		}
	default:
		// returns: the ball is fielded short of the goal line
		if landing >= 100 {
			landing = 100 - rng.IntBetween(src, 1, 6)
		}
		c.carrier = returner(receiving)
		catch := 100 - landing
		gross = landing - f
		ret = roll.Yards
		res.YardsGained = gross - ret
		if roll.Outcome == football.OutcomeReturnTouchdown || catch+ret >= 100 {
			res.Outcome = football.OutcomeReturnTouchdown
			res.YardsGained = gross
			ret = 100 - catch
			touchdown(&res, receiving.TeamID)
			break
		}
		firstDown(&res, clampSpot(catch+roll.Yards))
		c.tackler = statdist.SelectPrimaryTackler(coverageUnit(kicking), statdist.TackleContext{
			PlayType: football.PlayPunt, Outcome: roll.Outcome, Yards: roll.Yards,
		}, kicking, src)
		res.PrimaryDefensivePlayer = idOf(c.tackler)
	}
	res.TargetPlayer = idOf(c.carrier)

	injury(&res, []participant{{receiving, c.carrier}, {kicking, c.tackler}}, specialTeamsInjuryRate, &c, src)
	kicking.RecordSnaps(append([]*football.Player{p}, coverageUnit(kicking)...), snapFatigue)
	if c.carrier != nil {
		receiving.RecordSnaps([]*football.Player{c.carrier}, snapFatigue)
	}
	res.Description = describeKick(res, c, gross, ret)
	return res, nil
}

func resolveKickoff(kicking, receiving *football.TeamGameState, kind football.PlayType, ctx Context, src rng.RandomSource) (football.PlayResult, error) {
	s := ctx.Situation
	k := kicking.Starter(football.PosK)
	power := newRater(ctx, src).player(kicking, k, football.SkillKickPower)
	tbl, err := outcome.GenerateKickoffTable(power)
	if err != nil {
		return football.PlayResult{}, fmt.Errorf("resolve %s: %w", kind, err)
	}
	roll := outcome.RollOutcome(tbl, src)

	res := kickResult(kicking, kind, "", s)
	res.Outcome = roll.Outcome
	res.PrimaryOffensivePlayer = idOf(k)
	res.PossessionChanged = true
	c := credits{kicker: k}

	switch roll.Outcome {
	case football.OutcomeTouchback, football.OutcomeOutOfBounds:
		firstDown(&res, roll.Yards)
	default:
		c.carrier = returner(receiving)
		catch := rng.IntBetween(src, 0, 8)
		if kind == football.PlayFreeKick {
			catch += freeKickShift
		}
		if roll.Outcome == football.OutcomeReturnTouchdown {
			res.YardsGained = 100 - catch
			touchdown(&res, receiving.TeamID)
			break
		}
		spot := roll.Yards
		if kind == football.PlayFreeKick {
			spot += freeKickShift
		}
		spot = clampSpot(max(spot, catch+1))
		res.YardsGained = spot - catch
		firstDown(&res, spot)
		c.tackler = statdist.SelectPrimaryTackler(coverageUnit(kicking), statdist.TackleContext{
			PlayType: kind, Outcome: roll.Outcome, Yards: res.YardsGained,
		}, kicking, src)
		res.PrimaryDefensivePlayer = idOf(c.tackler)
	}
	res.TargetPlayer = idOf(c.carrier)

	injury(&res, []participant{{receiving, c.carrier}, {kicking, c.tackler}}, specialTeamsInjuryRate, &c, src)
	kicking.RecordSnaps(append([]*football.Player{k}, coverageUnit(kicking)...), snapFatigue)
	if c.carrier != nil {
		receiving.RecordSnaps([]*football.Player{c.carrier}, snapFatigue)
	}
	res.Description = describeKick(res, c, 0, res.YardsGained)
	return res, nil
}

// ResolveConversion resolves the try after a touchdown: an extra point
// kicked from 33 yards, or a two-point play from the 2.
func ResolveConversion(off, def *football.TeamGameState, kind football.PlayType, ctx Context, src rng.RandomSource) (football.PlayResult, error) {
	if src == nil {
		src = rng.DefaultRNG()
	}
	s := ctx.Situation
	r := newRater(ctx, src)
	var (
		good   bool
		points int
		c      credits
		res    football.PlayResult
	)
	switch kind {
	case football.PlayExtraPoint:
		k := off.Starter(football.PosK)
		tbl, err := outcome.GenerateFieldGoalTable(kickerRating(r, off, k, ExtraPointDistance), ExtraPointDistance, ctx.Weather.EffectiveWind())
		if err != nil {
			return football.PlayResult{}, fmt.Errorf("resolve extra point: %w", err)
		}
		good = outcome.RollOutcome(tbl, src).Outcome == football.OutcomeFieldGoalMade
		points = 1
		res = kickResult(off, kind, football.FormationFieldGoal, s)
		res.PrimaryOffensivePlayer = idOf(k)
		c.kicker = k
	case football.PlayTwoPoint:
		o := lineupOffense(off)
		d := lineupDefense(def)
		offC, defC := r.composites(off, def, o, d, football.PlayShortPass)
		p := math.Max(0.2, math.Min(0.75, twoPointBase+(offC-defC)/200))
		good = rng.Chance(p, src)
		points = 2
		res = kickResult(off, kind, football.FormationShotgun, s)
		res.DefensiveCall = football.DefenseManCoverage
		c.passer = o.qb
		c.carrier = statdist.SelectPassTarget(o.receivers, football.PlayShortPass, football.Situation{Down: 1, Distance: 2, FieldPosition: 98}, off, src)
		res.PrimaryOffensivePlayer = idOf(c.passer)
		res.TargetPlayer = idOf(c.carrier)
	default:
		return football.PlayResult{}, fmt.Errorf("%w: %s", ErrUnsupportedPlay, kind)
	}

	res.Outcome = football.OutcomeConversionFailed
	if good {
		res.Outcome = football.OutcomeConversionGood
		res.PointsScored = points
		res.ScoringTeam = off.TeamID
	}
	firstDown(&res, KickoffSpot)
	res.Description = describeConversion(res, kind, c)
	return res, nil
}
