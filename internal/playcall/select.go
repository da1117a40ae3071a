package playcall

import (
	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/rng"
	"github.com/xtding233/gridiron-sim/internal/statdist"
)

const (
	// FieldGoalRange is the line of scrimmage from which a kick is at most
	// 54 yards.
	FieldGoalRange = 63
	kneelWindow    = 120
	lastSnapWindow = 8
)

// OffensiveCall is the offense's pre-snap decision.
type OffensiveCall struct {
	PlayType  football.PlayType
	Formation football.Formation
}

// DefensiveCall is the defense's answer to the offensive formation.
type DefensiveCall struct {
	PlayType football.DefensivePlayType
}

// SelectOffensivePlay chooses a play and formation.
func SelectOffensivePlay(t football.OffensiveTendencies, ctx Context, src rng.RandomSource) OffensiveCall {
	if src == nil {
		src = rng.DefaultRNG()
	}
	s := ctx.Situation
	adj := Adjust(t, ctx).(football.OffensiveTendencies)

	if ShouldKneel(s) {
		return OffensiveCall{PlayType: football.PlayKneel, Formation: football.FormationVictory}
	}
	if lastSnapFieldGoal(s) {
		return OffensiveCall{PlayType: football.PlayFieldGoal, Formation: football.FormationFieldGoal}
	}
	if s.Down >= 4 {
		if call, ok := fourthDown(adj, ctx, src); ok {
			return call
		}
	}

	if rng.Chance(adj.PassRate, src) {
		pt := passPlay(adj, src)
		return OffensiveCall{PlayType: pt, Formation: passFormation(pt, ctx, src)}
	}
	pt := runPlay(ctx, src)
	return OffensiveCall{PlayType: pt, Formation: runFormation(pt, ctx, src)}
}

// ShouldKneel reports a leading offense running out the fourth quarter.
func ShouldKneel(s football.Situation) bool {
	return s.Quarter == 4 && s.TimeRemaining <= kneelWindow && s.ScoreDifferential > 0 && s.Down < 4
}

// lastSnapFieldGoal kicks on any down when the half is about to expire and
// points are available.
func lastSnapFieldGoal(s football.Situation) bool {
	if s.TimeRemaining > lastSnapWindow || s.FieldPosition < FieldGoalRange {
		return false
	}
	switch {
	case s.Quarter == 2:
		return true
	case s.Quarter >= 4:
		// only when three points tie or win it
		return s.ScoreDifferential <= 0 && s.ScoreDifferential >= -3
	}
	return false
}

// fourthDown decides between going for it, kicking and punting. It reports
// false when the offense goes for it and a normal play should be drawn.
func fourthDown(o football.OffensiveTendencies, ctx Context, src rng.RandomSource) (OffensiveCall, bool) {
	s := ctx.Situation
	desperate := s.IsLateGame() && s.ScoreDifferential < 0 && s.TimeRemaining <= 300
	if desperate && (s.ScoreDifferential < -3 || s.FieldPosition < FieldGoalRange) {
		return OffensiveCall{}, false
	}
	if s.Distance <= 2 && s.FieldPosition >= 40 && rng.Chance(o.FourthDownAggressiveness, src) {
		return OffensiveCall{}, false
	}
	if s.FieldPosition >= FieldGoalRange {
		return OffensiveCall{PlayType: football.PlayFieldGoal, Formation: football.FormationFieldGoal}, true
	}
	return OffensiveCall{PlayType: football.PlayPunt, Formation: football.FormationPunt}, true
}

func passPlay(o football.OffensiveTendencies, src rng.RandomSource) football.PlayType {
	rest := clamp01(1 - o.PlayActionRate - o.DeepShotRate - o.ScreenRate)
	items := []football.PlayType{
		football.PlayPlayAction, football.PlayDeepPass, football.PlayScreenPass,
		football.PlayShortPass, football.PlayMediumPass,
	}
	weights := []float64{o.PlayActionRate, o.DeepShotRate, o.ScreenRate, rest * 0.55, rest * 0.45}
	pt, ok := statdist.WeightedRandomChoice(items, weights, src)
	if !ok {
		return football.PlayShortPass
	}
	return pt
}

func runPlay(ctx Context, src rng.RandomSource) football.PlayType {
	items := []football.PlayType{football.PlayInsideRun, football.PlayOutsideRun, football.PlayQBSneak}
	weights := []float64{0.55, 0.45, 0}
	if ctx.Situation.Distance <= 1 {
		weights[2] = 0.3
	}
	if ctx.Weather.Precipitation() {
		weights[1] *= 0.7
	}
	pt, _ := statdist.WeightedRandomChoice(items, weights, src)
	return pt
}

func passFormation(pt football.PlayType, ctx Context, src rng.RandomSource) football.Formation {
	switch {
	case pt == football.PlayPlayAction:
		if rng.Chance(0.5, src) {
			return football.FormationIForm
		}
		return football.FormationSingleback
	case ctx.thirdAndLong() && rng.Chance(0.25, src):
		return football.FormationEmpty
	case rng.Chance(0.75, src):
		return football.FormationShotgun
	}
	return football.FormationPistol
}

func runFormation(pt football.PlayType, ctx Context, src rng.RandomSource) football.Formation {
	s := ctx.Situation
	switch {
	case pt == football.PlayQBSneak || s.YardsToEndzone() <= 3:
		return football.FormationGoalLine
	case s.Distance <= 2:
		return football.FormationIForm
	}
	items := []football.Formation{football.FormationSingleback, football.FormationIForm, football.FormationPistol, football.FormationShotgun}
	f, _ := statdist.WeightedRandomChoice(items, []float64{0.4, 0.25, 0.15, 0.2}, src)
	return f
}

// SelectDefensivePlay answers the offensive formation.
func SelectDefensivePlay(t football.DefensiveTendencies, ctx Context, formation football.Formation, src rng.RandomSource) DefensiveCall {
	if src == nil {
		src = rng.DefaultRNG()
	}
	switch formation {
	case football.FormationPunt, football.FormationFieldGoal:
		return DefensiveCall{PlayType: football.DefenseSpecial}
	case football.FormationVictory:
		return DefensiveCall{PlayType: football.DefenseRunStop}
	}

	d := Adjust(t, ctx).(football.DefensiveTendencies)
	switch formation {
	case football.FormationGoalLine, football.FormationIForm:
		d.RunStopRate += 0.15
	case football.FormationEmpty, football.FormationShotgun:
		d.RunStopRate *= 0.5
		d.ManCoverageRate += 0.05
	}
	base := 1 - d.BlitzRate - d.ManCoverageRate - d.RunStopRate - d.PreventRate
	if base < 0.1 {
		base = 0.1
	}
	items := []football.DefensivePlayType{
		football.DefenseBlitz, football.DefenseManCoverage, football.DefenseRunStop,
		football.DefensePrevent, football.DefenseBaseZone,
	}
	weights := []float64{d.BlitzRate, d.ManCoverageRate, d.RunStopRate, d.PreventRate, base}
	pt, _ := statdist.WeightedRandomChoice(items, weights, src)
	return DefensiveCall{PlayType: pt}
}

// ConversionChoice picks the try after a touchdown. margin is the scoring
// team's lead once the six points are on the board.
func ConversionChoice(quarter, margin int) football.PlayType {
	if quarter >= 4 {
		switch margin {
		case -10, -5, -2, 1, 5:
			return football.PlayTwoPoint
		}
	}
	return football.PlayExtraPoint
}
