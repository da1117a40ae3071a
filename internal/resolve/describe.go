package resolve

import (
	"fmt"
	"strings"

	"github.com/xtding233/gridiron-sim/internal/football"
)

func name(p *football.Player) string { return p.ShortName() }

func yards(n int) string {
	if n == 1 || n == -1 {
		return "1 yard"
	}
	if n < 0 {
		n = -n
	}
	return fmt.Sprintf("%d yards", n)
}

// yardLine names a spot from the point of view of the team holding it.
func yardLine(spot int) string {
	switch {
	case spot < 50:
		return fmt.Sprintf("their own %d", spot)
	case spot == 50:
		return "midfield"
	}
	return fmt.Sprintf("the opposing %d", 100-spot)
}

// describePlay narrates a scrimmage snap. played is the result before any
// flag thrown after the snap; res is the final result.
func describePlay(res, played football.PlayResult, pt football.PlayType, c credits) string {
	parts := []string{playText(played, pt, c)}
	if tackleApplies(played) {
		parts = append(parts, tackleText(c))
	}
	switch {
	case res.Penalty != nil && played.Penalty == nil:
		parts = append(parts, penaltyText(res.Penalty, c.flagged))
		if res.Penalty.AgainstOffense {
			parts = append(parts, "The play comes back.")
		}
	case played.Safety:
		parts = append(parts, "Safety!")
	case played.TurnoverOnDowns:
		parts = append(parts, "Turnover on downs.")
	case played.FirstDown && played.Penalty == nil:
		parts = append(parts, "First down.")
	}
	parts = append(parts, injuryText(res, c))
	return join(parts)
}

func join(parts []string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func tackleApplies(r football.PlayResult) bool {
	if r.Touchdown || r.Turnover || r.Penalty != nil {
		return false
	}
	switch r.Outcome {
	case football.OutcomeSack, football.OutcomeIncomplete, football.OutcomeKneelDown:
		return false
	}
	return true
}

func tackleText(c credits) string {
	switch {
	case c.tackler == nil:
		return ""
	case c.assist != nil:
		return fmt.Sprintf("Tackled by %s and %s.", name(c.tackler), name(c.assist))
	}
	return fmt.Sprintf("Tackled by %s.", name(c.tackler))
}

func playText(r football.PlayResult, pt football.PlayType, c credits) string {
	switch r.Outcome {
	case football.OutcomePenaltyOffense, football.OutcomePenaltyDefense:
		return penaltyText(r.Penalty, c.flagged)
	case football.OutcomeKneelDown:
		return fmt.Sprintf("%s takes a knee.", name(c.carrier))
	}
	if pt.IsPass() {
		return passText(r, pt, c)
	}
	return runText(r, c)
}

func passText(r football.PlayResult, pt football.PlayType, c credits) string {
	qb, to := name(c.passer), name(c.carrier)
	switch r.Outcome {
	case football.OutcomeSack:
		return fmt.Sprintf("%s is sacked by %s for a loss of %s.", qb, name(c.tackler), yards(r.YardsGained))
	case football.OutcomeIncomplete:
		return fmt.Sprintf("%s's pass intended for %s falls incomplete.", qb, to)
	case football.OutcomeInterception:
		return fmt.Sprintf("%s's pass is intercepted by %s%s", qb, name(c.tackler), takeawayEnd(r))
	case football.OutcomeFumbleLost:
		return fmt.Sprintf("%s connects with %s, who fumbles. %s recovers for the defense%s", qb, to, name(c.tackler), takeawayEnd(r))
	case football.OutcomeFumble:
		return fmt.Sprintf("%s connects with %s, who fumbles but the offense recovers after %s.", qb, to, gainText(r.YardsGained))
	}
	if r.Touchdown {
		return fmt.Sprintf("%s finds %s for a %d-yard touchdown!", qb, to, r.YardsGained)
	}
	switch {
	case r.Outcome == football.OutcomeBigGain && pt == football.PlayDeepPass:
		return fmt.Sprintf("%s hits %s deep for %s.", qb, to, yards(r.YardsGained))
	case pt == football.PlayScreenPass:
		return fmt.Sprintf("%s dumps it off to %s on the screen for %s.", qb, to, gainText(r.YardsGained))
	case pt == football.PlayPlayAction && r.YardsGained >= 10:
		return fmt.Sprintf("%s fakes the handoff and finds %s for %s.", qb, to, yards(r.YardsGained))
	}
	return fmt.Sprintf("%s completes to %s for %s.", qb, to, gainText(r.YardsGained))
}

func runText(r football.PlayResult, c credits) string {
	ball := name(c.carrier)
	switch r.Outcome {
	case football.OutcomeFumbleLost:
		return fmt.Sprintf("%s fumbles and %s recovers for the defense%s", ball, name(c.tackler), takeawayEnd(r))
	case football.OutcomeFumble:
		return fmt.Sprintf("%s fumbles but the offense falls on it after %s.", ball, gainText(r.YardsGained))
	}
	if r.Touchdown {
		return fmt.Sprintf("%s runs it in from %d yards out for a touchdown!", ball, r.YardsGained)
	}
	switch {
	case r.YardsGained >= 20:
		return fmt.Sprintf("%s breaks free for %s.", ball, yards(r.YardsGained))
	case r.YardsGained >= 10:
		return fmt.Sprintf("%s bursts through the line for %s.", ball, yards(r.YardsGained))
	case r.YardsGained > 0:
		return fmt.Sprintf("%s runs for %s.", ball, yards(r.YardsGained))
	case r.YardsGained == 0:
		return fmt.Sprintf("%s is stopped for no gain.", ball)
	}
	return fmt.Sprintf("%s is dropped for a loss of %s.", ball, yards(r.YardsGained))
}

func gainText(n int) string {
	switch {
	case n > 0:
		return yards(n)
	case n == 0:
		return "no gain"
	}
	return "a loss of " + yards(n)
}

func takeawayEnd(r football.PlayResult) string {
	if r.Touchdown {
		return " and takes it all the way back for a touchdown!"
	}
	return "."
}

func penaltyText(p *football.Penalty, who *football.Player) string {
	if p == nil {
		return ""
	}
	n := yards(p.Yards)
	switch p.Type {
	case football.PenaltyFalseStart:
		return fmt.Sprintf("False start on %s, %s.", name(who), n)
	case football.PenaltyHolding:
		return fmt.Sprintf("Holding on %s, %s.", name(who), n)
	case football.PenaltyOffside:
		return fmt.Sprintf("Offside on the defense, %s.", n)
	case football.PenaltyDefensiveHolding:
		return fmt.Sprintf("Defensive holding on %s, %s and an automatic first down.", name(who), n)
	case football.PenaltyPassInterference:
		return fmt.Sprintf("Pass interference on %s, %s and an automatic first down.", name(who), n)
	}
	return fmt.Sprintf("Flag on the play, %s.", n)
}

func injuryText(r football.PlayResult, c credits) string {
	if r.Injury == nil || c.hurt == nil {
		return ""
	}
	switch r.Injury.Severity {
	case football.Out:
		return fmt.Sprintf("%s is injured on the play and is out for the game.", name(c.hurt))
	case football.Doubtful:
		return fmt.Sprintf("%s is injured on the play and is doubtful to return.", name(c.hurt))
	}
	return fmt.Sprintf("%s is shaken up on the play and is questionable to return.", name(c.hurt))
}

func describeKick(r football.PlayResult, c credits, kick, ret int) string {
	k := name(c.kicker)
	var main string
	switch r.PlayType {
	case football.PlayFieldGoal:
		if r.Outcome == football.OutcomeFieldGoalMade {
			main = fmt.Sprintf("%s's %d-yard field goal is good.", k, kick)
		} else {
			main = fmt.Sprintf("%s's %d-yard field goal is no good.", k, kick)
		}
	case football.PlayPunt:
		main = puntText(r, c, kick, ret)
	default:
		main = kickoffText(r, c, ret)
	}
	parts := []string{main}
	if !r.Touchdown {
		parts = append(parts, tackleText(c))
	}
	parts = append(parts, injuryText(r, c))
	return join(parts)
}

func puntText(r football.PlayResult, c credits, kick, ret int) string {
	k, who := name(c.kicker), name(c.carrier)
	switch r.Outcome {
	case football.OutcomeBlocked:
		if r.Touchdown {
			return fmt.Sprintf("%s's punt is blocked and recovered in the end zone for a touchdown!", k)
		}
		return fmt.Sprintf("%s's punt is blocked!", k)
	case football.OutcomeTouchback:
		return fmt.Sprintf("%s punts into the end zone for a touchback.", k)
	case football.OutcomeFairCatch:
		return fmt.Sprintf("%s punts %s, fair catch by %s.", k, yards(kick), who)
	case football.OutcomeOutOfBounds:
		return fmt.Sprintf("%s punts %s out of bounds.", k, yards(kick))
	case football.OutcomeReturnTouchdown:
		return fmt.Sprintf("%s punts %s and %s takes it %s for a touchdown!", k, yards(kick), who, yards(ret))
	}
	return fmt.Sprintf("%s punts %s, returned %s by %s to %s.", k, yards(kick), yards(ret), who, yardLine(r.NewFieldPosition))
}

func kickoffText(r football.PlayResult, c credits, ret int) string {
	what := "kickoff"
	if r.PlayType == football.PlayFreeKick {
		what = "free kick"
	}
	k, who := name(c.kicker), name(c.carrier)
	switch r.Outcome {
	case football.OutcomeTouchback:
		return fmt.Sprintf("%s's %s goes for a touchback.", k, what)
	case football.OutcomeOutOfBounds:
		return fmt.Sprintf("%s's %s sails out of bounds.", k, what)
	case football.OutcomeReturnTouchdown:
		return fmt.Sprintf("%s takes the %s %s for a touchdown!", who, what, yards(ret))
	}
	return fmt.Sprintf("%s returns the %s %s to %s.", who, what, yards(ret), yardLine(r.NewFieldPosition))
}

func describeConversion(r football.PlayResult, kind football.PlayType, c credits) string {
	good := r.Outcome == football.OutcomeConversionGood
	if kind == football.PlayExtraPoint {
		if good {
			return fmt.Sprintf("%s's extra point is good.", name(c.kicker))
		}
		return fmt.Sprintf("%s's extra point is no good.", name(c.kicker))
	}
	if good {
		return fmt.Sprintf("%s connects with %s on the two-point try.", name(c.passer), name(c.carrier))
	}
	return fmt.Sprintf("%s's two-point try for %s falls short.", name(c.passer), name(c.carrier))
}
