package resolve

import (
	"fmt"

	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/rating"
	"github.com/xtding233/gridiron-sim/internal/rng"
)

// fatiguePenalty is rating points lost per point of fatigue.
const fatiguePenalty = 0.08

type rater struct {
	weather football.Weather
	stakes  football.Stakes
	src     rng.RandomSource
}

func newRater(ctx Context, src rng.RandomSource) rater {
	return rater{weather: ctx.Weather, stakes: ctx.Stakes, src: src}
}

func role(t *football.TeamGameState, p *football.Player) string {
	return fmt.Sprintf("%s%d", p.Position, t.DepthIndex(p)+1)
}

func (r rater) player(t *football.TeamGameState, p *football.Player, skill football.Skill) float64 {
	if p == nil {
		return rating.MinRating
	}
	scheme := t.OffensiveScheme
	if p.Position.IsDefense() {
		scheme = t.DefensiveScheme
	}
	v := rating.EffectiveRating(rating.Input{
		Player:         p,
		Skill:          skill,
		Coach:          t.CoachFor(p.Position),
		Scheme:         scheme,
		Role:           role(t, p),
		Weather:        r.weather,
		Stakes:         r.stakes,
		WeeklyVariance: t.WeeklyVariance[p.ID],
		Status:         t.Injuries[p.ID],
	}, r.src)
	v -= t.Fatigue[p.ID] * fatiguePenalty
	if v < rating.MinRating {
		v = rating.MinRating
	}
	return v
}

func (r rater) average(t *football.TeamGameState, ps []*football.Player, skill football.Skill) float64 {
	if len(ps) == 0 {
		return rating.MinRating
	}
	sum := 0.0
	for _, p := range ps {
		sum += r.player(t, p, skill)
	}
	return sum / float64(len(ps))
}

type weighted struct {
	v, w float64
}

func blend(parts ...weighted) float64 {
	sum, wsum := 0.0, 0.0
	for _, p := range parts {
		sum += p.v * p.w
		wsum += p.w
	}
	if wsum == 0 {
		return rating.MinRating
	}
	return sum / wsum
}

// composites returns offense and defense strength for one play type.
func (r rater) composites(off, def *football.TeamGameState, o offenseUnit, d defenseUnit, pt football.PlayType) (float64, float64) {
	if pt.IsPass() {
		offC := blend(
			weighted{r.player(off, o.qb, football.SkillPassing), 0.45},
			weighted{r.average(off, o.receivers, football.SkillReceiving), 0.30},
			weighted{r.average(off, o.line, football.SkillPassBlocking), 0.25},
		)
		defC := blend(
			weighted{r.average(def, d.secondary, football.SkillCoverage), 0.45},
			weighted{r.average(def, d.front, football.SkillPassRush), 0.35},
			weighted{r.average(def, d.backers, football.SkillCoverage), 0.20},
		)
		return offC, defC
	}

	carrier := weighted{0, 0.40}
	if pt == football.PlayQBSneak || len(o.backs) == 0 {
		carrier.v = r.player(off, o.qb, football.SkillRushing)
	} else {
		carrier.v = r.player(off, o.backs[0], football.SkillRushing)
	}
	var tes []*football.Player
	for _, p := range o.receivers {
		if p.Position == football.PosTE {
			tes = append(tes, p)
		}
	}
	parts := []weighted{carrier, {r.average(off, o.line, football.SkillRunBlocking), 0.45}}
	if len(tes) > 0 {
		parts = append(parts, weighted{r.average(off, tes, football.SkillRunBlocking), 0.15})
	}
	offC := blend(parts...)
	defC := blend(
		weighted{r.average(def, d.front, football.SkillRunDefense), 0.40},
		weighted{r.average(def, d.backers, football.SkillRunDefense), 0.35},
		weighted{r.average(def, append(append([]*football.Player{}, d.backers...), d.secondary...), football.SkillTackling), 0.25},
	)
	return offC, defC
}

// matchup is the offense's edge from how the defensive call fits the play.
func matchup(pt football.PlayType, call football.DefensivePlayType) float64 {
	switch call {
	case football.DefenseBlitz:
		switch pt {
		case football.PlayScreenPass:
			return 6
		case football.PlayDeepPass, football.PlayPlayAction:
			return 3
		case football.PlayShortPass, football.PlayMediumPass:
			return -3
		case football.PlayInsideRun, football.PlayOutsideRun:
			return -2
		}
	case football.DefenseRunStop:
		switch {
		case pt == football.PlayPlayAction:
			return 6
		case pt.IsPass():
			return 3
		case pt.IsRun():
			return -6
		}
	case football.DefenseManCoverage:
		switch pt {
		case football.PlayDeepPass:
			return -2
		case football.PlayOutsideRun, football.PlayQBSneak:
			return 2
		}
	case football.DefensePrevent:
		switch {
		case pt == football.PlayDeepPass:
			return -6
		case pt.IsRun(), pt == football.PlayShortPass, pt == football.PlayScreenPass:
			return 5
		}
	}
	return 0
}
