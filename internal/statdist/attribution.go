package statdist

import (
	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/rng"
)

// AssistTackleRate is how often a second defender shares a tackle.
const AssistTackleRate = 0.35

var receiverDepth = map[football.Position][]float64{
	football.PosWR: {1.0, 0.8, 0.55, 0.35},
	football.PosTE: {0.6, 0.3},
	football.PosRB: {0.35, 0.2, 0.1},
}

var backDepth = []float64{0.7, 0.25, 0.05}

// depthWeight reads a per-slot weight, halving past the end of the list.
func depthWeight(w []float64, idx int) float64 {
	if idx < len(w) {
		return w[idx]
	}
	if len(w) == 0 {
		return 0
	}
	v := w[len(w)-1]
	for i := len(w); i <= idx; i++ {
		v /= 2
	}
	return v
}

func freshness(t *football.TeamGameState, p *football.Player) float64 {
	if t == nil {
		return 1
	}
	return 1 - t.Fatigue[p.ID]/200
}

// SelectPassTarget picks the receiver credited with a pass. Screens lean on
// backs, deep shots on the top wideout, red-zone throws on tight ends.
func SelectPassTarget(receivers []*football.Player, playType football.PlayType, sit football.Situation, t *football.TeamGameState, src rng.RandomSource) *football.Player {
	weights := make([]float64, len(receivers))
	for i, p := range receivers {
		if p == nil {
			continue
		}
		idx := 0
		if t != nil {
			idx = t.DepthIndex(p)
		}
		w := depthWeight(receiverDepth[p.Position], idx)
		switch {
		case playType == football.PlayScreenPass && p.Position == football.PosRB:
			w *= 3
		case playType == football.PlayDeepPass && p.Position == football.PosWR && idx == 0:
			w *= 1.6
		case playType == football.PlayDeepPass && p.Position == football.PosTE:
			w *= 0.5
		case playType == football.PlayDeepPass && p.Position == football.PosRB:
			w *= 0.2
		}
		if sit.InRedZone() && p.Position == football.PosTE {
			w *= 1.6
		}
		weights[i] = w * freshness(t, p)
	}
	p, _ := WeightedRandomChoice(receivers, weights, src)
	return p
}

// RotationContext shapes how carries are shared among backs.
type RotationContext struct {
	ShortYardage bool
	TwoMinute    bool
}

// SelectRunningBack picks the ball carrier. Backs with heavy snap loads
// cede carries; the lead back gets more in short yardage, the change-of-pace
// back more in the two-minute drill.
func SelectRunningBack(backs []*football.Player, t *football.TeamGameState, rc RotationContext, src rng.RandomSource) *football.Player {
	weights := make([]float64, len(backs))
	for i, p := range backs {
		if p == nil {
			continue
		}
		idx := i
		if t != nil {
			idx = t.DepthIndex(p)
		}
		w := depthWeight(backDepth, idx)
		switch {
		case rc.ShortYardage && idx == 0:
			w *= 1.4
		case rc.TwoMinute && idx == 1:
			w *= 1.8
		}
		if t != nil {
			w /= 1 + float64(t.SnapCounts[p.ID])/60
		}
		weights[i] = w * freshness(t, p)
	}
	p, _ := WeightedRandomChoice(backs, weights, src)
	return p
}

// TackleContext is what the tackler choice keys off.
type TackleContext struct {
	PlayType football.PlayType
	Outcome  football.Outcome
	Yards    int
}

type positionWeights map[football.Position]float64

var (
	sackWeights  = positionWeights{football.PosDL: 1.0, football.PosLB: 0.45, football.PosCB: 0.05, football.PosS: 0.05}
	shortWeights = positionWeights{football.PosDL: 0.85, football.PosLB: 1.0, football.PosCB: 0.2, football.PosS: 0.2}
	midWeights   = positionWeights{football.PosDL: 0.3, football.PosLB: 0.8, football.PosCB: 0.6, football.PosS: 0.55}
	longWeights  = positionWeights{football.PosDL: 0.05, football.PosLB: 0.3, football.PosCB: 0.9, football.PosS: 1.0}
)

func tackleWeights(tc TackleContext) positionWeights {
	switch {
	case tc.Outcome == football.OutcomeSack:
		return sackWeights
	case tc.Yards >= 15:
		return longWeights
	case tc.Yards <= 4:
		return shortWeights
	}
	return midWeights
}

// SelectPrimaryTackler picks the defender credited with the stop. Linemen
// dominate sacks and short gains; the secondary makes the stop after long
// completions.
func SelectPrimaryTackler(defenders []*football.Player, tc TackleContext, t *football.TeamGameState, src rng.RandomSource) *football.Player {
	pw := tackleWeights(tc)
	weights := make([]float64, len(defenders))
	for i, p := range defenders {
		if p == nil {
			continue
		}
		w := pw[p.Position]
		if t != nil {
			// rotational players see fewer stops
			w *= 1 / (1 + 0.5*float64(t.DepthIndex(p)))
		}
		weights[i] = w * freshness(t, p)
	}
	p, _ := WeightedRandomChoice(defenders, weights, src)
	return p
}

// SelectAssistTackler picks a second defender other than primary.
func SelectAssistTackler(defenders []*football.Player, primary *football.Player, tc TackleContext, t *football.TeamGameState, src rng.RandomSource) *football.Player {
	rest := make([]*football.Player, 0, len(defenders))
	for _, p := range defenders {
		if p != nil && (primary == nil || p.ID != primary.ID) {
			rest = append(rest, p)
		}
	}
	return SelectPrimaryTackler(rest, tc, t, src)
}

// ShouldHaveAssistTackle reports whether a stop is shared.
func ShouldHaveAssistTackle(src rng.RandomSource) bool {
	return rng.Chance(AssistTackleRate, src)
}
