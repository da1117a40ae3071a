// Package outcome builds per-play probability tables over named outcomes and
// draws from them. Tables live for one resolution and never leave the
// engine.
package outcome

import (
	"errors"
	"fmt"
	"math"

	"github.com/xtding233/gridiron-sim/internal/football"
)

var (
	ErrInvalidTable    = errors.New("invalid outcome table")
	ErrUnknownPlayType = errors.New("no outcome table for play type")
)

// Tolerance is the allowed drift of a table's total from 1.
const Tolerance = 1e-3

// YardRange is inclusive on both ends.
type YardRange struct {
	Min int
	Max int
}

// Entry is one outcome with its share of the table.
type Entry struct {
	Outcome     football.Outcome
	Probability float64
	Yards       YardRange
}

// Table is a distribution over outcomes for one attempt.
type Table []Entry

// Probability returns the share of o, 0 when absent.
func (t Table) Probability(o football.Outcome) float64 {
	sum := 0.0
	for _, e := range t {
		if e.Outcome == o {
			sum += e.Probability
		}
	}
	return sum
}

// Mass sums the share of every outcome matching pred.
func (t Table) Mass(pred func(football.Outcome) bool) float64 {
	sum := 0.0
	for _, e := range t {
		if pred(e.Outcome) {
			sum += e.Probability
		}
	}
	return sum
}

// Situation is the down-and-distance slice of game context tables use.
type Situation struct {
	Down           int
	YardsToGo      int
	YardsToEndzone int
}

var defaultYards = map[football.Outcome]YardRange{
	football.OutcomeBigGain:        {20, 45},
	football.OutcomeGoodGain:       {10, 19},
	football.OutcomeModerateGain:   {5, 9},
	football.OutcomeShortGain:      {1, 4},
	football.OutcomeNoGain:         {0, 0},
	football.OutcomeLoss:           {-3, -1},
	football.OutcomeBigLoss:        {-8, -4},
	football.OutcomeSack:           {-10, -3},
	football.OutcomeIncomplete:     {0, 0},
	football.OutcomeInterception:   {0, 0},
	football.OutcomeFumble:         {-3, 2},
	football.OutcomeFumbleLost:     {-2, 3},
	football.OutcomePenaltyOffense: {-10, -5},
	football.OutcomePenaltyDefense: {5, 15},
}

// ratingSpan is the rating gap at which the shift saturates.
const ratingSpan = 50

type weight struct {
	o football.Outcome
	p float64
}

// baselines are neutral-matchup shares per play type.
var baselines = map[football.PlayType][]weight{
	football.PlayInsideRun: {
		{football.OutcomeTouchdown, 0.003}, {football.OutcomeBigGain, 0.02}, {football.OutcomeGoodGain, 0.08},
		{football.OutcomeModerateGain, 0.24}, {football.OutcomeShortGain, 0.33}, {football.OutcomeNoGain, 0.10},
		{football.OutcomeLoss, 0.12}, {football.OutcomeBigLoss, 0.025}, {football.OutcomeFumble, 0.02},
		{football.OutcomeFumbleLost, 0.007}, {football.OutcomePenaltyOffense, 0.04}, {football.OutcomePenaltyDefense, 0.02},
	},
	football.PlayOutsideRun: {
		{football.OutcomeTouchdown, 0.004}, {football.OutcomeBigGain, 0.04}, {football.OutcomeGoodGain, 0.10},
		{football.OutcomeModerateGain, 0.19}, {football.OutcomeShortGain, 0.26}, {football.OutcomeNoGain, 0.09},
		{football.OutcomeLoss, 0.15}, {football.OutcomeBigLoss, 0.04}, {football.OutcomeFumble, 0.02},
		{football.OutcomeFumbleLost, 0.007}, {football.OutcomePenaltyOffense, 0.045}, {football.OutcomePenaltyDefense, 0.025},
	},
	football.PlayQBSneak: {
		{football.OutcomeTouchdown, 0.003}, {football.OutcomeModerateGain, 0.02}, {football.OutcomeShortGain, 0.62},
		{football.OutcomeNoGain, 0.19}, {football.OutcomeLoss, 0.08}, {football.OutcomeFumble, 0.015},
		{football.OutcomeFumbleLost, 0.005}, {football.OutcomePenaltyOffense, 0.04}, {football.OutcomePenaltyDefense, 0.02},
	},
	football.PlayShortPass: {
		{football.OutcomeTouchdown, 0.004}, {football.OutcomeBigGain, 0.03}, {football.OutcomeGoodGain, 0.12},
		{football.OutcomeModerateGain, 0.25}, {football.OutcomeShortGain, 0.18}, {football.OutcomeNoGain, 0.03},
		{football.OutcomeLoss, 0.015}, {football.OutcomeSack, 0.055}, {football.OutcomeIncomplete, 0.25},
		{football.OutcomeInterception, 0.016}, {football.OutcomeFumble, 0.01}, {football.OutcomeFumbleLost, 0.005},
		{football.OutcomePenaltyOffense, 0.025}, {football.OutcomePenaltyDefense, 0.015},
	},
	football.PlayMediumPass: {
		{football.OutcomeTouchdown, 0.008}, {football.OutcomeBigGain, 0.06}, {football.OutcomeGoodGain, 0.21},
		{football.OutcomeModerateGain, 0.09}, {football.OutcomeShortGain, 0.04}, {football.OutcomeLoss, 0.005},
		{football.OutcomeSack, 0.065}, {football.OutcomeIncomplete, 0.38}, {football.OutcomeInterception, 0.024},
		{football.OutcomeFumble, 0.005}, {football.OutcomeFumbleLost, 0.005},
		{football.OutcomePenaltyOffense, 0.025}, {football.OutcomePenaltyDefense, 0.03},
	},
	football.PlayDeepPass: {
		{football.OutcomeTouchdown, 0.016}, {football.OutcomeBigGain, 0.12}, {football.OutcomeGoodGain, 0.06},
		{football.OutcomeModerateGain, 0.02}, {football.OutcomeSack, 0.075}, {football.OutcomeIncomplete, 0.54},
		{football.OutcomeInterception, 0.038}, {football.OutcomeFumbleLost, 0.005},
		{football.OutcomePenaltyOffense, 0.025}, {football.OutcomePenaltyDefense, 0.05},
	},
	football.PlayScreenPass: {
		{football.OutcomeTouchdown, 0.003}, {football.OutcomeBigGain, 0.035}, {football.OutcomeGoodGain, 0.10},
		{football.OutcomeModerateGain, 0.19}, {football.OutcomeShortGain, 0.24}, {football.OutcomeNoGain, 0.07},
		{football.OutcomeLoss, 0.12}, {football.OutcomeBigLoss, 0.02}, {football.OutcomeSack, 0.005},
		{football.OutcomeIncomplete, 0.13}, {football.OutcomeInterception, 0.01}, {football.OutcomeFumble, 0.02},
		{football.OutcomeFumbleLost, 0.008}, {football.OutcomePenaltyOffense, 0.025}, {football.OutcomePenaltyDefense, 0.02},
	},
	football.PlayPlayAction: {
		{football.OutcomeTouchdown, 0.012}, {football.OutcomeBigGain, 0.09}, {football.OutcomeGoodGain, 0.16},
		{football.OutcomeModerateGain, 0.11}, {football.OutcomeShortGain, 0.05}, {football.OutcomeLoss, 0.005},
		{football.OutcomeSack, 0.085}, {football.OutcomeIncomplete, 0.38}, {football.OutcomeInterception, 0.024},
		{football.OutcomeFumbleLost, 0.005}, {football.OutcomePenaltyOffense, 0.02}, {football.OutcomePenaltyDefense, 0.025},
	},
}

// GenerateOutcomeTable builds the distribution for one scrimmage play:
// baseline for the play type, shifted by the rating differential, adjusted
// for the situation, fitted to the field, then normalized and validated.
// A zero sit.YardsToEndzone is derived from fieldPosition.
func GenerateOutcomeTable(offRating, defRating float64, playType football.PlayType, sit Situation, fieldPosition int) (Table, error) {
	base, ok := baselines[playType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayType, playType)
	}
	if sit.YardsToEndzone <= 0 {
		sit.YardsToEndzone = 100 - fieldPosition
	}
	if sit.YardsToEndzone < 1 {
		sit.YardsToEndzone = 1
	}
	if fieldPosition < 1 {
		fieldPosition = 1
	}

	t := make(Table, 0, len(base))
	for _, w := range base {
		e := Entry{Outcome: w.o, Probability: w.p, Yards: defaultYards[w.o]}
		if w.o == football.OutcomeTouchdown {
			e.Yards = YardRange{sit.YardsToEndzone, sit.YardsToEndzone}
		}
		t = append(t, e)
	}

	applyRatingShift(t, offRating-defRating, playType)
	applySituation(t, playType, sit)
	t = fitToField(t, sit.YardsToEndzone, fieldPosition)

	if err := Normalize(t); err != nil {
		return nil, err
	}
	if err := Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// swing is how hard the rating differential moves a play type's table.
func swing(pt football.PlayType) float64 {
	if pt.IsPass() {
		return 0.8
	}
	return 0.5
}

// applyRatingShift scales positive outcomes up and turnovers down as the
// offense out-rates the defense. Each group moves by a single exponential
// factor, so group shares stay monotonic in the differential. The effect
// saturates at a 50 point gap.
func applyRatingShift(t Table, diff float64, pt football.PlayType) {
	d := math.Max(-1, math.Min(1, diff/ratingSpan))
	k := swing(pt)
	for i := range t {
		o := t[i].Outcome
		switch {
		case IsPositiveOutcome(o):
			t[i].Probability *= math.Exp(k * d)
		case IsTurnover(o):
			t[i].Probability *= math.Exp(-1.3 * k * d)
		case IsNegativeOutcome(o):
			t[i].Probability *= math.Exp(-0.5 * k * d)
		}
	}
}

func applySituation(t Table, pt football.PlayType, sit Situation) {
	for i := range t {
		o := t[i].Outcome
		switch {
		case o == football.OutcomeTouchdown && sit.YardsToEndzone <= 20:
			t[i].Probability *= 1.5 + float64(20-sit.YardsToEndzone)/20
		case pt.IsRun() && sit.YardsToGo <= 2 && o == football.OutcomeShortGain:
			t[i].Probability *= 1.3
		case pt.IsRun() && sit.YardsToGo <= 2 && o == football.OutcomeLoss:
			t[i].Probability *= 0.85
		case pt.IsPass() && sit.Down >= 3 && sit.YardsToGo >= 8 && (o == football.OutcomeSack || o == football.OutcomeInterception):
			t[i].Probability *= 1.25
		}
	}
}

// fitToField clips yard ranges to the field. Gains that cannot stop short
// of the goal line fold into the touchdown entry; losses stop at the
// offense's own goal line (a safety); penalties respect half the distance.
func fitToField(t Table, yardsToEndzone, fieldPosition int) Table {
	td := -1
	for i, e := range t {
		if e.Outcome == football.OutcomeTouchdown {
			td = i
		}
	}
	if td < 0 {
		t = append(t, Entry{Outcome: football.OutcomeTouchdown, Yards: YardRange{yardsToEndzone, yardsToEndzone}})
		td = len(t) - 1
	}

	maxGain := yardsToEndzone - 1
	maxLoss := -fieldPosition
	for i := range t {
		e := &t[i]
		switch {
		case i == td:
			continue
		case e.Outcome == football.OutcomePenaltyOffense:
			half := fieldPosition / 2
			e.Yards.Min = max(e.Yards.Min, -half)
			e.Yards.Max = max(e.Yards.Max, -half)
			continue
		case e.Outcome == football.OutcomePenaltyDefense:
			half := yardsToEndzone / 2
			e.Yards.Min = min(e.Yards.Min, half)
			e.Yards.Max = min(e.Yards.Max, half)
			continue
		case IsPositiveOutcome(e.Outcome) && e.Yards.Min > maxGain:
			t[td].Probability += e.Probability
			e.Probability = 0
			e.Yards = YardRange{maxGain, maxGain}
			continue
		}
		if e.Yards.Max > maxGain {
			e.Yards.Max = maxGain
		}
		if e.Yards.Min < maxLoss {
			e.Yards.Min = maxLoss
		}
		if e.Yards.Max < e.Yards.Min {
			e.Yards.Max = e.Yards.Min
		}
		if e.Yards.Min > e.Yards.Max {
			e.Yards.Min = e.Yards.Max
		}
	}
	return t
}

// Normalize rescales the table in place so it sums to exactly 1.
func Normalize(t Table) error {
	sum := 0.0
	for _, e := range t {
		if e.Probability < 0 || math.IsNaN(e.Probability) || math.IsInf(e.Probability, 0) {
			return fmt.Errorf("%w: %s has share %v", ErrInvalidTable, e.Outcome, e.Probability)
		}
		sum += e.Probability
	}
	if sum <= 0 {
		return fmt.Errorf("%w: empty distribution", ErrInvalidTable)
	}
	for i := range t {
		t[i].Probability /= sum
	}
	return nil
}

// Validate fails when shares leave [0,1], do not total 1 within Tolerance,
// or a yard range is inverted.
func Validate(t Table) error {
	if len(t) == 0 {
		return fmt.Errorf("%w: no entries", ErrInvalidTable)
	}
	sum := 0.0
	for _, e := range t {
		if math.IsNaN(e.Probability) || e.Probability < 0 || e.Probability > 1 {
			return fmt.Errorf("%w: %s has share %v", ErrInvalidTable, e.Outcome, e.Probability)
		}
		if e.Yards.Min > e.Yards.Max {
			return fmt.Errorf("%w: %s yard range %d..%d", ErrInvalidTable, e.Outcome, e.Yards.Min, e.Yards.Max)
		}
		sum += e.Probability
	}
	if math.Abs(sum-1) > Tolerance {
		return fmt.Errorf("%w: shares total %.6f", ErrInvalidTable, sum)
	}
	return nil
}
