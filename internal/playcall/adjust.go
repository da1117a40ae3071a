// Package playcall decides what each side calls. It reads tendencies and
// the game situation only; player quality never enters here.
package playcall

import (
	"github.com/xtding233/gridiron-sim/internal/football"
)

// Context is what a coordinator sees before the snap.
type Context struct {
	Situation football.Situation
	Weather   football.Weather
}

func (c Context) trailing() bool { return c.Situation.ScoreDifferential < 0 }
func (c Context) leading() bool  { return c.Situation.ScoreDifferential > 0 }

func (c Context) thirdAndLong() bool {
	return c.Situation.Down >= 3 && c.Situation.Distance >= 7
}

func (c Context) shortYardage() bool { return c.Situation.Distance <= 2 }

// Adjust returns tendencies shifted for the situation. Unknown variants are
// returned unchanged.
func Adjust(t football.Tendencies, ctx Context) football.Tendencies {
	switch v := t.(type) {
	case football.OffensiveTendencies:
		return adjustOffense(v, ctx)
	case football.DefensiveTendencies:
		return adjustDefense(v, ctx)
	}
	return t
}

func adjustOffense(o football.OffensiveTendencies, ctx Context) football.OffensiveTendencies {
	s := ctx.Situation
	switch {
	case s.IsTwoMinute() && !ctx.leading():
		o.PassRate += 0.25
		o.DeepShotRate += 0.08
		o.PlayActionRate *= 0.3
	case s.IsLateGame() && s.ScoreDifferential <= -9:
		o.PassRate += 0.22
		o.DeepShotRate += 0.06
	case s.IsLateGame() && s.ScoreDifferential >= 7:
		o.PassRate -= 0.22
		o.DeepShotRate *= 0.5
	case s.Quarter >= 3 && s.ScoreDifferential <= -14:
		o.PassRate += 0.12
	}

	switch {
	case ctx.thirdAndLong():
		o.PassRate += 0.25
		o.ScreenRate += 0.03
		o.DeepShotRate += 0.04
	case ctx.shortYardage():
		o.PassRate -= 0.25
		o.PlayActionRate += 0.04
	}

	if s.InRedZone() {
		o.PassRate -= 0.05
		o.DeepShotRate *= 0.3
		o.PlayActionRate += 0.03
	}
	if ctx.Weather.Precipitation() {
		o.PassRate -= 0.08
		o.DeepShotRate *= 0.7
	}
	if ctx.Weather.EffectiveWind() > 20 {
		o.PassRate -= 0.08
		o.DeepShotRate *= 0.6
	}

	if s.IsLateGame() && ctx.trailing() && s.TimeRemaining <= 300 {
		o.FourthDownAggressiveness += 0.4
	}
	if s.FieldPosition >= 50 {
		o.FourthDownAggressiveness += 0.1
	}

	o.PassRate = clamp01(o.PassRate)
	o.PlayActionRate = clamp01(o.PlayActionRate)
	o.DeepShotRate = clamp01(o.DeepShotRate)
	o.ScreenRate = clamp01(o.ScreenRate)
	o.FourthDownAggressiveness = clamp01(o.FourthDownAggressiveness)
	return o
}

func adjustDefense(d football.DefensiveTendencies, ctx Context) football.DefensiveTendencies {
	s := ctx.Situation
	switch {
	case ctx.thirdAndLong():
		d.BlitzRate += 0.1
		d.ManCoverageRate += 0.05
		d.RunStopRate *= 0.4
	case ctx.shortYardage():
		d.RunStopRate += 0.3
		d.BlitzRate += 0.05
	}
	// the differential is the offense's; the defense protects a two-score lead
	if s.IsTwoMinute() && s.ScoreDifferential <= -8 {
		d.PreventRate += 0.4
		d.BlitzRate *= 0.5
	}
	if s.InRedZone() {
		d.ManCoverageRate += 0.1
		d.PreventRate = 0
	}
	if ctx.Weather.Precipitation() {
		d.RunStopRate += 0.05
	}

	d.BlitzRate = clamp01(d.BlitzRate)
	d.ManCoverageRate = clamp01(d.ManCoverageRate)
	d.RunStopRate = clamp01(d.RunStopRate)
	d.PreventRate = clamp01(d.PreventRate)
	return d
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
