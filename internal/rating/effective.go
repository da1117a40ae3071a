// Package rating turns hidden true skill into the per-play rating the
// outcome tables consume, and rolls the weekly form that feeds it.
package rating

import (
	"math"

	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/rng"
)

const (
	MinRating = 1
	MaxRating = 100
)

// Input is everything that shapes one player's rating for one play.
type Input struct {
	Player         *football.Player
	Skill          football.Skill
	Coach          *football.PositionCoach
	Scheme         string
	Role           string
	Weather        football.Weather
	Stakes         football.Stakes
	WeeklyVariance float64
	// Status is the in-game injury status; the worse of this and the
	// player's pregame status applies.
	Status football.InjuryStatus
}

type fitRange struct{ min, max float64 }

var schemeFitRanges = map[football.FitGrade]fitRange{
	football.FitPerfect:  {5, 8},
	football.FitGood:     {2, 5},
	football.FitNeutral:  {-1, 1},
	football.FitPoor:     {-6, -2},
	football.FitTerrible: {-10, -6},
}

var roleFitRanges = map[football.FitGrade]fitRange{
	football.FitPerfect:  {6, 10},
	football.FitGood:     {2, 6},
	football.FitNeutral:  {-1, 1},
	football.FitPoor:     {-5, -2},
	football.FitTerrible: {-8, -5},
}

var injuryPenalty = map[football.InjuryStatus]float64{
	football.Questionable: 4,
	football.Doubtful:     10,
	football.Out:          25,
}

// EffectiveRating returns the context-adjusted rating in [1,100]. The scheme
// and role terms draw from src; everything else is deterministic.
func EffectiveRating(in Input, src rng.RandomSource) float64 {
	if in.Player == nil {
		return MinRating
	}
	if src == nil {
		src = rng.DefaultRNG()
	}
	r := in.Player.TrueSkill(in.Skill)
	r += schemeFitModifier(in.Player, in.Scheme, src)
	r += roleFitModifier(in.Player, in.Role, src)
	r += coachChemistryModifier(in.Coach, in.Player.ID)
	r += weatherModifier(in.Weather, in.Skill)
	r += stakesModifier(in.Stakes, in.Player.ItFactor)
	r += in.WeeklyVariance
	r -= injuryPenalty[football.Worse(in.Player.Injury, in.Status)]
	return clamp(r, MinRating, MaxRating)
}

func schemeFitModifier(p *football.Player, scheme string, src rng.RandomSource) float64 {
	return fitDraw(schemeFitRanges, p.SchemeFits[scheme], src)
}

func roleFitModifier(p *football.Player, role string, src rng.RandomSource) float64 {
	return fitDraw(roleFitRanges, p.RoleFits[role], src)
}

func fitDraw(ranges map[football.FitGrade]fitRange, grade football.FitGrade, src rng.RandomSource) float64 {
	fr, ok := ranges[grade]
	if !ok {
		fr = ranges[football.FitNeutral]
	}
	return rng.Between(src, fr.min, fr.max)
}

// coachChemistryModifier is 0 without a coach or a relationship.
func coachChemistryModifier(c *football.PositionCoach, id football.PlayerID) float64 {
	chem, ok := c.ChemistryWith(id)
	if !ok {
		return 0
	}
	return clamp(chem/10, -10, 10)
}

// weatherModifier is 0 in a dome. Passing and kicking skills feel the
// elements fully, everything else at half strength.
func weatherModifier(w football.Weather, skill football.Skill) float64 {
	if w.Dome {
		return 0
	}
	m := 0.0
	switch w.Condition {
	case football.WeatherRain:
		m -= 3
	case football.WeatherHeavyRain:
		m -= 6
	case football.WeatherSnow:
		m -= 5
	}
	if w.WindMPH > 10 {
		m -= math.Min((w.WindMPH-10)/5, 4)
	}
	if w.TemperatureF < 40 {
		m -= math.Min((40-w.TemperatureF)/10, 3)
	} else if w.TemperatureF > 90 {
		m -= math.Min((w.TemperatureF-90)/5, 2)
	}
	if m == 0 && w.WindMPH <= 10 && w.TemperatureF >= 55 && w.TemperatureF <= 75 {
		if w.Condition == football.WeatherClear {
			return 2
		}
		return 1
	}
	if !weatherSensitive(skill) {
		m /= 2
	}
	return clamp(m, -10, 2)
}

func weatherSensitive(skill football.Skill) bool {
	switch skill {
	case football.SkillPassing, football.SkillReceiving, football.SkillKickPower,
		football.SkillKickAccuracy, football.SkillPunting:
		return true
	}
	return false
}

// stakesModifier scales the player's clutch temperament by how much the
// game matters. Preseason games are always 0.
func stakesModifier(s football.Stakes, itFactor float64) float64 {
	imp := s.Importance()
	if imp == 0 {
		return 0
	}
	return clamp(imp*15*(itFactor-50)/50, -15, 15)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
