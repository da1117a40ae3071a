package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xtding233/gridiron-sim/internal/football"
)

var ErrInvalidConfig = errors.New("config validation failed")

var (
	knownPositions = positionSet()
	knownSkills    = map[string]bool{
		string(football.SkillPassing): true, string(football.SkillRushing): true,
		string(football.SkillReceiving): true, string(football.SkillPassBlocking): true,
		string(football.SkillRunBlocking): true, string(football.SkillPassRush): true,
		string(football.SkillRunDefense): true, string(football.SkillTackling): true,
		string(football.SkillCoverage): true, string(football.SkillKickPower): true,
		string(football.SkillKickAccuracy): true, string(football.SkillPunting): true,
	}
	knownGrades = map[string]bool{
		string(football.FitPerfect): true, string(football.FitGood): true,
		string(football.FitNeutral): true, string(football.FitPoor): true,
		string(football.FitTerrible): true,
	}
	knownTiers = map[string]bool{
		string(football.TierMetronome): true, string(football.TierSteady): true,
		string(football.TierAverage): true, string(football.TierStreaky): true,
		string(football.TierVolatile): true, string(football.TierChaotic): true,
	}
	knownInjuries = map[string]bool{
		string(football.Healthy): true, string(football.Questionable): true,
		string(football.Doubtful): true, string(football.Out): true,
	}
	knownWeather = map[football.WeatherCondition]bool{
		football.WeatherClear: true, football.WeatherCloudy: true, football.WeatherRain: true,
		football.WeatherHeavyRain: true, football.WeatherSnow: true,
	}
)

func positionSet() map[string]bool {
	m := make(map[string]bool, len(football.Positions))
	for _, p := range football.Positions {
		m[string(p)] = true
	}
	return m
}

// ValidateRaw checks semantic constraints of a RawConfig and reports every
// violation at once. Personnel minimums are checked later, on the built
// team.
func ValidateRaw(cfg RawConfig) error {
	var errs []string
	rate := func(name string, v *float64) {
		if v != nil && (*v < 0 || *v > 1) {
			errs = append(errs, name+" must be in [0,1]")
		}
	}

	if o := cfg.Offense; o != nil {
		rate("offense.pass_rate", o.PassRate)
		rate("offense.play_action_rate", o.PlayActionRate)
		rate("offense.deep_shot_rate", o.DeepShotRate)
		rate("offense.screen_rate", o.ScreenRate)
		rate("offense.fourth_down_aggressiveness", o.FourthDownAggressiveness)
	}
	if d := cfg.Defense; d != nil {
		rate("defense.blitz_rate", d.BlitzRate)
		rate("defense.man_coverage_rate", d.ManCoverageRate)
		rate("defense.run_stop_rate", d.RunStopRate)
		rate("defense.prevent_rate", d.PreventRate)
		sum := 0.0
		for _, v := range []*float64{d.BlitzRate, d.ManCoverageRate, d.RunStopRate, d.PreventRate} {
			if v != nil {
				sum += *v
			}
		}
		if sum > 1 {
			errs = append(errs, "defense rates must sum to at most 1")
		}
	}

	if g := cfg.Game; g != nil {
		if g.QuarterLength != nil && *g.QuarterLength <= 0 {
			errs = append(errs, "game.quarter_length must be > 0")
		}
		if g.MaxPlays != nil && *g.MaxPlays <= 0 {
			errs = append(errs, "game.max_plays must be > 0")
		}
		if g.Stakes != "" && !football.Stakes(g.Stakes).Valid() {
			errs = append(errs, fmt.Sprintf("game.stakes %q is not a known stakes level", g.Stakes))
		}
		if w := g.Weather; w != nil {
			if !knownWeather[w.Condition] && !(w.Condition == "" && w.Dome) {
				errs = append(errs, fmt.Sprintf("game.weather.condition %q is not known", w.Condition))
			}
			if w.WindMPH < 0 {
				errs = append(errs, "game.weather.wind_mph must be >= 0")
			}
		}
	}

	seen := make(map[string]bool, len(cfg.Roster))
	for i, p := range cfg.Roster {
		at := fmt.Sprintf("roster[%d]", i)
		if p.ID == "" {
			errs = append(errs, at+".id is required")
		} else if seen[p.ID] {
			errs = append(errs, fmt.Sprintf("%s.id %s is listed twice", at, p.ID))
		}
		seen[p.ID] = true
		if !knownPositions[p.Position] {
			errs = append(errs, fmt.Sprintf("%s.position %q is not known", at, p.Position))
		}
		for s, v := range p.Skills {
			if !knownSkills[s] {
				errs = append(errs, fmt.Sprintf("%s.skills.%s is not a known skill", at, s))
			}
			if v < 1 || v > 100 {
				errs = append(errs, fmt.Sprintf("%s.skills.%s must be in [1,100]", at, s))
			}
		}
		if p.ItFactor != nil && (*p.ItFactor < 0 || *p.ItFactor > 100) {
			errs = append(errs, at+".it_factor must be in [0,100]")
		}
		for k, g := range p.SchemeFits {
			if !knownGrades[g] {
				errs = append(errs, fmt.Sprintf("%s.scheme_fits.%s %q is not a fit grade", at, k, g))
			}
		}
		for k, g := range p.RoleFits {
			if !knownGrades[g] {
				errs = append(errs, fmt.Sprintf("%s.role_fits.%s %q is not a fit grade", at, k, g))
			}
		}
		if p.Consistency != "" && !knownTiers[p.Consistency] {
			errs = append(errs, fmt.Sprintf("%s.consistency %q is not a known tier", at, p.Consistency))
		}
		if p.Injury != "" && !knownInjuries[p.Injury] {
			errs = append(errs, fmt.Sprintf("%s.injury %q is not a known status", at, p.Injury))
		}
	}

	for i, c := range cfg.Coaches {
		at := fmt.Sprintf("coaches[%d]", i)
		if !knownPositions[c.Position] {
			errs = append(errs, fmt.Sprintf("%s.position %q is not known", at, c.Position))
		}
		for id, v := range c.Chemistry {
			if !seen[id] {
				errs = append(errs, fmt.Sprintf("%s.chemistry names unknown player %s", at, id))
			}
			if v < -100 || v > 100 {
				errs = append(errs, fmt.Sprintf("%s.chemistry.%s must be in [-100,100]", at, id))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}
