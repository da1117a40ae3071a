package config

import (
	"fmt"

	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/game"
)

const defaultItFactor = 50

// BuildTeam turns a merged preset into a fresh game state with its own
// player records. Every call builds new records, so states never share
// mutable data.
func BuildTeam(cfg RawConfig) (*football.TeamGameState, error) {
	if err := ValidateRaw(cfg); err != nil {
		return nil, err
	}
	info := TeamInfo{}
	if cfg.Team != nil {
		info = *cfg.Team
	}
	name := info.Name
	if name == "" {
		name = info.ID
	}

	t := football.NewTeamGameState(info.ID, name)
	t.OffensiveScheme = info.OffensiveScheme
	t.DefensiveScheme = info.DefensiveScheme
	t.Offense = offenseFrom(cfg.Offense, t.Offense)
	t.Defense = defenseFrom(cfg.Defense, t.Defense)

	for _, pc := range cfg.Roster {
		t.AddPlayer(playerFrom(pc))
	}
	for _, cc := range cfg.Coaches {
		coach := &football.PositionCoach{
			ID:        cc.ID,
			Name:      cc.Name,
			Position:  football.Position(cc.Position),
			Chemistry: make(map[football.PlayerID]float64, len(cc.Chemistry)),
		}
		for id, v := range cc.Chemistry {
			coach.Chemistry[football.PlayerID(id)] = v
		}
		t.Coaches[coach.Position] = coach
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("build team %s: %w", info.ID, err)
	}
	return t, nil
}

func playerFrom(pc PlayerCfg) *football.Player {
	p := &football.Player{
		ID:       football.PlayerID(pc.ID),
		Name:     pc.Name,
		Position: football.Position(pc.Position),
		Skills:   make(map[football.Skill]float64, len(pc.Skills)),
		ItFactor: defaultItFactor,
		Injury:   football.Healthy,
		Consistency: &football.ConsistencyProfile{
			Tier:          football.TierAverage,
			CurrentStreak: football.StreakNeutral,
		},
	}
	for s, v := range pc.Skills {
		p.Skills[football.Skill(s)] = v
	}
	if pc.ItFactor != nil {
		p.ItFactor = *pc.ItFactor
	}
	if pc.Injury != "" {
		p.Injury = football.InjuryStatus(pc.Injury)
	}
	if pc.Consistency != "" {
		p.Consistency.Tier = football.ConsistencyTier(pc.Consistency)
	}
	if len(pc.SchemeFits) > 0 {
		p.SchemeFits = make(map[string]football.FitGrade, len(pc.SchemeFits))
		for k, g := range pc.SchemeFits {
			p.SchemeFits[k] = football.FitGrade(g)
		}
	}
	if len(pc.RoleFits) > 0 {
		p.RoleFits = make(map[string]football.FitGrade, len(pc.RoleFits))
		for k, g := range pc.RoleFits {
			p.RoleFits[k] = football.FitGrade(g)
		}
	}
	return p
}

func offenseFrom(c *OffenseCfg, base football.OffensiveTendencies) football.OffensiveTendencies {
	if c == nil {
		return base
	}
	setRate(&base.PassRate, c.PassRate)
	setRate(&base.PlayActionRate, c.PlayActionRate)
	setRate(&base.DeepShotRate, c.DeepShotRate)
	setRate(&base.ScreenRate, c.ScreenRate)
	setRate(&base.FourthDownAggressiveness, c.FourthDownAggressiveness)
	return base
}

func defenseFrom(c *DefenseCfg, base football.DefensiveTendencies) football.DefensiveTendencies {
	if c == nil {
		return base
	}
	setRate(&base.BlitzRate, c.BlitzRate)
	setRate(&base.ManCoverageRate, c.ManCoverageRate)
	setRate(&base.RunStopRate, c.RunStopRate)
	setRate(&base.PreventRate, c.PreventRate)
	return base
}

func setRate(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// ResolveGame builds the settings for a game hosted by home: league
// defaults, then the home file, then the request overrides. Request
// weather is laid over the file's, field by field.
func ResolveGame(home RawConfig, o GameOverrides) game.Config {
	var cfg game.Config
	if g := home.Game; g != nil {
		if g.QuarterLength != nil {
			cfg.QuarterLength = *g.QuarterLength
		}
		if g.MaxPlays != nil {
			cfg.MaxPlays = *g.MaxPlays
		}
		if g.Weather != nil {
			cfg.Weather = *g.Weather
		}
		cfg.Stakes = football.Stakes(g.Stakes)
	}
	if o.QuarterLength != nil {
		cfg.QuarterLength = *o.QuarterLength
	}
	if o.Stakes != nil {
		cfg.Stakes = football.Stakes(*o.Stakes)
	}
	if o.Weather != nil {
		cfg.Weather = o.Weather.Over(cfg.Weather)
	}
	if o.Playoff != nil {
		cfg.Playoff = *o.Playoff
	}
	return cfg
}

// Team loads, validates and builds one team.
func (l *Loader) Team(id string) (*football.TeamGameState, error) {
	raw, err := l.LoadMerged(id)
	if err != nil {
		return nil, err
	}
	return BuildTeam(raw)
}
