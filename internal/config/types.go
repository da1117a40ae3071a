// Package config loads team presets from YAML and turns them into the game
// states the engine plays with.
package config

import "github.com/xtding233/gridiron-sim/internal/football"

// RawConfig is one YAML file as written: configs/default.yaml or
// configs/teams/<team>.yaml. Pointer fields distinguish unset from zero so
// a team file only overrides what it names.
type RawConfig struct {
	Version string      `yaml:"version"`
	Team    *TeamInfo   `yaml:"team,omitempty"`
	Offense *OffenseCfg `yaml:"offense,omitempty"`
	Defense *DefenseCfg `yaml:"defense,omitempty"`
	Game    *GameCfg    `yaml:"game,omitempty"`
	Roster  []PlayerCfg `yaml:"roster,omitempty"`
	Coaches []CoachCfg  `yaml:"coaches,omitempty"`
	Notes   string      `yaml:"notes,omitempty"`
}

type TeamInfo struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	OffensiveScheme string `yaml:"offensive_scheme"`
	DefensiveScheme string `yaml:"defensive_scheme"`
}

type OffenseCfg struct {
	PassRate                 *float64 `yaml:"pass_rate"`
	PlayActionRate           *float64 `yaml:"play_action_rate"`
	DeepShotRate             *float64 `yaml:"deep_shot_rate"`
	ScreenRate               *float64 `yaml:"screen_rate"`
	FourthDownAggressiveness *float64 `yaml:"fourth_down_aggressiveness"`
}

type DefenseCfg struct {
	BlitzRate       *float64 `yaml:"blitz_rate"`
	ManCoverageRate *float64 `yaml:"man_coverage_rate"`
	RunStopRate     *float64 `yaml:"run_stop_rate"`
	PreventRate     *float64 `yaml:"prevent_rate"`
}

// GameCfg holds game defaults. A home team's file can set its own
// weather, e.g. a dome.
type GameCfg struct {
	QuarterLength *int              `yaml:"quarter_length"`
	Stakes        string            `yaml:"stakes,omitempty"`
	Weather       *football.Weather `yaml:"weather,omitempty"`
	MaxPlays      *int              `yaml:"max_plays"`
}

// PlayerCfg is one roster entry. Depth follows list order within a
// position.
type PlayerCfg struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Position    string             `yaml:"position"`
	Skills      map[string]float64 `yaml:"skills"`
	ItFactor    *float64           `yaml:"it_factor,omitempty"`
	SchemeFits  map[string]string  `yaml:"scheme_fits,omitempty"`
	RoleFits    map[string]string  `yaml:"role_fits,omitempty"`
	Consistency string             `yaml:"consistency,omitempty"`
	Injury      string             `yaml:"injury,omitempty"`
}

type CoachCfg struct {
	ID        string             `yaml:"id"`
	Name      string             `yaml:"name"`
	Position  string             `yaml:"position"`
	Chemistry map[string]float64 `yaml:"chemistry,omitempty"`
}

// GameOverrides carries per-request settings that win over file defaults.
type GameOverrides struct {
	QuarterLength *int
	Stakes        *string
	Weather       *football.Weather
	Playoff       *bool
}
