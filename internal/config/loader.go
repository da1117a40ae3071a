package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var ErrUnknownTeam = errors.New("unknown team")

const defaultKey = "$default"

// Paths locates the preset files under one base directory.
type Paths struct {
	BaseDir string // e.g. ./configs
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "default.yaml")
}
func (p Paths) TeamsDir() string {
	return filepath.Join(p.BaseDir, "teams")
}
func (p Paths) TeamPath(team string) string {
	return filepath.Join(p.TeamsDir(), team+".yaml")
}

// Loader reads YAML presets and merges default -> team.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: team id or "$default"
}

// NewLoader creates a preset loader rooted at baseDir.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

func (l *Loader) Paths() Paths { return l.paths }

// Defaults returns the league default file alone.
func (l *Loader) Defaults() (RawConfig, error) {
	l.mu.RLock()
	if cfg, ok := l.cache[defaultKey]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	def, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	l.mu.Lock()
	l.cache[defaultKey] = def
	l.mu.Unlock()
	return def, nil
}

// LoadMerged returns the team's file merged over the defaults. A team
// without a file is ErrUnknownTeam.
func (l *Loader) LoadMerged(team string) (RawConfig, error) {
	if team == "" || strings.ContainsAny(team, `/\.`) {
		return RawConfig{}, fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}
	l.mu.RLock()
	if cfg, ok := l.cache[team]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	def, err := l.Defaults()
	if err != nil {
		return RawConfig{}, err
	}
	path := l.paths.TeamPath(team)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return RawConfig{}, fmt.Errorf("%w: %s", ErrUnknownTeam, team)
	}
	teamCfg, err := readYAML(path)
	if err != nil {
		return RawConfig{}, fmt.Errorf("read team %s: %w", team, err)
	}

	merged := mergeRaw(def, teamCfg)
	if merged.Team == nil {
		merged.Team = &TeamInfo{}
	}
	if merged.Team.ID == "" {
		merged.Team.ID = team
	}

	l.mu.Lock()
	l.cache[team] = merged
	l.mu.Unlock()
	return merged, nil
}

// TeamIDs lists every team with a preset file, sorted.
func (l *Loader) TeamIDs() ([]string, error) {
	entries, err := os.ReadDir(l.paths.TeamsDir())
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(ids)
	return ids, nil
}

// WatchPaths are the files whose changes should invalidate the cache.
func (l *Loader) WatchPaths() []string {
	paths := []string{l.paths.DefaultPath()}
	ids, err := l.TeamIDs()
	if err != nil {
		return paths
	}
	for _, id := range ids {
		paths = append(paths, l.paths.TeamPath(id))
	}
	return paths
}

// Invalidate clears the loader's cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads a YAML file into RawConfig. A missing file is a zero
// config, not an error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// mergeRaw overlays b on a: set scalars and pointers in b win, a non-empty
// roster or coaching staff in b replaces a's.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	switch {
	case out.Team == nil && b.Team != nil:
		c := *b.Team
		out.Team = &c
	case out.Team != nil && b.Team != nil:
		c := *out.Team
		overString(&c.ID, b.Team.ID)
		overString(&c.Name, b.Team.Name)
		overString(&c.OffensiveScheme, b.Team.OffensiveScheme)
		overString(&c.DefensiveScheme, b.Team.DefensiveScheme)
		out.Team = &c
	}

	switch {
	case out.Offense == nil && b.Offense != nil:
		c := *b.Offense
		out.Offense = &c
	case out.Offense != nil && b.Offense != nil:
		c := *out.Offense
		over(&c.PassRate, b.Offense.PassRate)
		over(&c.PlayActionRate, b.Offense.PlayActionRate)
		over(&c.DeepShotRate, b.Offense.DeepShotRate)
		over(&c.ScreenRate, b.Offense.ScreenRate)
		over(&c.FourthDownAggressiveness, b.Offense.FourthDownAggressiveness)
		out.Offense = &c
	}

	switch {
	case out.Defense == nil && b.Defense != nil:
		c := *b.Defense
		out.Defense = &c
	case out.Defense != nil && b.Defense != nil:
		c := *out.Defense
		over(&c.BlitzRate, b.Defense.BlitzRate)
		over(&c.ManCoverageRate, b.Defense.ManCoverageRate)
		over(&c.RunStopRate, b.Defense.RunStopRate)
		over(&c.PreventRate, b.Defense.PreventRate)
		out.Defense = &c
	}

	switch {
	case out.Game == nil && b.Game != nil:
		c := *b.Game
		out.Game = &c
	case out.Game != nil && b.Game != nil:
		c := *out.Game
		over(&c.QuarterLength, b.Game.QuarterLength)
		over(&c.MaxPlays, b.Game.MaxPlays)
		over(&c.Weather, b.Game.Weather)
		overString(&c.Stakes, b.Game.Stakes)
		out.Game = &c
	}

	if len(b.Roster) > 0 {
		out.Roster = append([]PlayerCfg(nil), b.Roster...)
	}
	if len(b.Coaches) > 0 {
		out.Coaches = append([]CoachCfg(nil), b.Coaches...)
	}
	return out
}

func over[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func overString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}
