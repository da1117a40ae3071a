// Package game runs one game from the opening kickoff to the final whistle.
// A Machine owns both team states and its random source exclusively; run
// separate games on separate machines.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/logging"
	"github.com/xtding233/gridiron-sim/internal/playcall"
	"github.com/xtding233/gridiron-sim/internal/resolve"
	"github.com/xtding233/gridiron-sim/internal/rng"
)

var (
	ErrGameOver         = errors.New("game is over")
	ErrSimulationBound  = errors.New("simulation exceeded its play limit")
	ErrInvalidPlacement = errors.New("invalid ball placement")
)

const (
	DefaultQuarterLength = 900
	OvertimeLength       = 600
	DefaultMaxPlays      = 600
	overtimeTimeouts     = 2
	halftimeRecovery     = 60
	changeRecovery       = 10
)

// Config holds per-game settings. Zero values take defaults.
type Config struct {
	GameID        string
	QuarterLength int // seconds
	Stakes        football.Stakes
	Weather       football.Weather
	// Playoff games play overtime until someone scores. Playoff and
	// championship stakes imply it.
	Playoff  bool
	MaxPlays int
	Logger   *logrus.Logger
}

func (c Config) withDefaults() Config {
	if c.GameID == "" {
		c.GameID = uuid.NewString()
	}
	if c.QuarterLength <= 0 {
		c.QuarterLength = DefaultQuarterLength
	}
	if !c.Stakes.Valid() {
		c.Stakes = football.StakesRegular
	}
	if c.Stakes == football.StakesPlayoff || c.Stakes == football.StakesChampionship {
		c.Playoff = true
	}
	if c.Weather.Dome && c.Weather.Condition == "" {
		c.Weather = football.DomeWeather()
	}
	c.Weather = c.Weather.Over(football.DefaultWeather())
	if c.MaxPlays <= 0 {
		c.MaxPlays = DefaultMaxPlays
	}
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	return c
}

// Machine is the game state machine.
type Machine struct {
	cfg   Config
	teams map[football.Side]*football.TeamGameState
	st    State
	src   rng.RandomSource
	log   *logrus.Entry

	openingKicker football.Side
	clockRunning  bool
	snaps         int
}

// NewMachine validates both rosters and sets up the opening kickoff. The
// home team kicks off; the away team kicks off to start the second half.
func NewMachine(home, away *football.TeamGameState, cfg Config, src rng.RandomSource) (*Machine, error) {
	for _, t := range []*football.TeamGameState{home, away} {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	if home.TeamID == away.TeamID {
		return nil, fmt.Errorf("%w: %s cannot play itself", football.ErrInvalidRoster, home.TeamID)
	}
	home.EnsureMaps()
	away.EnsureMaps()
	if src == nil {
		src = rng.DefaultRNG()
	}
	cfg = cfg.withDefaults()

	m := &Machine{
		cfg:           cfg,
		teams:         map[football.Side]*football.TeamGameState{football.Home: home, football.Away: away},
		src:           src,
		log:           logging.WithGame(cfg.Logger, cfg.GameID, home.TeamID, away.TeamID),
		openingKicker: football.Home,
	}
	for _, t := range m.teams {
		t.TimeoutsRemaining = football.TimeoutsPerHalf
	}
	m.st = State{
		GameID:   cfg.GameID,
		HomeTeam: home.TeamID,
		AwayTeam: away.TeamID,
		Clock:    Clock{Quarter: 1, TimeRemaining: cfg.QuarterLength},
		Stakes:   cfg.Stakes,
		Weather:  cfg.Weather,
		Playoff:  cfg.Playoff,
	}
	m.scheduleKick(m.openingKicker, football.PlayKickoff)
	m.syncTimeouts()
	return m, nil
}

// State returns a copy of the current game state.
func (m *Machine) State() State { return m.st.snapshot() }

// IsGameOver reports whether the game has been decided, or ended tied
// after a regular-season overtime.
func (m *Machine) IsGameOver() bool { return m.st.IsComplete }

// CurrentContext is the situation as the team with the ball sees it.
func (m *Machine) CurrentContext() football.Situation {
	return m.situation(m.st.Possession)
}

// CallTimeout spends one of side's timeouts and stops the clock. It
// returns false, changing nothing, when none are left.
func (m *Machine) CallTimeout(side football.Side) bool {
	t, ok := m.teams[side]
	if !ok || m.st.IsComplete || t.TimeoutsRemaining <= 0 {
		return false
	}
	t.TimeoutsRemaining--
	m.clockRunning = false
	m.syncTimeouts()
	m.log.WithFields(logrus.Fields{
		"team":      t.TeamID,
		"quarter":   m.st.Clock.Quarter,
		"remaining": t.TimeoutsRemaining,
	}).Debug("timeout")
	return true
}

// PlaceBall gives side the ball at a spot, skipping any pending kick.
func (m *Machine) PlaceBall(side football.Side, fieldPosition, down, distance int) error {
	if m.st.IsComplete {
		return ErrGameOver
	}
	if _, ok := m.teams[side]; !ok {
		return fmt.Errorf("%w: unknown side %q", ErrInvalidPlacement, side)
	}
	if fieldPosition < 1 || fieldPosition > 99 || down < 1 || down > 4 || distance < 1 || distance > 100-fieldPosition {
		return fmt.Errorf("%w: %d and %d at %d", ErrInvalidPlacement, down, distance, fieldPosition)
	}
	m.st.NeedsKickoff = false
	m.st.KickoffTeam, m.st.KickoffKind = "", ""
	m.st.Possession = side
	m.st.Down, m.st.Distance, m.st.FieldPosition = down, distance, fieldPosition
	m.st.InProgress = true
	m.clockRunning = false
	return nil
}

// ExecutePlay runs the pending kick if there is one, otherwise the next
// snap, and applies the result. A touchdown's try is appended to the play
// history as its own entry.
func (m *Machine) ExecutePlay() (football.PlayResult, error) {
	if m.st.IsComplete {
		return football.PlayResult{}, ErrGameOver
	}
	if m.snaps >= m.cfg.MaxPlays {
		return football.PlayResult{}, fmt.Errorf("%w: %d plays", ErrSimulationBound, m.snaps)
	}
	if !m.st.InProgress {
		m.st.InProgress = true
		m.log.WithField("stakes", m.cfg.Stakes).Info("game started")
	}

	offense := m.st.Possession
	var (
		res football.PlayResult
		err error
	)
	if m.st.NeedsKickoff {
		res, err = m.kick()
	} else {
		res, err = m.snap()
	}
	if err != nil {
		return football.PlayResult{}, fmt.Errorf("game %s: %w", m.cfg.GameID, err)
	}
	m.snaps++
	res = m.record(res)

	if err := m.apply(res, offense); err != nil {
		return res, fmt.Errorf("game %s: %w", m.cfg.GameID, err)
	}
	m.runClock(res)
	return res, nil
}

func (m *Machine) kick() (football.PlayResult, error) {
	kicker := m.st.KickoffTeam
	return resolve.ResolveSpecialTeamsPlay(m.teams[kicker], m.teams[kicker.Other()], m.st.KickoffKind, m.resolveContext(m.situation(kicker)), m.src)
}

func (m *Machine) snap() (football.PlayResult, error) {
	side := m.st.Possession
	off, def := m.teams[side], m.teams[side.Other()]

	m.timeoutStrategy()
	if !playcall.ShouldKneel(m.situation(side)) {
		m.huddle()
	}
	s := m.situation(side)
	pctx := playcall.Context{Situation: s, Weather: m.cfg.Weather}
	oc := playcall.SelectOffensivePlay(off.Offense, pctx, m.src)
	dc := playcall.SelectDefensivePlay(def.Defense, pctx, oc.Formation, m.src)
	return resolve.ResolvePlay(off, def, resolve.Calls{Offense: oc, Defense: dc}, m.resolveContext(s), m.src)
}

func (m *Machine) record(res football.PlayResult) football.PlayResult {
	res.Sequence = len(m.st.Plays) + 1
	m.st.Plays = append(m.st.Plays, res)
	m.log.WithFields(logrus.Fields{
		"seq":     res.Sequence,
		"quarter": res.Quarter,
		"clock":   res.TimeRemaining,
		"offense": res.OffenseTeam,
		"play":    res.PlayType,
		"outcome": res.Outcome,
		"yards":   res.YardsGained,
	}).Debug(res.Description)
	return res
}

// apply moves the score and the ball. offense is the side that snapped or
// kicked.
func (m *Machine) apply(res football.PlayResult, offense football.Side) error {
	if res.PointsScored > 0 && res.ScoringTeam != "" {
		scorer := m.sideOf(res.ScoringTeam)
		*m.st.points(scorer) += res.PointsScored
		m.recover(changeRecovery)
		if m.st.Clock.Quarter > 4 {
			m.finish("sudden death")
			return nil
		}
		switch {
		case res.Touchdown:
			if err := m.convert(scorer); err != nil {
				return err
			}
			m.scheduleKick(scorer, football.PlayKickoff)
		case res.Safety:
			m.scheduleKick(scorer.Other(), football.PlayFreeKick)
		default:
			m.scheduleKick(scorer, football.PlayKickoff)
		}
		return nil
	}

	m.st.NeedsKickoff = false
	m.st.KickoffTeam, m.st.KickoffKind = "", ""
	if res.PossessionChanged {
		offense = offense.Other()
		m.recover(changeRecovery)
	}
	m.st.Possession = offense
	m.st.Down, m.st.Distance, m.st.FieldPosition = res.NewDown, res.NewDistance, res.NewFieldPosition
	return nil
}

func (m *Machine) convert(scorer football.Side) error {
	s := m.situation(scorer)
	s.Down, s.Distance, s.FieldPosition = 1, 2, 98
	kind := playcall.ConversionChoice(s.Quarter, s.ScoreDifferential)
	res, err := resolve.ResolveConversion(m.teams[scorer], m.teams[scorer.Other()], kind, m.resolveContext(s), m.src)
	if err != nil {
		return err
	}
	m.record(res)
	*m.st.points(scorer) += res.PointsScored
	return nil
}

func (m *Machine) scheduleKick(kicker football.Side, kind football.PlayType) {
	spot := resolve.KickoffSpot
	if kind == football.PlayFreeKick {
		spot = resolve.FreeKickSpot
	}
	m.st.NeedsKickoff = true
	m.st.KickoffTeam, m.st.KickoffKind = kicker, kind
	m.st.Possession = kicker
	m.st.Down, m.st.Distance, m.st.FieldPosition = 1, 10, spot
	m.clockRunning = false
}

func (m *Machine) finish(reason string) {
	m.st.IsComplete = true
	m.st.InProgress = false
	m.clockRunning = false
	m.log.WithFields(logrus.Fields{
		"home_score": m.st.Score.Home,
		"away_score": m.st.Score.Away,
		"quarter":    m.st.Clock.Quarter,
		"plays":      len(m.st.Plays),
		"reason":     reason,
	}).Info("game final")
}

func (m *Machine) situation(side football.Side) football.Situation {
	return football.Situation{
		Down:              m.st.Down,
		Distance:          m.st.Distance,
		FieldPosition:     m.st.FieldPosition,
		Quarter:           m.st.Clock.Quarter,
		ScoreDifferential: m.st.differential(side),
		TimeRemaining:     m.st.Clock.TimeRemaining,
	}
}

func (m *Machine) resolveContext(s football.Situation) resolve.Context {
	return resolve.Context{Situation: s, Weather: m.cfg.Weather, Stakes: m.cfg.Stakes}
}

func (m *Machine) sideOf(teamID string) football.Side {
	if m.teams[football.Home].TeamID == teamID {
		return football.Home
	}
	return football.Away
}

func (m *Machine) recover(amount float64) {
	for _, t := range m.teams {
		t.Recover(amount)
	}
}

func (m *Machine) syncTimeouts() {
	m.st.Timeouts = Timeouts{
		Home: m.teams[football.Home].TimeoutsRemaining,
		Away: m.teams[football.Away].TimeoutsRemaining,
	}
}
