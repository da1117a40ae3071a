package football

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRoster = errors.New("invalid team game state")

const (
	TimeoutsPerHalf = 3
	maxFatigue      = 100
)

// TeamGameState is one team's mutable session state for a single game. It
// is built by the lineup layer, mutated in place while the game runs and
// discarded afterwards. A state must not be shared between games.
type TeamGameState struct {
	TeamID string
	Name   string

	// DepthChart lists players per position, starter first.
	DepthChart map[Position][]*Player
	Coaches    map[Position]*PositionCoach

	Offense         OffensiveTendencies
	Defense         DefensiveTendencies
	OffensiveScheme string
	DefensiveScheme string

	TimeoutsRemaining int
	Fatigue           map[PlayerID]float64 // 0-100
	SnapCounts        map[PlayerID]int
	WeeklyVariance    map[PlayerID]float64
	Injuries          map[PlayerID]InjuryStatus // suffered during this game
}

// NewTeamGameState returns an empty state with league-default tendencies.
func NewTeamGameState(teamID, name string) *TeamGameState {
	return &TeamGameState{
		TeamID:            teamID,
		Name:              name,
		DepthChart:        make(map[Position][]*Player),
		Coaches:           make(map[Position]*PositionCoach),
		Offense:           DefaultOffensiveTendencies(),
		Defense:           DefaultDefensiveTendencies(),
		TimeoutsRemaining: TimeoutsPerHalf,
		Fatigue:           make(map[PlayerID]float64),
		SnapCounts:        make(map[PlayerID]int),
		WeeklyVariance:    make(map[PlayerID]float64),
		Injuries:          make(map[PlayerID]InjuryStatus),
	}
}

// AddPlayer appends p to the bottom of its position's depth chart.
func (t *TeamGameState) AddPlayer(p *Player) {
	if t.DepthChart == nil {
		t.DepthChart = make(map[Position][]*Player)
	}
	t.DepthChart[p.Position] = append(t.DepthChart[p.Position], p)
}

// Validate checks minimum personnel: at least 1 QB, 5 OL, 11 defenders,
// a kicker and a punter.
func (t *TeamGameState) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil team", ErrInvalidRoster)
	}
	var errs []string
	if t.TeamID == "" {
		errs = append(errs, "team id is required")
	}
	if n := len(t.DepthChart[PosQB]); n < 1 {
		errs = append(errs, "at least 1 QB is required")
	}
	if n := len(t.DepthChart[PosOL]); n < 5 {
		errs = append(errs, fmt.Sprintf("at least 5 OL are required, have %d", n))
	}
	defenders := 0
	for _, pos := range []Position{PosDL, PosLB, PosCB, PosS} {
		defenders += len(t.DepthChart[pos])
	}
	if defenders < 11 {
		errs = append(errs, fmt.Sprintf("at least 11 defenders are required, have %d", defenders))
	}
	if len(t.DepthChart[PosK]) < 1 {
		errs = append(errs, "a kicker is required")
	}
	if len(t.DepthChart[PosP]) < 1 {
		errs = append(errs, "a punter is required")
	}
	seen := make(map[PlayerID]bool)
	for _, pos := range Positions {
		for i, p := range t.DepthChart[pos] {
			if p == nil || p.ID == "" {
				errs = append(errs, fmt.Sprintf("%s[%d] has no player id", pos, i))
				continue
			}
			if seen[p.ID] {
				errs = append(errs, fmt.Sprintf("player %s listed twice", p.ID))
			}
			seen[p.ID] = true
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w %s: %s", ErrInvalidRoster, t.TeamID, strings.Join(errs, "; "))
	}
	return nil
}

// StatusOf returns the worse of the player's pregame status and any injury
// suffered in this game.
func (t *TeamGameState) StatusOf(p *Player) InjuryStatus {
	if p == nil {
		return Out
	}
	return Worse(p.Injury, t.Injuries[p.ID])
}

// Starters returns up to n players at pos in depth order, skipping anyone
// ruled out. Out players fill remaining slots only when nobody else is left.
func (t *TeamGameState) Starters(pos Position, n int) []*Player {
	depth := t.DepthChart[pos]
	out := make([]*Player, 0, n)
	var benched []*Player
	for _, p := range depth {
		if len(out) == n {
			break
		}
		if t.StatusOf(p) == Out {
			benched = append(benched, p)
			continue
		}
		out = append(out, p)
	}
	for _, p := range benched {
		if len(out) == n {
			break
		}
		out = append(out, p)
	}
	return out
}

// Starter returns the first available player at pos, or nil.
func (t *TeamGameState) Starter(pos Position) *Player {
	s := t.Starters(pos, 1)
	if len(s) == 0 {
		return nil
	}
	return s[0]
}

// DepthIndex returns p's zero-based slot within its position group.
func (t *TeamGameState) DepthIndex(p *Player) int {
	for i, q := range t.DepthChart[p.Position] {
		if q.ID == p.ID {
			return i
		}
	}
	return len(t.DepthChart[p.Position])
}

// CoachFor returns the position coach, or nil.
func (t *TeamGameState) CoachFor(pos Position) *PositionCoach {
	return t.Coaches[pos]
}

// Roster returns every player in depth-chart order.
func (t *TeamGameState) Roster() []*Player {
	var all []*Player
	for _, pos := range Positions {
		all = append(all, t.DepthChart[pos]...)
	}
	return all
}

// RecordSnaps adds a snap and fatigue to every participant.
func (t *TeamGameState) RecordSnaps(players []*Player, fatigue float64) {
	for _, p := range players {
		if p == nil {
			continue
		}
		t.SnapCounts[p.ID]++
		f := t.Fatigue[p.ID] + fatigue
		if f > maxFatigue {
			f = maxFatigue
		}
		t.Fatigue[p.ID] = f
	}
}

// Recover lowers every player's fatigue by amount.
func (t *TeamGameState) Recover(amount float64) {
	for id, f := range t.Fatigue {
		f -= amount
		if f < 0 {
			f = 0
		}
		t.Fatigue[id] = f
	}
}

// SetInjury records an in-game injury, never downgrading a worse one.
func (t *TeamGameState) SetInjury(id PlayerID, status InjuryStatus) {
	t.Injuries[id] = Worse(t.Injuries[id], status)
}

// EnsureMaps allocates any nil per-player map so a hand-built state can be
// mutated safely.
func (t *TeamGameState) EnsureMaps() {
	if t.DepthChart == nil {
		t.DepthChart = make(map[Position][]*Player)
	}
	if t.Coaches == nil {
		t.Coaches = make(map[Position]*PositionCoach)
	}
	if t.Fatigue == nil {
		t.Fatigue = make(map[PlayerID]float64)
	}
	if t.SnapCounts == nil {
		t.SnapCounts = make(map[PlayerID]int)
	}
	if t.WeeklyVariance == nil {
		t.WeeklyVariance = make(map[PlayerID]float64)
	}
	if t.Injuries == nil {
		t.Injuries = make(map[PlayerID]InjuryStatus)
	}
}
