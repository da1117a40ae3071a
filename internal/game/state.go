package game

import (
	"github.com/xtding233/gridiron-sim/internal/football"
)

type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type Clock struct {
	Quarter       int `json:"quarter"`
	TimeRemaining int `json:"timeRemaining"`
}

type Timeouts struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// State is the externally visible game record. It carries the score, the
// ball and the play history, never anything a team computes internally.
type State struct {
	GameID   string `json:"gameId"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`

	Score Score `json:"score"`
	Clock Clock `json:"clock"`

	Down          int           `json:"down"`
	Distance      int           `json:"distance"`
	FieldPosition int           `json:"fieldPosition"`
	Possession    football.Side `json:"possession"`
	Timeouts      Timeouts      `json:"timeouts"`

	NeedsKickoff bool              `json:"needsKickoff"`
	KickoffTeam  football.Side     `json:"kickoffTeam,omitempty"`
	KickoffKind  football.PlayType `json:"kickoffKind,omitempty"`

	InProgress bool `json:"inProgress"`
	IsComplete bool `json:"isComplete"`

	Stakes  football.Stakes  `json:"stakes"`
	Weather football.Weather `json:"weather"`
	Playoff bool             `json:"playoff"`

	Plays []football.PlayResult `json:"plays"`
}

// Winner returns the leading side, or "" when tied.
func (s State) Winner() football.Side {
	switch {
	case s.Score.Home > s.Score.Away:
		return football.Home
	case s.Score.Away > s.Score.Home:
		return football.Away
	}
	return ""
}

func (s *State) points(side football.Side) *int {
	if side == football.Home {
		return &s.Score.Home
	}
	return &s.Score.Away
}

// differential is the score from side's point of view.
func (s State) differential(side football.Side) int {
	if side == football.Home {
		return s.Score.Home - s.Score.Away
	}
	return s.Score.Away - s.Score.Home
}

func (s State) snapshot() State {
	out := s
	out.Plays = append([]football.PlayResult(nil), s.Plays...)
	return out
}
