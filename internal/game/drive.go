package game

import (
	"fmt"

	"github.com/xtding233/gridiron-sim/internal/football"
)

// driveLimit bounds one drive independently of the game's play limit.
const driveLimit = 200

type DriveResult string

const (
	DriveTouchdown       DriveResult = "touchdown"
	DriveFieldGoal       DriveResult = "field_goal"
	DriveMissedFieldGoal DriveResult = "missed_field_goal"
	DrivePunt            DriveResult = "punt"
	DriveTurnover        DriveResult = "turnover"
	DriveTurnoverOnDowns DriveResult = "turnover_on_downs"
	DriveSafety          DriveResult = "safety"
	DriveEndOfHalf       DriveResult = "end_of_half"
	DriveEndOfGame       DriveResult = "end_of_game"
)

// DriveSummary lists every play of one possession, including the kick that
// started it and the try after a touchdown.
type DriveSummary struct {
	Team               string                `json:"team"`
	StartFieldPosition int                   `json:"startFieldPosition"`
	Result             DriveResult           `json:"result"`
	Plays              []football.PlayResult `json:"plays"`
}

// SimulateDrive plays until the team with the ball (or about to receive a
// kick) gives it up, scores, or runs out of half.
func (m *Machine) SimulateDrive() (DriveSummary, error) {
	if m.st.IsComplete {
		return DriveSummary{}, ErrGameOver
	}
	side := m.st.Possession
	if m.st.NeedsKickoff {
		side = m.st.KickoffTeam.Other()
	}
	team := m.teams[side].TeamID
	d := DriveSummary{Team: team, StartFieldPosition: m.st.FieldPosition}
	start := len(m.st.Plays)

	for n := 0; ; n++ {
		if n >= driveLimit {
			return d, fmt.Errorf("%w: drive of %d plays", ErrSimulationBound, n)
		}
		quarter := m.st.Clock.Quarter
		res, err := m.ExecutePlay()
		d.Plays = append([]football.PlayResult(nil), m.st.Plays[start:]...)
		if err != nil {
			return d, err
		}
		if isKick(res.PlayType) && !res.Touchdown {
			d.StartFieldPosition = res.NewFieldPosition
			continue
		}
		if r, ok := playEndsDrive(res, team); ok {
			d.Result = r
			return d, nil
		}
		switch {
		case m.st.IsComplete:
			d.Result = DriveEndOfGame
			return d, nil
		case m.st.Clock.Quarter != quarter && (quarter == 2 || quarter >= 4):
			d.Result = DriveEndOfHalf
			return d, nil
		}
	}
}

func isKick(pt football.PlayType) bool {
	return pt == football.PlayKickoff || pt == football.PlayFreeKick
}

func playEndsDrive(res football.PlayResult, team string) (DriveResult, bool) {
	switch {
	case res.Touchdown && res.ScoringTeam == team:
		return DriveTouchdown, true
	case res.Safety:
		return DriveSafety, true
	case res.PlayType == football.PlayPunt:
		return DrivePunt, true
	case res.Outcome == football.OutcomeFieldGoalMade:
		return DriveFieldGoal, true
	case res.Outcome == football.OutcomeFieldGoalMissed:
		return DriveMissedFieldGoal, true
	case res.TurnoverOnDowns:
		return DriveTurnoverOnDowns, true
	case res.Turnover, res.Touchdown:
		return DriveTurnover, true
	}
	return "", false
}

// SimulateQuarter plays out the current quarter.
func (m *Machine) SimulateQuarter() error {
	if m.st.IsComplete {
		return ErrGameOver
	}
	q := m.st.Clock.Quarter
	for !m.st.IsComplete && m.st.Clock.Quarter == q {
		if _, err := m.ExecutePlay(); err != nil {
			return err
		}
	}
	return nil
}

// SimulateToEnd plays until the game is over and returns the final state.
func (m *Machine) SimulateToEnd() (State, error) {
	for !m.st.IsComplete {
		if _, err := m.ExecutePlay(); err != nil {
			return m.State(), err
		}
	}
	return m.State(), nil
}
