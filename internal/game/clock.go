package game

import (
	"github.com/sirupsen/logrus"

	"github.com/xtding233/gridiron-sim/internal/football"
	"github.com/xtding233/gridiron-sim/internal/rng"
)

const kneelRunoff = 40

// playTime is how long the ball is live.
func playTime(res football.PlayResult, src rng.RandomSource) int {
	switch res.PlayType {
	case football.PlayKneel:
		return kneelRunoff
	case football.PlayKickoff, football.PlayFreeKick:
		if res.Outcome == football.OutcomeTouchback {
			return 0
		}
		return rng.IntBetween(src, 4, 8)
	case football.PlayPunt:
		return rng.IntBetween(src, 8, 12)
	case football.PlayFieldGoal:
		return rng.IntBetween(src, 4, 6)
	}
	switch res.Outcome {
	case football.OutcomePenaltyOffense, football.OutcomePenaltyDefense:
		return 0
	}
	gain := res.YardsGained
	if gain < 0 {
		gain = -gain
	}
	return rng.IntBetween(src, 4, 7) + gain/10
}

// huddle runs the clock between snaps. It never takes the last second, so
// the offense always gets its snap off.
func (m *Machine) huddle() {
	if !m.clockRunning {
		return
	}
	s := m.CurrentContext()
	var secs int
	switch {
	case s.IsTwoMinute() && (s.Quarter == 2 || s.ScoreDifferential <= 0):
		secs = rng.IntBetween(m.src, 6, 12)
	case s.IsLateGame() && s.ScoreDifferential > 0:
		secs = rng.IntBetween(m.src, 36, 42)
	default:
		secs = rng.IntBetween(m.src, 30, 40)
	}
	secs = min(secs, m.st.Clock.TimeRemaining-1)
	if secs > 0 {
		m.st.Clock.TimeRemaining -= secs
	}
}

// timeoutStrategy stops a running clock late in a half: the offense when it
// needs points, otherwise a trailing defense.
func (m *Machine) timeoutStrategy() {
	if !m.clockRunning {
		return
	}
	s := m.CurrentContext()
	if !s.IsTwoMinute() {
		return
	}
	off := m.st.Possession
	if s.Quarter == 2 || s.ScoreDifferential <= 0 {
		m.CallTimeout(off)
		return
	}
	m.CallTimeout(off.Other())
}

func (m *Machine) runClock(res football.PlayResult) {
	c := &m.st.Clock
	c.TimeRemaining = max(0, c.TimeRemaining-playTime(res, m.src))
	if m.st.IsComplete {
		return
	}
	m.clockRunning = !res.ClockStopped && !res.PossessionChanged && !m.st.NeedsKickoff
	if c.TimeRemaining == 0 {
		m.endQuarter()
	}
}

func (m *Machine) endQuarter() {
	c := &m.st.Clock
	m.log.WithFields(logrus.Fields{
		"quarter":    c.Quarter,
		"home_score": m.st.Score.Home,
		"away_score": m.st.Score.Away,
	}).Info("end of quarter")

	m.clockRunning = false
	switch {
	case c.Quarter == 1 || c.Quarter == 3:
		c.Quarter++
		c.TimeRemaining = m.cfg.QuarterLength
	case c.Quarter == 2:
		c.Quarter++
		c.TimeRemaining = m.cfg.QuarterLength
		m.halftime()
	case m.st.Score.Home != m.st.Score.Away:
		m.finish("time expired")
	case c.Quarter > 4 && !m.cfg.Playoff:
		m.finish("overtime expired")
	default:
		c.Quarter++
		c.TimeRemaining = min(OvertimeLength, m.cfg.QuarterLength)
		m.overtime()
	}
}

func (m *Machine) halftime() {
	for _, t := range m.teams {
		t.TimeoutsRemaining = football.TimeoutsPerHalf
		t.Recover(halftimeRecovery)
	}
	m.syncTimeouts()
	m.scheduleKick(m.openingKicker.Other(), football.PlayKickoff)
}

// overtime tosses a coin for the receiving team.
func (m *Machine) overtime() {
	receiver := football.Home
	if rng.Chance(0.5, m.src) {
		receiver = football.Away
	}
	for _, t := range m.teams {
		t.TimeoutsRemaining = overtimeTimeouts
	}
	m.syncTimeouts()
	m.scheduleKick(receiver.Other(), football.PlayKickoff)
	m.log.WithFields(logrus.Fields{
		"period":    m.st.Clock.Quarter - 4,
		"receiving": m.teams[receiver].TeamID,
	}).Info("overtime")
}
