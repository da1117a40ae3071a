package football

type PlayType string

const (
	PlayInsideRun  PlayType = "inside_run"
	PlayOutsideRun PlayType = "outside_run"
	PlayQBSneak    PlayType = "qb_sneak"
	PlayShortPass  PlayType = "short_pass"
	PlayMediumPass PlayType = "medium_pass"
	PlayDeepPass   PlayType = "deep_pass"
	PlayScreenPass PlayType = "screen_pass"
	PlayPlayAction PlayType = "play_action"
	PlayKneel      PlayType = "kneel"
	PlayPunt       PlayType = "punt"
	PlayFieldGoal  PlayType = "field_goal"
	PlayKickoff    PlayType = "kickoff"
	PlayExtraPoint PlayType = "extra_point"
	PlayTwoPoint   PlayType = "two_point"
	PlayFreeKick   PlayType = "free_kick"
)

// IsPass reports whether the play is a called pass.
func (p PlayType) IsPass() bool {
	switch p {
	case PlayShortPass, PlayMediumPass, PlayDeepPass, PlayScreenPass, PlayPlayAction:
		return true
	}
	return false
}

// IsRun reports whether the play is a designed run.
func (p PlayType) IsRun() bool {
	switch p {
	case PlayInsideRun, PlayOutsideRun, PlayQBSneak:
		return true
	}
	return false
}

// IsSpecialTeams reports kicking plays.
func (p PlayType) IsSpecialTeams() bool {
	switch p {
	case PlayPunt, PlayFieldGoal, PlayKickoff, PlayExtraPoint, PlayFreeKick:
		return true
	}
	return false
}

type Formation string

const (
	FormationShotgun    Formation = "shotgun"
	FormationSingleback Formation = "singleback"
	FormationIForm      Formation = "i_form"
	FormationPistol     Formation = "pistol"
	FormationEmpty      Formation = "empty"
	FormationGoalLine   Formation = "goal_line"
	FormationVictory    Formation = "victory"
	FormationPunt       Formation = "punt"
	FormationFieldGoal  Formation = "field_goal"
)

type DefensivePlayType string

const (
	DefenseRunStop     DefensivePlayType = "run_stop"
	DefenseBaseZone    DefensivePlayType = "base_zone"
	DefenseManCoverage DefensivePlayType = "man_coverage"
	DefenseBlitz       DefensivePlayType = "blitz"
	DefensePrevent     DefensivePlayType = "prevent"
	DefenseSpecial     DefensivePlayType = "special_teams"
)

// Outcome names the result category of one attempt.
type Outcome string

const (
	OutcomeTouchdown      Outcome = "touchdown"
	OutcomeBigGain        Outcome = "big_gain"
	OutcomeGoodGain       Outcome = "good_gain"
	OutcomeModerateGain   Outcome = "moderate_gain"
	OutcomeShortGain      Outcome = "short_gain"
	OutcomeNoGain         Outcome = "no_gain"
	OutcomeLoss           Outcome = "loss"
	OutcomeBigLoss        Outcome = "big_loss"
	OutcomeSack           Outcome = "sack"
	OutcomeIncomplete     Outcome = "incomplete"
	OutcomeInterception   Outcome = "interception"
	OutcomeFumble         Outcome = "fumble"
	OutcomeFumbleLost     Outcome = "fumble_lost"
	OutcomePenaltyOffense Outcome = "penalty_offense"
	OutcomePenaltyDefense Outcome = "penalty_defense"

	OutcomeKneelDown Outcome = "kneel_down"

	OutcomeFieldGoalMade   Outcome = "field_goal_made"
	OutcomeFieldGoalMissed Outcome = "field_goal_missed"

	OutcomeTouchback       Outcome = "touchback"
	OutcomeFairCatch       Outcome = "fair_catch"
	OutcomeReturn          Outcome = "return"
	OutcomeLongReturn      Outcome = "long_return"
	OutcomeReturnTouchdown Outcome = "return_touchdown"
	OutcomeBlocked         Outcome = "blocked"
	OutcomeOutOfBounds     Outcome = "out_of_bounds"

	OutcomeConversionGood   Outcome = "conversion_good"
	OutcomeConversionFailed Outcome = "conversion_failed"
)

// Side identifies the home or away team within one game.
type Side string

const (
	Home Side = "home"
	Away Side = "away"
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == Home {
		return Away
	}
	return Home
}

// Situation is the minimal tuple play calling and outcome tables need.
// ScoreDifferential is from the offense's point of view.
type Situation struct {
	Down              int `json:"down"`
	Distance          int `json:"distance"`
	FieldPosition     int `json:"fieldPosition"`
	Quarter           int `json:"quarter"`
	ScoreDifferential int `json:"scoreDifferential"`
	TimeRemaining     int `json:"timeRemaining"`
}

// YardsToEndzone is the distance to the opponent's goal line.
func (s Situation) YardsToEndzone() int { return 100 - s.FieldPosition }

// InRedZone reports the ball inside the opponent's 20.
func (s Situation) InRedZone() bool { return s.YardsToEndzone() <= 20 }

// IsTwoMinute reports the last two minutes of either half.
func (s Situation) IsTwoMinute() bool {
	return (s.Quarter == 2 || s.Quarter >= 4) && s.TimeRemaining <= 120
}

// IsLateGame reports the fourth quarter or overtime.
func (s Situation) IsLateGame() bool { return s.Quarter >= 4 }

// OutOfBoundsStopsClock reports whether a runner going out of bounds stops
// the clock: only in the last two minutes of the first half and the last
// five minutes of the fourth quarter or overtime.
func (s Situation) OutOfBoundsStopsClock() bool {
	return (s.Quarter == 2 && s.TimeRemaining <= 120) || (s.Quarter >= 4 && s.TimeRemaining <= 300)
}
