package football

type PenaltyType string

const (
	PenaltyFalseStart       PenaltyType = "false_start"
	PenaltyDelayOfGame      PenaltyType = "delay_of_game"
	PenaltyHolding          PenaltyType = "offensive_holding"
	PenaltyOffside          PenaltyType = "offside"
	PenaltyDefensiveHolding PenaltyType = "defensive_holding"
	PenaltyPassInterference PenaltyType = "pass_interference"
)

// Penalty describes an enforced flag. Yards is the signed change to the
// ball spot from the offense's point of view.
type Penalty struct {
	Type               PenaltyType `json:"type"`
	AgainstOffense     bool        `json:"againstOffense"`
	Yards              int         `json:"yards"`
	AutomaticFirstDown bool        `json:"automaticFirstDown"`
}

type Injury struct {
	PlayerID PlayerID     `json:"playerId"`
	Severity InjuryStatus `json:"severity"`
}

// PlayResult is the only externally visible record of a play. It carries
// what happened, never why: no ratings, odds or internal adjustments.
//
// New* fields describe the next snap for whichever team has the ball
// afterwards. After a score they describe the ensuing kick.
type PlayResult struct {
	Sequence      int    `json:"sequence"`
	Quarter       int    `json:"quarter"`
	TimeRemaining int    `json:"timeRemaining"`
	OffenseTeam   string `json:"offenseTeam"`

	PlayType      PlayType          `json:"playType"`
	Formation     Formation         `json:"formation,omitempty"`
	DefensiveCall DefensivePlayType `json:"defensiveCall,omitempty"`
	Outcome       Outcome           `json:"outcome"`
	YardsGained   int               `json:"yardsGained"`

	PrimaryOffensivePlayer PlayerID `json:"primaryOffensivePlayer,omitempty"`
	TargetPlayer           PlayerID `json:"targetPlayer,omitempty"`
	PrimaryDefensivePlayer PlayerID `json:"primaryDefensivePlayer,omitempty"`
	AssistDefensivePlayer  PlayerID `json:"assistDefensivePlayer,omitempty"`

	NewDown          int `json:"newDown"`
	NewDistance      int `json:"newDistance"`
	NewFieldPosition int `json:"newFieldPosition"`

	Turnover          bool `json:"turnover"`
	TurnoverOnDowns   bool `json:"turnoverOnDowns"`
	PossessionChanged bool `json:"possessionChanged"`
	Touchdown         bool `json:"touchdown"`
	FirstDown         bool `json:"firstDown"`
	Safety            bool `json:"safety"`
	InjuryOccurred    bool `json:"injuryOccurred"`
	PenaltyOccurred   bool `json:"penaltyOccurred"`
	ClockStopped      bool `json:"clockStopped"`

	PointsScored int    `json:"pointsScored,omitempty"`
	ScoringTeam  string `json:"scoringTeam,omitempty"`

	Penalty     *Penalty `json:"penalty,omitempty"`
	Injury      *Injury  `json:"injury,omitempty"`
	Description string   `json:"description"`
}
