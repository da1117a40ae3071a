// Package football is the shared vocabulary of the engine: players, team
// game state, tendencies, conditions, play types and the public play record.
//
// Player records are owned by the roster layer. The engine reads their
// hidden attributes but never writes to them; in-game changes (fatigue,
// snaps, injuries) live on TeamGameState.
package football

import "strings"

// PlayerID is a stable key for per-player maps.
type PlayerID string

type Position string

const (
	PosQB Position = "QB"
	PosRB Position = "RB"
	PosWR Position = "WR"
	PosTE Position = "TE"
	PosOL Position = "OL"
	PosDL Position = "DL"
	PosLB Position = "LB"
	PosCB Position = "CB"
	PosS  Position = "S"
	PosK  Position = "K"
	PosP  Position = "P"
)

// Positions lists every position in depth-chart order.
var Positions = []Position{PosQB, PosRB, PosWR, PosTE, PosOL, PosDL, PosLB, PosCB, PosS, PosK, PosP}

// IsDefense reports whether the position lines up on defense.
func (p Position) IsDefense() bool {
	switch p {
	case PosDL, PosLB, PosCB, PosS:
		return true
	}
	return false
}

// IsSecondary reports whether the position plays in coverage deep.
func (p Position) IsSecondary() bool { return p == PosCB || p == PosS }

// Skill names one hidden true-skill attribute.
type Skill string

const (
	SkillPassing      Skill = "passing"
	SkillRushing      Skill = "rushing"
	SkillReceiving    Skill = "receiving"
	SkillPassBlocking Skill = "pass_blocking"
	SkillRunBlocking  Skill = "run_blocking"
	SkillPassRush     Skill = "pass_rush"
	SkillRunDefense   Skill = "run_defense"
	SkillTackling     Skill = "tackling"
	SkillCoverage     Skill = "coverage"
	SkillKickPower    Skill = "kick_power"
	SkillKickAccuracy Skill = "kick_accuracy"
	SkillPunting      Skill = "punting"
)

// FitGrade grades how well a player suits a scheme or a role.
type FitGrade string

const (
	FitPerfect  FitGrade = "perfect"
	FitGood     FitGrade = "good"
	FitNeutral  FitGrade = "neutral"
	FitPoor     FitGrade = "poor"
	FitTerrible FitGrade = "terrible"
)

type InjuryStatus string

const (
	Healthy      InjuryStatus = "healthy"
	Questionable InjuryStatus = "questionable"
	Doubtful     InjuryStatus = "doubtful"
	Out          InjuryStatus = "out"
)

func (s InjuryStatus) severity() int {
	switch s {
	case Questionable:
		return 1
	case Doubtful:
		return 2
	case Out:
		return 3
	}
	return 0
}

// Worse returns the more severe of two statuses.
func Worse(a, b InjuryStatus) InjuryStatus {
	if b.severity() > a.severity() {
		return b
	}
	if a == "" {
		return Healthy
	}
	return a
}

// Player is an externally owned roster record. Everything except identity
// is hidden from the user and must never leave the engine.
type Player struct {
	ID       PlayerID
	Name     string
	Position Position

	Skills      map[Skill]float64 // true skill, 1-100
	ItFactor    float64           // clutch temperament, 0-100; 50 is indifferent
	SchemeFits  map[string]FitGrade
	RoleFits    map[string]FitGrade
	Consistency *ConsistencyProfile
	Injury      InjuryStatus
}

// TrueSkill returns the hidden skill value, 50 when unrated.
func (p *Player) TrueSkill(s Skill) float64 {
	if v, ok := p.Skills[s]; ok {
		return v
	}
	return 50
}

// ShortName renders "J. Smith" style names for play descriptions.
func (p *Player) ShortName() string {
	if p == nil {
		return "a teammate"
	}
	parts := strings.Fields(p.Name)
	if len(parts) < 2 {
		if p.Name == "" {
			return string(p.ID)
		}
		return p.Name
	}
	return parts[0][:1] + ". " + strings.Join(parts[1:], " ")
}

// PositionCoach holds a coach's working relationships, keyed by player.
// Chemistry runs -100 (feud) to 100 (devoted).
type PositionCoach struct {
	ID        string
	Name      string
	Position  Position
	Chemistry map[PlayerID]float64
}

// ChemistryWith returns the relationship value and whether one exists.
func (c *PositionCoach) ChemistryWith(id PlayerID) (float64, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.Chemistry[id]
	return v, ok
}
