package outcome

import (
	"math"

	"github.com/xtding233/gridiron-sim/internal/football"
)

const (
	// KickoffTouchbackSpot is where the receiving team starts after a
	// kickoff touchback.
	KickoffTouchbackSpot = 25
	// KickoffOutOfBoundsSpot is the receiving team's spot after a kick
	// sails out of bounds.
	KickoffOutOfBoundsSpot = 40
	// PuntTouchbackSpot is the receiving team's spot after a punt touchback.
	PuntTouchbackSpot = 20
	// SnapToKickYards is the end zone depth plus the holder's spot.
	SnapToKickYards = 17
)

// FieldGoalDistance converts a line of scrimmage to a kick distance.
func FieldGoalDistance(fieldPosition int) int {
	return 100 - fieldPosition + SnapToKickYards
}

// GenerateFieldGoalTable is a made/missed table. The make share falls with
// distance and wind and rises with the kicker's rating.
func GenerateFieldGoalTable(kickerRating, distance, wind float64) (Table, error) {
	mid := 45 + (kickerRating-50)*0.3 - math.Abs(wind)*0.25
	made := 1 / (1 + math.Exp((distance-mid)/6))
	made = math.Max(0.01, math.Min(0.995, made))
	t := Table{
		{Outcome: football.OutcomeFieldGoalMade, Probability: made},
		{Outcome: football.OutcomeFieldGoalMissed, Probability: 1 - made},
	}
	if err := Normalize(t); err != nil {
		return nil, err
	}
	if err := Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// GeneratePuntTable covers how a punt ends once it is away. Yard ranges
// are return yards; the resolver decides where the ball lands.
func GeneratePuntTable(punterRating float64, fieldPosition int) (Table, error) {
	landing := float64(fieldPosition) + 38 + (punterRating-50)*0.2
	touchback := math.Max(0.02, math.Min(0.6, (landing-80)/40))
	fairCatch := 0.30
	if landing >= 85 {
		fairCatch += 0.15
	}
	t := Table{
		{Outcome: football.OutcomeBlocked, Probability: 0.008},
		{Outcome: football.OutcomeTouchback, Probability: touchback},
		{Outcome: football.OutcomeFairCatch, Probability: fairCatch},
		{Outcome: football.OutcomeOutOfBounds, Probability: 0.05},
		{Outcome: football.OutcomeReturnTouchdown, Probability: 0.004},
		{Outcome: football.OutcomeLongReturn, Probability: 0.05, Yards: YardRange{16, 45}},
		{Outcome: football.OutcomeReturn, Probability: math.Max(0.1, 1-0.112-touchback-fairCatch), Yards: YardRange{0, 15}},
	}
	if err := Normalize(t); err != nil {
		return nil, err
	}
	if err := Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// GenerateKickoffTable covers a kickoff. Yard ranges are the receiving
// team's resulting field position.
func GenerateKickoffTable(kickerPower float64) (Table, error) {
	touchback := math.Max(0.2, math.Min(0.75, 0.35+(kickerPower-50)*0.008))
	t := Table{
		{Outcome: football.OutcomeTouchback, Probability: touchback, Yards: YardRange{KickoffTouchbackSpot, KickoffTouchbackSpot}},
		{Outcome: football.OutcomeOutOfBounds, Probability: 0.01, Yards: YardRange{KickoffOutOfBoundsSpot, KickoffOutOfBoundsSpot}},
		{Outcome: football.OutcomeReturnTouchdown, Probability: 0.004, Yards: YardRange{100, 100}},
		{Outcome: football.OutcomeLongReturn, Probability: 0.06, Yards: YardRange{36, 60}},
		{Outcome: football.OutcomeReturn, Probability: 1 - 0.074 - touchback, Yards: YardRange{15, 35}},
	}
	if err := Normalize(t); err != nil {
		return nil, err
	}
	if err := Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}
