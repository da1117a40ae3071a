package outcome

import "github.com/xtding233/gridiron-sim/internal/football"

// IsTurnover reports outcomes that hand the ball to the defense.
func IsTurnover(o football.Outcome) bool {
	return o == football.OutcomeInterception || o == football.OutcomeFumbleLost
}

// IsPositiveOutcome reports outcomes that gain yards for the offense.
func IsPositiveOutcome(o football.Outcome) bool {
	switch o {
	case football.OutcomeTouchdown, football.OutcomeBigGain, football.OutcomeGoodGain,
		football.OutcomeModerateGain, football.OutcomeShortGain:
		return true
	}
	return false
}

// IsNegativeOutcome reports drive-stalling outcomes short of a turnover.
func IsNegativeOutcome(o football.Outcome) bool {
	switch o {
	case football.OutcomeLoss, football.OutcomeBigLoss, football.OutcomeSack,
		football.OutcomeIncomplete, football.OutcomeFumble:
		return true
	}
	return false
}
