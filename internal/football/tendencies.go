package football

// Tendencies is a coordinator's play-calling profile. It is either
// OffensiveTendencies or DefensiveTendencies; consumers switch on the
// concrete type.
type Tendencies interface {
	isTendencies()
}

// OffensiveTendencies are baseline rates in [0,1] before situational
// adjustment.
type OffensiveTendencies struct {
	PassRate                 float64 `yaml:"pass_rate"`
	PlayActionRate           float64 `yaml:"play_action_rate"`
	DeepShotRate             float64 `yaml:"deep_shot_rate"`
	ScreenRate               float64 `yaml:"screen_rate"`
	FourthDownAggressiveness float64 `yaml:"fourth_down_aggressiveness"`
}

// DefensiveTendencies are baseline rates in [0,1]; whatever is left after
// the listed calls is played as base zone.
type DefensiveTendencies struct {
	BlitzRate       float64 `yaml:"blitz_rate"`
	ManCoverageRate float64 `yaml:"man_coverage_rate"`
	RunStopRate     float64 `yaml:"run_stop_rate"`
	PreventRate     float64 `yaml:"prevent_rate"`
}

func (OffensiveTendencies) isTendencies() {}
func (DefensiveTendencies) isTendencies() {}

func DefaultOffensiveTendencies() OffensiveTendencies {
	return OffensiveTendencies{
		PassRate:                 0.56,
		PlayActionRate:           0.12,
		DeepShotRate:             0.10,
		ScreenRate:               0.08,
		FourthDownAggressiveness: 0.30,
	}
}

func DefaultDefensiveTendencies() DefensiveTendencies {
	return DefensiveTendencies{
		BlitzRate:       0.25,
		ManCoverageRate: 0.30,
		RunStopRate:     0.20,
		PreventRate:     0.03,
	}
}
