package football

type WeatherCondition string

const (
	WeatherClear     WeatherCondition = "clear"
	WeatherCloudy    WeatherCondition = "cloudy"
	WeatherRain      WeatherCondition = "rain"
	WeatherHeavyRain WeatherCondition = "heavy_rain"
	WeatherSnow      WeatherCondition = "snow"
)

// Weather at kickoff; it does not change during a game.
type Weather struct {
	Condition    WeatherCondition `json:"condition" yaml:"condition"`
	TemperatureF float64          `json:"temperatureF" yaml:"temperature_f"`
	WindMPH      float64          `json:"windMph" yaml:"wind_mph"`
	Dome         bool             `json:"dome" yaml:"dome"`
}

// Precipitation reports rain or snow outside a dome.
func (w Weather) Precipitation() bool {
	if w.Dome {
		return false
	}
	switch w.Condition {
	case WeatherRain, WeatherHeavyRain, WeatherSnow:
		return true
	}
	return false
}

// EffectiveWind is the wind that reaches the field.
func (w Weather) EffectiveWind() float64 {
	if w.Dome {
		return 0
	}
	return w.WindMPH
}

// DefaultTemperatureF is the kickoff temperature when nothing names one.
const DefaultTemperatureF = 65

// DefaultWeather is an open-air game on a mild, clear day.
func DefaultWeather() Weather {
	return Weather{Condition: WeatherClear, TemperatureF: DefaultTemperatureF}
}

// Over lays w on top of base. Fields w leaves zero keep base's value, and
// a dome on either side stays a dome.
func (w Weather) Over(base Weather) Weather {
	out := base
	if w.Condition != "" {
		out.Condition = w.Condition
	}
	if w.TemperatureF != 0 {
		out.TemperatureF = w.TemperatureF
	}
	if w.WindMPH != 0 {
		out.WindMPH = w.WindMPH
	}
	out.Dome = base.Dome || w.Dome
	return out
}

// DomeWeather is a controlled indoor environment.
func DomeWeather() Weather {
	return Weather{Condition: WeatherClear, TemperatureF: 72, Dome: true}
}

// Stakes is the qualitative importance of a game.
type Stakes string

const (
	StakesPreseason    Stakes = "preseason"
	StakesRegular      Stakes = "regular"
	StakesRivalry      Stakes = "rivalry"
	StakesPlayoff      Stakes = "playoff"
	StakesChampionship Stakes = "championship"
)

// Importance maps stakes to [0,1]; preseason is 0, championship is 1.
func (s Stakes) Importance() float64 {
	switch s {
	case StakesPreseason:
		return 0
	case StakesRivalry:
		return 0.45
	case StakesPlayoff:
		return 0.75
	case StakesChampionship:
		return 1
	}
	return 0.25
}

// Valid reports whether s is a known stakes level.
func (s Stakes) Valid() bool {
	switch s {
	case StakesPreseason, StakesRegular, StakesRivalry, StakesPlayoff, StakesChampionship:
		return true
	}
	return false
}
