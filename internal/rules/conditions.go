package rules

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type Weather int

const (
	WeatherClear Weather = iota
	WeatherLightRain
	WeatherModerateRain
	WeatherHeavyRain
	WeatherGustingRain
	WeatherDownpour
	WeatherLightSnow
	WeatherModerateSnow
	WeatherHeavySnow
	WeatherSnowFlurries
	WeatherSleet
	WeatherIceStorm
	WeatherBlizzard
	WeatherLightHail
	WeatherHeavyHail
)

var weatherNames = []string{
	"clear", "light rain", "moderate rain", "heavy rain", "gusting rain",
	"downpour", "light snow", "moderate snow", "heavy snow", "snow flurries",
	"sleet", "ice storm", "blizzard", "light hail", "heavy hail",
}

func (w Weather) String() string {
	if int(w) < 0 || int(w) >= len(weatherNames) {
		return fmt.Sprintf("weather(%d)", int(w))
	}
	return weatherNames[w]
}

func (w Weather) isSnow() bool {
	switch w {
	case WeatherLightSnow, WeatherModerateSnow, WeatherHeavySnow, WeatherSnowFlurries, WeatherBlizzard:
		return true
	}
	return false
}

func (w Weather) isRain() bool {
	switch w {
	case WeatherLightRain, WeatherModerateRain, WeatherHeavyRain, WeatherGustingRain, WeatherDownpour:
		return true
	}
	return false
}

type Wind int

const (
	WindCalm Wind = iota
	WindLightGale
	WindModerateGale
	WindStrongGale
	WindStorm
	WindTornado
)

var windNames = []string{"calm", "light gale", "moderate gale", "strong gale", "storm", "tornado"}

func (w Wind) String() string {
	if int(w) < 0 || int(w) >= len(windNames) {
		return fmt.Sprintf("wind(%d)", int(w))
	}
	return windNames[w]
}

type Atmosphere int

const (
	AtmoVacuum Atmosphere = iota
	AtmoTrace
	AtmoThin
	AtmoStandard
	AtmoHigh
	AtmoVeryHigh
)

var atmoNames = []string{"vacuum", "trace", "thin", "standard", "high", "very high"}

func (a Atmosphere) String() string {
	if int(a) < 0 || int(a) >= len(atmoNames) {
		return fmt.Sprintf("atmosphere(%d)", int(a))
	}
	return atmoNames[a]
}

// MoverKind selects the column of the weather movement table.
type MoverKind int

const (
	MoverMek MoverKind = iota
	MoverTracked
	MoverWheeled
	MoverHover
	MoverVTOL
	MoverAero
	MoverInfantry
)

// Conditions are the planetary conditions of a battle.
type Conditions struct {
	Gravity     float64    `json:"gravity" yaml:"gravity"`
	Weather     Weather    `json:"weather" yaml:"weather"`
	Wind        Wind       `json:"wind" yaml:"wind"`
	Temperature int        `json:"temperature" yaml:"temperature"`
	Atmosphere  Atmosphere `json:"atmosphere" yaml:"atmosphere"`
	Space       bool       `json:"space" yaml:"space"`
}

func DefaultConditions() Conditions {
	return Conditions{
		Gravity:     1.0,
		Weather:     WeatherClear,
		Wind:        WindCalm,
		Temperature: 25,
		Atmosphere:  AtmoStandard,
	}
}

var ErrInvalidGravity = errors.New("gravity must be greater than zero")

func (c Conditions) Validate() error {
	if c.Gravity <= 0 || math.IsNaN(c.Gravity) {
		return fmt.Errorf("%w: got %v", ErrInvalidGravity, c.Gravity)
	}
	if int(c.Weather) < 0 || int(c.Weather) >= len(weatherNames) {
		return fmt.Errorf("unknown weather %d", int(c.Weather))
	}
	if int(c.Wind) < 0 || int(c.Wind) >= len(windNames) {
		return fmt.Errorf("unknown wind %d", int(c.Wind))
	}
	if int(c.Atmosphere) < 0 || int(c.Atmosphere) >= len(atmoNames) {
		return fmt.Errorf("unknown atmosphere %d", int(c.Atmosphere))
	}
	return nil
}

// MovementModifier returns the (non-positive) walk/cruise/thrust change the
// weather and wind impose on a mover. Weather and wind stack to at most -2,
// except aerospace in a tornado. Infantry on foot take -1 for any wind from
// strong gale up.
func (c Conditions) MovementModifier(kind MoverKind) int {
	if c.Space {
		return 0
	}
	if kind == MoverAero {
		switch c.Wind {
		case WindTornado:
			return -3
		case WindStorm:
			return -2
		case WindStrongGale:
			return -1
		}
		return 0
	}
	if c.Wind == WindTornado && kind != MoverInfantry {
		return -2
	}

	mod := 0
	switch kind {
	case MoverMek:
		switch c.Weather {
		case WeatherHeavySnow, WeatherSleet, WeatherIceStorm, WeatherBlizzard, WeatherDownpour:
			mod--
		}
	case MoverWheeled, MoverHover:
		if (c.Weather.isSnow() && c.Weather != WeatherLightSnow && c.Weather != WeatherSnowFlurries) ||
			c.Weather == WeatherSleet || c.Weather == WeatherIceStorm {
			mod--
		}
	case MoverTracked:
		if c.Weather == WeatherBlizzard || c.Weather == WeatherIceStorm {
			mod--
		}
	case MoverInfantry:
		if (c.Weather.isRain() && c.Weather != WeatherLightRain) || c.Weather.isSnow() {
			mod--
		}
	}
	switch c.Wind {
	case WindStrongGale, WindStorm, WindTornado:
		mod--
	}
	if mod < -2 {
		mod = -2
	}
	return mod
}

// JumpAllowed is false when the wind makes jumping impossible.
func (c Conditions) JumpAllowed() bool {
	return c.Wind != WindStorm && c.Wind != WindTornado
}

// ApplyGravity scales ground movement by the local gravity.
func (c Conditions) ApplyGravity(mp int) int {
	if c.Space || c.Gravity == 1.0 || c.Gravity <= 0 {
		return mp
	}
	return int(math.Floor(float64(mp) / c.Gravity))
}

// ParseWeather accepts the names printed by Weather.String.
func ParseWeather(s string) (Weather, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range weatherNames {
		if n == s || strings.ReplaceAll(n, " ", "_") == s {
			return Weather(i), nil
		}
	}
	return WeatherClear, fmt.Errorf("unknown weather %q", s)
}

func ParseWind(s string) (Wind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range windNames {
		if n == s || strings.ReplaceAll(n, " ", "_") == s {
			return Wind(i), nil
		}
	}
	return WindCalm, fmt.Errorf("unknown wind %q", s)
}

func ParseAtmosphere(s string) (Atmosphere, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range atmoNames {
		if n == s || strings.ReplaceAll(n, " ", "_") == s {
			return Atmosphere(i), nil
		}
	}
	return AtmoStandard, fmt.Errorf("unknown atmosphere %q", s)
}
