package config

import (
	"fmt"
	"time"

	"weather-term/models"
	"weather-term/render"
)

// Mode selects which view is printed
type Mode string

// Display modes
const (
	ModeShort Mode = "short"
	ModeDay   Mode = "day"
	ModeWeek  Mode = "week"
)

// ParseMode maps a mode name to a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "short", "current", "s":
		return ModeShort, nil
	case "day", "long", "d", "l":
		return ModeDay, nil
	case "week", "w":
		return ModeWeek, nil
	}
	return "", fmt.Errorf("unknown display mode %q", s)
}

const (
	// DefaultHoursBefore is how much history the day view shows
	DefaultHoursBefore = 6
	// DefaultHoursAfter is how far ahead the day view reaches
	DefaultHoursAfter = 18
	// MaxHoursBefore matches the single past day the forecast is requested with
	MaxHoursBefore = 24
	// MaxHoursAfter keeps the day view within two days
	MaxHoursAfter = 48

	// DefaultTimeout bounds every upstream request
	DefaultTimeout = 10 * time.Second
)

// DefaultLocation is used when geolocation fails: the Royal Observatory,
// Greenwich
var DefaultLocation = models.Location{
	Coordinates: models.Coordinates{Latitude: 51.4779, Longitude: -0.0015},
	Timezone:    "Europe/London",
	Source:      models.SourceDefault,
}

// Settings is everything resolved once at startup. It is passed by value and
// never changed afterwards.
type Settings struct {
	Mode         Mode
	Unit         models.TempUnit
	Color        bool
	Style        render.Style
	ForceRefresh bool
	// Coordinates is set when the user passed LAT:LON
	Coordinates *models.Coordinates
	Quiet       bool
	RuntimeInfo bool

	HoursBefore int
	HoursAfter  int

	CachePath       string
	ForecastURL     string
	GeoURL          string
	Timeout         time.Duration
	DefaultLocation models.Location
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		Mode:            ModeShort,
		Unit:            models.Fahrenheit,
		Color:           true,
		Style:           render.StyleNF,
		HoursBefore:     DefaultHoursBefore,
		HoursAfter:      DefaultHoursAfter,
		Timeout:         DefaultTimeout,
		DefaultLocation: DefaultLocation,
	}
}

// Validate checks the settings that can come from files or the environment
func (s Settings) Validate() error {
	if s.HoursBefore < 0 || s.HoursBefore > MaxHoursBefore {
		return fmt.Errorf("hours_before %d outside [0, %d]", s.HoursBefore, MaxHoursBefore)
	}
	if s.HoursAfter < 1 || s.HoursAfter > MaxHoursAfter {
		return fmt.Errorf("hours_after %d outside [1, %d]", s.HoursAfter, MaxHoursAfter)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", s.Timeout)
	}
	return nil
}
