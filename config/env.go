package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"

	"weather-term/models"
	"weather-term/render"
)

// Environment variables
const (
	EnvConfig      = "WEATHER_TERM_CONFIG"
	EnvUnits       = "WEATHER_TERM_UNITS"
	EnvEmoji       = "WEATHER_TERM_EMOJI"
	EnvCachePath   = "WEATHER_TERM_CACHE_PATH"
	EnvForecastURL = "WEATHER_TERM_FORECAST_URL"
	EnvGeoURL      = "WEATHER_TERM_GEO_URL"
	EnvNoColor     = "NO_COLOR"
)

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ApplyEnv overlays environment variables onto s
func ApplyEnv(s *Settings, getenv func(string) string) error {
	if v := getenv(EnvUnits); v != "" {
		u, err := models.ParseTempUnit(v)
		if err != nil {
			return err
		}
		s.Unit = u
	}
	if v := getenv(EnvEmoji); v != "" {
		style, err := render.ParseStyle(v)
		if err != nil {
			return err
		}
		s.Style = style
	}
	if v := getenv(EnvCachePath); v != "" {
		s.CachePath = v
	}
	if v := getenv(EnvForecastURL); v != "" {
		s.ForecastURL = v
	}
	if v := getenv(EnvGeoURL); v != "" {
		s.GeoURL = v
	}
	// https://no-color.org: any non-empty value disables color
	if getenv(EnvNoColor) != "" {
		s.Color = false
	}
	return nil
}
