package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"weather-term/models"
	"weather-term/render"
)

// File is the optional YAML configuration file
type File struct {
	Units           string        `yaml:"units"`
	Emoji           string        `yaml:"emoji"`
	Mode            string        `yaml:"mode"`
	Color           *bool         `yaml:"color"`
	HoursBefore     *int          `yaml:"hours_before"`
	HoursAfter      *int          `yaml:"hours_after"`
	CachePath       string        `yaml:"cache_path"`
	ForecastURL     string        `yaml:"forecast_url"`
	GeoURL          string        `yaml:"geo_url"`
	Timeout         string        `yaml:"timeout"`
	DefaultLocation *FileLocation `yaml:"default_location"`
}

// FileLocation overrides the fallback location
type FileLocation struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Timezone  string  `yaml:"timezone"`
}

// DefaultFilePath returns the per-user config file location
func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "weather-term", "config.yaml"), nil
}

// LoadFile reads a YAML config file
func LoadFile(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}

// Apply overlays the file's values onto s
func (f File) Apply(s *Settings) error {
	if f.Units != "" {
		u, err := models.ParseTempUnit(f.Units)
		if err != nil {
			return err
		}
		s.Unit = u
	}
	if f.Emoji != "" {
		style, err := render.ParseStyle(f.Emoji)
		if err != nil {
			return err
		}
		s.Style = style
	}
	if f.Mode != "" {
		m, err := ParseMode(f.Mode)
		if err != nil {
			return err
		}
		s.Mode = m
	}
	if f.Color != nil {
		s.Color = *f.Color
	}
	if f.HoursBefore != nil {
		s.HoursBefore = *f.HoursBefore
	}
	if f.HoursAfter != nil {
		s.HoursAfter = *f.HoursAfter
	}
	if f.CachePath != "" {
		s.CachePath = f.CachePath
	}
	if f.ForecastURL != "" {
		s.ForecastURL = f.ForecastURL
	}
	if f.GeoURL != "" {
		s.GeoURL = f.GeoURL
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout: %w", err)
		}
		s.Timeout = d
	}
	if f.DefaultLocation != nil {
		c, err := models.NewCoordinates(f.DefaultLocation.Latitude, f.DefaultLocation.Longitude)
		if err != nil {
			return fmt.Errorf("invalid default_location: %w", err)
		}
		s.DefaultLocation = models.Location{
			Coordinates: c,
			Timezone:    f.DefaultLocation.Timezone,
			Source:      models.SourceDefault,
		}
	}
	return nil
}

// applyFile loads path and applies it. A missing file is only an error when
// the path was asked for explicitly.
func applyFile(s *Settings, path string, explicit bool) error {
	f, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil
	}
	if err != nil {
		return err
	}
	return f.Apply(s)
}
