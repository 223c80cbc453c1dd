package models

import (
	"fmt"
	"time"
)

// ForecastDocument is the Open-Meteo forecast response, requested with
// timeformat=unixtime. It is persisted verbatim as the cache record.
type ForecastDocument struct {
	Latitude             float64           `json:"latitude"`
	Longitude            float64           `json:"longitude"`
	GenerationTimeMs     float64           `json:"generationtime_ms"`
	UTCOffsetSeconds     int               `json:"utc_offset_seconds"`
	Timezone             string            `json:"timezone"`
	TimezoneAbbreviation string            `json:"timezone_abbreviation"`
	Elevation            float64           `json:"elevation"`
	CurrentUnits         map[string]string `json:"current_units,omitempty"`
	Current              Current           `json:"current"`
	HourlyUnits          SeriesUnits       `json:"hourly_units"`
	Hourly               Series            `json:"hourly"`
	Minutely15Units      SeriesUnits       `json:"minutely_15_units"`
	Minutely15           Series            `json:"minutely_15"`
	DailyUnits           map[string]string `json:"daily_units,omitempty"`
	Daily                Daily             `json:"daily"`

	// Raw is the response body the document was decoded from, when known
	Raw []byte `json:"-"`
}

// Current is the single "now" snapshot of the response.
type Current struct {
	Time             int64   `json:"time"`
	Interval         int     `json:"interval"`
	Temperature      float64 `json:"temperature_2m"`
	RelativeHumidity float64 `json:"relative_humidity_2m"`
	WeatherCode      int     `json:"weather_code"`
	WindSpeed        float64 `json:"wind_speed_10m"`
	WindDirection    float64 `json:"wind_direction_10m"`
}

// SeriesUnits holds the unit strings reported for a time series.
type SeriesUnits struct {
	Time                     string `json:"time"`
	Temperature              string `json:"temperature_2m"`
	RelativeHumidity         string `json:"relative_humidity_2m"`
	DewPoint                 string `json:"dew_point_2m"`
	PrecipitationProbability string `json:"precipitation_probability"`
	WeatherCode              string `json:"weather_code"`
	WindSpeed                string `json:"wind_speed_10m"`
	WindDirection            string `json:"wind_direction_10m"`
}

// Series is a set of parallel samples sharing the Time index. It is used for
// both the hourly and the 15-minutely resolution.
type Series struct {
	Time                     []int64   `json:"time"`
	Temperature              []float64 `json:"temperature_2m"`
	RelativeHumidity         []float64 `json:"relative_humidity_2m"`
	DewPoint                 []float64 `json:"dew_point_2m"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
	WeatherCode              []int     `json:"weather_code"`
	WindSpeed                []float64 `json:"wind_speed_10m"`
	WindDirection            []float64 `json:"wind_direction_10m"`
}

// Daily holds one entry per forecast day.
type Daily struct {
	Time                        []int64   `json:"time"`
	WeatherCode                 []int     `json:"weather_code"`
	TemperatureMax              []float64 `json:"temperature_2m_max"`
	TemperatureMin              []float64 `json:"temperature_2m_min"`
	Sunrise                     []int64   `json:"sunrise"`
	Sunset                      []int64   `json:"sunset"`
	UVIndexMax                  []float64 `json:"uv_index_max"`
	PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
	WindSpeedMax                []float64 `json:"wind_speed_10m_max"`
}

// Len returns the number of samples in the series.
func (s Series) Len() int {
	return len(s.Time)
}

// Len returns the number of forecast days.
func (d Daily) Len() int {
	return len(d.Time)
}

// CurrentTime returns the instant of the current snapshot.
func (d *ForecastDocument) CurrentTime() time.Time {
	return time.Unix(d.Current.Time, 0)
}

// Zone returns the fixed zone the document's local times are expressed in.
func (d *ForecastDocument) Zone() *time.Location {
	name := d.TimezoneAbbreviation
	if name == "" {
		name = d.Timezone
	}
	return time.FixedZone(name, d.UTCOffsetSeconds)
}

// TemperatureUnit returns the unit the document's temperatures are in,
// judged by the hourly unit string.
func (d *ForecastDocument) TemperatureUnit() (TempUnit, bool) {
	return TempUnitFromSymbol(d.HourlyUnits.Temperature)
}

// Validate checks the structural invariants the renderer relies on: a
// timestamped current snapshot, a temperature unit, and equal-length
// parallel series.
func (d *ForecastDocument) Validate() error {
	if d.Current.Time <= 0 {
		return &SchemaError{Field: "current.time", Reason: "missing"}
	}
	if d.HourlyUnits.Temperature == "" {
		return &SchemaError{Field: "hourly_units.temperature_2m", Reason: "missing"}
	}
	if d.Minutely15.Len() == 0 {
		return &SchemaError{Field: "minutely_15.time", Reason: "empty"}
	}
	if err := d.Minutely15.validate("minutely_15"); err != nil {
		return err
	}
	if d.Hourly.Len() > 0 {
		if err := d.Hourly.validate("hourly"); err != nil {
			return err
		}
	}
	return d.Daily.validate()
}

func (s Series) validate(prefix string) error {
	n := s.Len()
	lengths := []struct {
		name string
		len  int
	}{
		{"temperature_2m", len(s.Temperature)},
		{"relative_humidity_2m", len(s.RelativeHumidity)},
		{"precipitation_probability", len(s.PrecipitationProbability)},
		{"weather_code", len(s.WeatherCode)},
		{"wind_speed_10m", len(s.WindSpeed)},
		{"wind_direction_10m", len(s.WindDirection)},
	}
	for _, l := range lengths {
		if l.len != n {
			return &SchemaError{
				Field:  prefix + "." + l.name,
				Reason: fmt.Sprintf("length %d does not match time length %d", l.len, n),
			}
		}
	}
	// dew point is optional in older cache files
	if len(s.DewPoint) != 0 && len(s.DewPoint) != n {
		return &SchemaError{
			Field:  prefix + ".dew_point_2m",
			Reason: fmt.Sprintf("length %d does not match time length %d", len(s.DewPoint), n),
		}
	}
	return nil
}

func (d Daily) validate() error {
	n := d.Len()
	lengths := []struct {
		name string
		len  int
	}{
		{"weather_code", len(d.WeatherCode)},
		{"temperature_2m_max", len(d.TemperatureMax)},
		{"temperature_2m_min", len(d.TemperatureMin)},
		{"sunrise", len(d.Sunrise)},
		{"sunset", len(d.Sunset)},
	}
	for _, l := range lengths {
		if l.len != n {
			return &SchemaError{
				Field:  "daily." + l.name,
				Reason: fmt.Sprintf("length %d does not match time length %d", l.len, n),
			}
		}
	}
	optional := []struct {
		name string
		len  int
	}{
		{"uv_index_max", len(d.UVIndexMax)},
		{"precipitation_probability_max", len(d.PrecipitationProbabilityMax)},
		{"wind_speed_10m_max", len(d.WindSpeedMax)},
	}
	for _, l := range optional {
		if l.len != 0 && l.len != n {
			return &SchemaError{
				Field:  "daily." + l.name,
				Reason: fmt.Sprintf("length %d does not match time length %d", l.len, n),
			}
		}
	}
	return nil
}
