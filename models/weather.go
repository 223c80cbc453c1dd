package models

import (
	"fmt"
	"math"
)

// Axis names a coordinate component.
type Axis string

// Coordinate axes
const (
	AxisLatitude  Axis = "latitude"
	AxisLongitude Axis = "longitude"
)

// Coordinates is a validated point on the globe.
type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// NewCoordinates validates lat/lon. Values outside [-90,90] and [-180,180]
// are rejected, never clamped.
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return Coordinates{}, &InvalidCoordinatesError{Axis: AxisLatitude, Value: lat}
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return Coordinates{}, &InvalidCoordinatesError{Axis: AxisLongitude, Value: lon}
	}
	return Coordinates{Latitude: lat, Longitude: lon}, nil
}

// String formats the coordinates the way they are accepted on the command line.
func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f:%.4f", c.Latitude, c.Longitude)
}

// LocationSource tags where a Location came from.
type LocationSource string

// Location sources
const (
	SourceIPLookup LocationSource = "ip-api"
	SourceExplicit LocationSource = "explicit"
	SourceDefault  LocationSource = "default"
)

// Location is a resolved place to request a forecast for.
type Location struct {
	Coordinates Coordinates    `json:"coordinates"`
	Timezone    string         `json:"timezone"`
	Source      LocationSource `json:"source"`
}

// TempUnit is the temperature unit requested from the forecast API.
type TempUnit string

// Temperature units
const (
	Fahrenheit TempUnit = "fahrenheit"
	Celsius    TempUnit = "celsius"
)

// Symbol returns the unit string the forecast API reports for the unit.
func (u TempUnit) Symbol() string {
	if u == Celsius {
		return "°C"
	}
	return "°F"
}

// WindUnit returns the API wind_speed_unit value paired with the unit.
func (u TempUnit) WindUnit() string {
	if u == Celsius {
		return "kmh"
	}
	return "mph"
}

// WindLabel returns the display label for the paired wind speed unit.
func (u TempUnit) WindLabel() string {
	if u == Celsius {
		return "km/h"
	}
	return "mph"
}

// TempUnitFromSymbol maps "°F"/"°C" back to a TempUnit.
func TempUnitFromSymbol(symbol string) (TempUnit, bool) {
	switch symbol {
	case "°F":
		return Fahrenheit, true
	case "°C":
		return Celsius, true
	}
	return "", false
}

// ParseTempUnit accepts the long and short spellings used in config files
// and the environment.
func ParseTempUnit(s string) (TempUnit, error) {
	switch s {
	case "fahrenheit", "f", "F", "imperial":
		return Fahrenheit, nil
	case "celsius", "c", "C", "metric":
		return Celsius, nil
	}
	return "", fmt.Errorf("unknown temperature unit %q", s)
}

// FahrenheitToCelsius converts a temperature.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// CelsiusToFahrenheit converts a temperature.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}
