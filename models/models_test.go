package models

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"testing"
)

func TestNewCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		wantAxis Axis
	}{
		{"origin", 0, 0, ""},
		{"north pole", 90, 0, ""},
		{"south pole", -90, 0, ""},
		{"date line east", 0, 180, ""},
		{"date line west", 0, -180, ""},
		{"london", 51.5074, -0.1278, ""},
		{"latitude too high", 90.0001, 0, AxisLatitude},
		{"latitude too low", -91, 0, AxisLatitude},
		{"longitude too high", 0, 180.5, AxisLongitude},
		{"longitude too low", 0, -181, AxisLongitude},
		{"both invalid reports latitude", 100, 200, AxisLatitude},
		{"nan latitude", math.NaN(), 0, AxisLatitude},
		{"nan longitude", 0, math.NaN(), AxisLongitude},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewCoordinates(tc.lat, tc.lon)
			if tc.wantAxis == "" {
				if err != nil {
					t.Fatalf("NewCoordinates(%v, %v) returned error: %v", tc.lat, tc.lon, err)
				}
				if c.Latitude != tc.lat || c.Longitude != tc.lon {
					t.Errorf("NewCoordinates(%v, %v) = %+v; values changed", tc.lat, tc.lon, c)
				}
				return
			}
			var invalid *InvalidCoordinatesError
			if !errors.As(err, &invalid) {
				t.Fatalf("NewCoordinates(%v, %v) error = %v; want InvalidCoordinatesError", tc.lat, tc.lon, err)
			}
			if invalid.Axis != tc.wantAxis {
				t.Errorf("axis = %s; want %s", invalid.Axis, tc.wantAxis)
			}
		})
	}
}

func TestTempUnitSymbols(t *testing.T) {
	for _, u := range []TempUnit{Fahrenheit, Celsius} {
		got, ok := TempUnitFromSymbol(u.Symbol())
		if !ok || got != u {
			t.Errorf("TempUnitFromSymbol(%q) = %q, %v; want %q", u.Symbol(), got, ok, u)
		}
	}
	if _, ok := TempUnitFromSymbol("K"); ok {
		t.Error("TempUnitFromSymbol(K) should not be recognized")
	}
}

func TestTemperatureConversion(t *testing.T) {
	if got := FahrenheitToCelsius(212); got != 100 {
		t.Errorf("FahrenheitToCelsius(212) = %v; want 100", got)
	}
	if got := CelsiusToFahrenheit(-40); got != -40 {
		t.Errorf("CelsiusToFahrenheit(-40) = %v; want -40", got)
	}
}

func loadFixture(t *testing.T) *ForecastDocument {
	t.Helper()
	b, err := os.ReadFile("../testdata/forecast_celsius.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	var doc ForecastDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return &doc
}

func TestValidateFixture(t *testing.T) {
	doc := loadFixture(t)
	if err := doc.Validate(); err != nil {
		t.Fatalf("fixture should validate: %v", err)
	}
	unit, ok := doc.TemperatureUnit()
	if !ok || unit != Celsius {
		t.Errorf("TemperatureUnit() = %q, %v; want celsius", unit, ok)
	}
}

func TestValidateRejectsBrokenDocuments(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(d *ForecastDocument)
		wantField string
	}{
		{"no current time", func(d *ForecastDocument) { d.Current.Time = 0 }, "current.time"},
		{"no unit", func(d *ForecastDocument) { d.HourlyUnits.Temperature = "" }, "hourly_units.temperature_2m"},
		{"empty series", func(d *ForecastDocument) { d.Minutely15.Time = nil }, "minutely_15.time"},
		{"short temperature", func(d *ForecastDocument) {
			d.Minutely15.Temperature = d.Minutely15.Temperature[1:]
		}, "minutely_15.temperature_2m"},
		{"short weather code", func(d *ForecastDocument) {
			d.Minutely15.WeatherCode = d.Minutely15.WeatherCode[:3]
		}, "minutely_15.weather_code"},
		{"short sunset", func(d *ForecastDocument) { d.Daily.Sunset = nil }, "daily.sunset"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := loadFixture(t)
			tc.mutate(doc)
			var schemaErr *SchemaError
			if err := doc.Validate(); !errors.As(err, &schemaErr) {
				t.Fatalf("Validate() = %v; want SchemaError", err)
			}
			if schemaErr.Field != tc.wantField {
				t.Errorf("field = %s; want %s", schemaErr.Field, tc.wantField)
			}
		})
	}
}
