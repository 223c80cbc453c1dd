package render

import (
	"fmt"
	"math"

	"weather-term/models"
)

// Color is a 24-bit RGB color
type Color struct {
	R, G, B uint8
}

// Hex returns the color as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Breakpoint interpolates From→To across [Lo, Hi]
type Breakpoint struct {
	Lo, Hi   float64
	From, To Color
}

func (b Breakpoint) contains(v float64) bool {
	return v >= b.Lo && v <= b.Hi
}

func (b Breakpoint) at(v float64) Color {
	channel := func(from, to uint8) uint8 {
		c := math.Round(Lerp(v, b.Lo, b.Hi, float64(from), float64(to)))
		return uint8(math.Max(0, math.Min(255, c)))
	}
	return Color{
		R: channel(b.From.R, b.To.R),
		G: channel(b.From.G, b.To.G),
		B: channel(b.From.B, b.To.B),
	}
}

// Scale is an ordered list of brackets plus the bracket used for values
// outside all of them
type Scale struct {
	Breakpoints []Breakpoint
	Fallback    Breakpoint
}

// ColorFor picks the first bracket containing value and interpolates each
// channel independently. Values outside every bracket use the fallback.
func ColorFor(value float64, s Scale) Color {
	if math.IsNaN(value) {
		return s.Fallback.From
	}
	for _, b := range s.Breakpoints {
		if b.contains(value) {
			return b.at(value)
		}
	}
	return s.Fallback.at(value)
}

// convert rescales the bracket bounds, keeping the colors
func (s Scale) convert(f func(float64) float64) Scale {
	out := Scale{
		Breakpoints: make([]Breakpoint, len(s.Breakpoints)),
		Fallback:    s.Fallback,
	}
	for i, b := range s.Breakpoints {
		b.Lo, b.Hi = f(b.Lo), f(b.Hi)
		out.Breakpoints[i] = b
	}
	out.Fallback.Lo, out.Fallback.Hi = f(s.Fallback.Lo), f(s.Fallback.Hi)
	return out
}

var (
	black = Color{0, 0, 0}
	white = Color{255, 255, 255}
	gray  = Color{128, 128, 128}
)

// TemperatureFahrenheit colors temperatures in °F
var TemperatureFahrenheit = Scale{
	Breakpoints: []Breakpoint{
		{-60, 0, Color{72, 0, 120}, Color{40, 60, 200}},
		{0, 32, Color{40, 60, 200}, Color{80, 200, 255}},
		{32, 50, Color{80, 200, 255}, Color{80, 220, 120}},
		{50, 70, Color{80, 220, 120}, Color{240, 230, 80}},
		{70, 90, Color{240, 230, 80}, Color{255, 140, 0}},
		{90, 110, Color{255, 140, 0}, Color{220, 20, 20}},
		{110, 130, Color{220, 20, 20}, Color{200, 0, 160}},
	},
	Fallback: Breakpoint{-100, 130, black, white},
}

// TemperatureCelsius is TemperatureFahrenheit with bounds in °C
var TemperatureCelsius = TemperatureFahrenheit.convert(models.FahrenheitToCelsius)

// Humidity colors relative humidity in percent
var Humidity = Scale{
	Breakpoints: []Breakpoint{
		{0, 30, Color{210, 180, 120}, Color{170, 200, 140}},
		{30, 60, Color{170, 200, 140}, Color{90, 170, 210}},
		{60, 100, Color{90, 170, 210}, Color{40, 90, 220}},
	},
	Fallback: Breakpoint{-100, 200, black, white},
}

// Precipitation colors precipitation probability in percent
var Precipitation = Scale{
	Breakpoints: []Breakpoint{
		{0, 20, Color{120, 120, 120}, Color{120, 160, 200}},
		{20, 60, Color{120, 160, 200}, Color{60, 120, 230}},
		{60, 100, Color{60, 120, 230}, Color{30, 60, 255}},
	},
	Fallback: Breakpoint{-100, 200, black, white},
}

const kmhPerMph = 1.609344

// WindMph colors wind speed in mph
var WindMph = Scale{
	Breakpoints: []Breakpoint{
		{0, 10, Color{150, 220, 150}, Color{220, 220, 120}},
		{10, 25, Color{220, 220, 120}, Color{255, 160, 60}},
		{25, 50, Color{255, 160, 60}, Color{230, 40, 40}},
		{50, 100, Color{230, 40, 40}, Color{200, 0, 200}},
	},
	Fallback: Breakpoint{-100, 300, black, white},
}

// WindKmh is WindMph with bounds in km/h
var WindKmh = WindMph.convert(func(v float64) float64 { return v * kmhPerMph })

// UVIndex colors the UV index
var UVIndex = Scale{
	Breakpoints: []Breakpoint{
		{0, 3, Color{80, 200, 80}, Color{240, 230, 80}},
		{3, 6, Color{240, 230, 80}, Color{255, 140, 0}},
		{6, 8, Color{255, 140, 0}, Color{220, 20, 20}},
		{8, 11, Color{220, 20, 20}, Color{150, 60, 200}},
		{11, 20, Color{150, 60, 200}, Color{200, 120, 255}},
	},
	Fallback: Breakpoint{-100, 100, black, white},
}

// TemperatureScale returns the temperature scale for unit
func TemperatureScale(unit models.TempUnit) Scale {
	if unit == models.Celsius {
		return TemperatureCelsius
	}
	return TemperatureFahrenheit
}

// WindScale returns the wind scale matching the unit's wind speed unit
func WindScale(unit models.TempUnit) Scale {
	if unit == models.Celsius {
		return WindKmh
	}
	return WindMph
}
