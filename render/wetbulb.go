package render

import (
	"math"

	"weather-term/models"
)

// WetBulb estimates the wet-bulb temperature with Stull's (2011) empirical
// formula. temp is in unit, rh in percent; the result is in unit.
func WetBulb(temp, rh float64, unit models.TempUnit) float64 {
	t := temp
	if unit == models.Fahrenheit {
		t = models.FahrenheitToCelsius(temp)
	}

	tw := t*math.Atan(0.151977*math.Sqrt(rh+8.313659)) +
		math.Atan(t+rh) -
		math.Atan(rh-1.676331) +
		0.00391838*math.Pow(rh, 1.5)*math.Atan(0.023101*rh) -
		4.686035

	if unit == models.Fahrenheit {
		return models.CelsiusToFahrenheit(tw)
	}
	return tw
}
