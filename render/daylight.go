package render

import (
	"time"

	"weather-term/models"
)

// IsDaytime reports whether t falls between sunrise and sunset of any
// forecast day
func IsDaytime(daily models.Daily, t time.Time) bool {
	unix := t.Unix()
	n := len(daily.Sunrise)
	if len(daily.Sunset) < n {
		n = len(daily.Sunset)
	}
	for i := 0; i < n; i++ {
		if daily.Sunrise[i] <= unix && unix < daily.Sunset[i] {
			return true
		}
	}
	return false
}
