package cache

import (
	"math"
	"time"

	"weather-term/datasource"
	"weather-term/models"
)

const (
	// Timeout is how long a stored forecast counts as fresh
	Timeout = 1800 * time.Second

	// CoordinateTolerance is how far, in degrees, explicit coordinates may
	// drift from the stored document before it counts as another place.
	// The API snaps requests to its grid, so an exact match is never expected.
	CoordinateTolerance = 0.1

	// coordinateSlack absorbs float error so a difference of exactly
	// CoordinateTolerance still matches
	coordinateSlack = 1e-9
)

// IsValid reports whether doc can be used instead of a live fetch for req
func IsValid(doc *models.ForecastDocument, now time.Time, req datasource.ForecastRequest) bool {
	if req.ForceRefresh || doc == nil {
		return false
	}

	age := now.Sub(doc.CurrentTime())
	if age < 0 {
		age = -age
	}
	if age >= Timeout {
		return false
	}

	if doc.HourlyUnits.Temperature != req.Unit.Symbol() {
		return false
	}

	if req.Explicit() {
		want := req.Location.Coordinates
		if math.Abs(doc.Latitude-want.Latitude) > CoordinateTolerance+coordinateSlack ||
			math.Abs(doc.Longitude-want.Longitude) > CoordinateTolerance+coordinateSlack {
			return false
		}
	}
	return true
}
