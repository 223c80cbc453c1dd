package datasource

import (
	"context"
	"fmt"

	"weather-term/models"
)

// ForecastRequest carries everything a forecast source or cache needs to
// decide what to fetch and whether a stored document still fits
type ForecastRequest struct {
	Location     models.Location
	Unit         models.TempUnit
	ForceRefresh bool
}

// Explicit reports whether the coordinates were given by the user rather
// than looked up.
func (r ForecastRequest) Explicit() bool {
	return r.Location.Source == models.SourceExplicit
}

// ForecastSource is an interface for services that can fetch weather forecasts
type ForecastSource interface {
	// FetchForecast fetches the forecast document for the request
	FetchForecast(ctx context.Context, req ForecastRequest) (*models.ForecastDocument, error)

	// Name returns the source's name
	Name() string
}

// NetworkError is returned when an upstream request fails, either in
// transport or with a non-200 status.
type NetworkError struct {
	Source string
	Op     string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: API error (status %d): %v", e.Source, e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Source, e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
