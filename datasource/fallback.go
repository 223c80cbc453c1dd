package datasource

import (
	"context"
	"log/slog"

	"weather-term/models"
)

// FallbackLocator wraps a LocationSource and substitutes a fixed default
// location whenever the wrapped source fails. It never returns an error.
type FallbackLocator struct {
	source   LocationSource
	fallback models.Location
	logger   *slog.Logger
}

// NewFallbackLocator creates a locator that degrades to fallback on failure
func NewFallbackLocator(source LocationSource, fallback models.Location, logger *slog.Logger) *FallbackLocator {
	fallback.Source = models.SourceDefault
	return &FallbackLocator{
		source:   source,
		fallback: fallback,
		logger:   logger,
	}
}

// Name returns the wrapped source name
func (f *FallbackLocator) Name() string {
	return f.source.Name()
}

// Locate returns the wrapped source's location, or the fallback
func (f *FallbackLocator) Locate(ctx context.Context) (models.Location, error) {
	loc, err := f.source.Locate(ctx)
	if err != nil {
		f.logger.Warn("geolocation failed, using default location",
			"source", f.source.Name(),
			"location", f.fallback.Coordinates.String(),
			"error", err)
		return f.fallback, nil
	}
	return loc, nil
}

var _ LocationSource = (*FallbackLocator)(nil)
