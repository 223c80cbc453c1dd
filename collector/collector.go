package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"weather-term/config"
	"weather-term/datasource"
	"weather-term/models"
)

// DefaultFetchTimeout bounds each upstream step of a collection
const DefaultFetchTimeout = 10 * time.Second

// Result is the outcome of one collection
type Result struct {
	Document *models.ForecastDocument
	Request  datasource.ForecastRequest
	Elapsed  time.Duration
}

// ForecastCollector runs the geolocate → fetch-or-cache pipeline once per call
type ForecastCollector struct {
	locator      datasource.LocationSource
	source       datasource.ForecastSource
	logger       *slog.Logger
	fetchTimeout time.Duration
}

// NewForecastCollector creates a collector. source is usually a cached,
// rate limited forecast source and locator a fallback locator.
func NewForecastCollector(locator datasource.LocationSource, source datasource.ForecastSource, logger *slog.Logger) *ForecastCollector {
	return &ForecastCollector{
		locator:      locator,
		source:       source,
		logger:       logger,
		fetchTimeout: DefaultFetchTimeout,
	}
}

// SetFetchTimeout changes the timeout for each upstream step
func (fc *ForecastCollector) SetFetchTimeout(timeout time.Duration) {
	fc.fetchTimeout = timeout
}

// Collect resolves the location and returns a forecast for it
func (fc *ForecastCollector) Collect(ctx context.Context, s config.Settings) (Result, error) {
	start := time.Now()

	loc, err := fc.resolveLocation(ctx, s)
	if err != nil {
		return Result{}, err
	}

	req := datasource.ForecastRequest{
		Location:     loc,
		Unit:         s.Unit,
		ForceRefresh: s.ForceRefresh,
	}

	doc, err := fc.fetchOnce(ctx, req)
	if err != nil {
		return Result{Request: req}, err
	}

	return Result{
		Document: doc,
		Request:  req,
		Elapsed:  time.Since(start),
	}, nil
}

// resolveLocation prefers explicit coordinates and otherwise asks the locator
func (fc *ForecastCollector) resolveLocation(ctx context.Context, s config.Settings) (models.Location, error) {
	if s.Coordinates != nil {
		return models.Location{
			Coordinates: *s.Coordinates,
			Source:      models.SourceExplicit,
		}, nil
	}

	locateCtx, cancel := context.WithTimeout(ctx, fc.fetchTimeout)
	defer cancel()

	loc, err := fc.locator.Locate(locateCtx)
	if err != nil {
		return models.Location{}, fmt.Errorf("error locating via %s: %w", fc.locator.Name(), err)
	}
	fc.logger.Info("resolved location",
		"source", loc.Source,
		"coordinates", loc.Coordinates.String(),
		"timezone", loc.Timezone)
	return loc, nil
}

// fetchOnce performs a single forecast fetch
func (fc *ForecastCollector) fetchOnce(ctx context.Context, req datasource.ForecastRequest) (*models.ForecastDocument, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, fc.fetchTimeout)
	defer cancel()

	doc, err := fc.source.FetchForecast(fetchCtx, req)
	if err != nil {
		return nil, fmt.Errorf("error fetching from %s: %w", fc.source.Name(), err)
	}
	return doc, nil
}
