package datasource

import (
	"context"
	"fmt"
	"time"

	"weather-term/models"

	"golang.org/x/time/rate"
)

// DefaultMinInterval is the minimum spacing between two calls made through
// the same wrapper
const DefaultMinInterval = time.Second

// RateLimitedForecastSource wraps a ForecastSource with rate limiting
type RateLimitedForecastSource struct {
	source  ForecastSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedForecastSource creates a new rate limited forecast source.
// The first call goes straight through; each later call waits until every
// has elapsed since the previous one.
func NewRateLimitedForecastSource(source ForecastSource, every time.Duration) *RateLimitedForecastSource {
	return &RateLimitedForecastSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Every(every), 1),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// FetchForecast fetches forecast data, respecting rate limits
func (r *RateLimitedForecastSource) FetchForecast(ctx context.Context, req ForecastRequest) (*models.ForecastDocument, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	// Forward to the underlying source
	return r.source.FetchForecast(ctx, req)
}

// Name returns the source name
func (r *RateLimitedForecastSource) Name() string {
	return r.name
}

// RateLimitedLocationSource wraps a LocationSource with rate limiting
type RateLimitedLocationSource struct {
	source  LocationSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedLocationSource creates a new rate limited location source
func NewRateLimitedLocationSource(source LocationSource, every time.Duration) *RateLimitedLocationSource {
	return &RateLimitedLocationSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Every(every), 1),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// Locate resolves the caller's location, respecting rate limits
func (r *RateLimitedLocationSource) Locate(ctx context.Context) (models.Location, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.Location{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.source.Locate(ctx)
}

// Name returns the source name
func (r *RateLimitedLocationSource) Name() string {
	return r.name
}

// Verify that our rate limited types implement the required interfaces
var (
	_ ForecastSource = (*RateLimitedForecastSource)(nil)
	_ LocationSource = (*RateLimitedLocationSource)(nil)
)
