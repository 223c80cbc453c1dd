package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"weather-term/datasource"
	"weather-term/models"
)

// Origin says where the last forecast came from
type Origin string

// Forecast origins
const (
	OriginNone       Origin = ""
	OriginLive       Origin = "live"
	OriginCache      Origin = "cache"
	OriginStaleCache Origin = "stale-cache"
)

// CachedForecastSource wraps a ForecastSource and adds on-disk caching with
// fall back to the stored document when the live fetch fails
type CachedForecastSource struct {
	source         datasource.ForecastSource
	store          Store
	now            func() time.Time
	logger         *slog.Logger
	mutex          sync.RWMutex
	cacheHitCount  int
	cacheMissCount int
	fallbackCount  int
	lastOrigin     Origin
}

// NewCachedForecastSource creates a new cached wrapper around a forecast source
func NewCachedForecastSource(source datasource.ForecastSource, store Store, now func() time.Time, logger *slog.Logger) *CachedForecastSource {
	if now == nil {
		now = time.Now
	}
	return &CachedForecastSource{
		source: source,
		store:  store,
		now:    now,
		logger: logger,
	}
}

// Name returns the name of the underlying forecast source with [Cached] suffix
func (c *CachedForecastSource) Name() string {
	return c.source.Name() + " [Cached]"
}

// FetchForecast returns a fresh cached forecast, or fetches and stores a new
// one, or falls back to whatever the cache holds if the fetch fails
func (c *CachedForecastSource) FetchForecast(ctx context.Context, req datasource.ForecastRequest) (*models.ForecastDocument, error) {
	cached, loadErr := c.store.Load()
	if loadErr != nil && !errors.Is(loadErr, ErrNotFound) {
		c.logger.Warn("ignoring unreadable forecast cache", "error", loadErr)
	}

	// If found and still valid, return the cached forecast
	if loadErr == nil && IsValid(cached, c.now(), req) {
		c.record(OriginCache)
		c.logger.Info("forecast cache hit",
			"source", c.source.Name(),
			"age", c.now().Sub(cached.CurrentTime()).Round(time.Second))
		return cached, nil
	}

	c.record(OriginNone)
	c.logger.Info("forecast cache miss, fetching fresh data",
		"source", c.source.Name(),
		"force_refresh", req.ForceRefresh)

	doc, fetchErr := c.source.FetchForecast(ctx, req)
	if fetchErr == nil {
		if err := c.store.Store(doc); err != nil {
			c.logger.Warn("failed to write forecast cache", "error", err)
		}
		c.setOrigin(OriginLive)
		return doc, nil
	}

	if loadErr == nil {
		c.mutex.Lock()
		c.fallbackCount++
		c.lastOrigin = OriginStaleCache
		c.mutex.Unlock()
		c.logger.Warn("forecast fetch failed, using cached forecast",
			"error", fmt.Errorf("%w: %w", ErrStale, fetchErr),
			"age", c.now().Sub(cached.CurrentTime()).Round(time.Second))
		return cached, nil
	}

	return nil, fmt.Errorf("forecast unavailable: %w", errors.Join(fetchErr, loadErr))
}

func (c *CachedForecastSource) record(origin Origin) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if origin == OriginCache {
		c.cacheHitCount++
	} else {
		c.cacheMissCount++
	}
	c.lastOrigin = origin
}

func (c *CachedForecastSource) setOrigin(origin Origin) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.lastOrigin = origin
}

// CacheStats returns statistics about cache hits, misses and fallbacks
func (c *CachedForecastSource) CacheStats() (hits, misses, fallbacks int) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.cacheHitCount, c.cacheMissCount, c.fallbackCount
}

// LastOrigin reports where the most recent forecast came from
func (c *CachedForecastSource) LastOrigin() Origin {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.lastOrigin
}

// Ensure CachedForecastSource implements ForecastSource
var _ datasource.ForecastSource = (*CachedForecastSource)(nil)
