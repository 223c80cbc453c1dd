package collector

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"weather-term/cache"
	"weather-term/config"
	"weather-term/datasource"
	"weather-term/models"
	"weather-term/providers/ipapi"
	"weather-term/providers/openmeteo"
)

var fixtureNow = time.Unix(1750504800, 0)

type upstream struct {
	geo, forecast           *httptest.Server
	geoCalls, forecastCalls atomic.Int32
	lastLatitude            atomic.Value
}

func newUpstream(t *testing.T, geoStatus, forecastStatus int) *upstream {
	t.Helper()
	fixture, err := os.ReadFile("../testdata/forecast_celsius.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	u := &upstream{}
	u.geo = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.geoCalls.Add(1)
		w.WriteHeader(geoStatus)
		_, _ = io.WriteString(w, `{"status":"success","lat":40.7128,"lon":-74.006,"timezone":"America/New_York"}`)
	}))
	u.forecast = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.forecastCalls.Add(1)
		u.lastLatitude.Store(r.URL.Query().Get("latitude"))
		w.WriteHeader(forecastStatus)
		if forecastStatus == http.StatusOK {
			_, _ = w.Write(fixture)
			return
		}
		_, _ = io.WriteString(w, `{"error":true,"reason":"upstream down"}`)
	}))
	t.Cleanup(func() {
		u.geo.Close()
		u.forecast.Close()
	})
	return u
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCollector(u *upstream, store cache.Store) *ForecastCollector {
	logger := discardLogger()
	locator := datasource.NewFallbackLocator(
		ipapi.NewResolver(u.geo.URL, "weather-term-test", time.Second),
		config.DefaultLocation, logger)
	source := cache.NewCachedForecastSource(
		openmeteo.NewClient(u.forecast.URL, "weather-term-test", time.Second),
		store, func() time.Time { return fixtureNow }, logger)
	return NewForecastCollector(locator, source, logger)
}

func celsiusSettings() config.Settings {
	s := config.Default()
	s.Unit = models.Celsius
	return s
}

func loadFixture(t *testing.T) *models.ForecastDocument {
	t.Helper()
	b, err := os.ReadFile("../testdata/forecast_celsius.json")
	if err != nil {
		t.Fatal(err)
	}
	var doc models.ForecastDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatal(err)
	}
	return &doc
}

func TestCollectGeolocated(t *testing.T) {
	u := newUpstream(t, http.StatusOK, http.StatusOK)
	store := cache.NewMemoryStore(nil)

	res, err := newCollector(u, store).Collect(context.Background(), celsiusSettings())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if res.Document == nil || res.Document.Current.Time != 1750503600 {
		t.Fatalf("unexpected document: %+v", res.Document)
	}
	if res.Request.Location.Source != models.SourceIPLookup || res.Request.Location.Timezone != "America/New_York" {
		t.Errorf("request location = %+v", res.Request.Location)
	}
	if got := u.lastLatitude.Load(); got != "40.7128" {
		t.Errorf("forecast requested for latitude %v", got)
	}
	if store.Saves() != 1 {
		t.Errorf("store saves = %d; want 1", store.Saves())
	}
}

func TestCollectExplicitCoordinatesSkipsGeolocation(t *testing.T) {
	u := newUpstream(t, http.StatusOK, http.StatusOK)
	s := celsiusSettings()
	s.Coordinates = &models.Coordinates{Latitude: -33.9249, Longitude: 18.4241}

	res, err := newCollector(u, cache.NewMemoryStore(nil)).Collect(context.Background(), s)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if u.geoCalls.Load() != 0 {
		t.Errorf("geolocation was called %d times", u.geoCalls.Load())
	}
	if !res.Request.Explicit() {
		t.Errorf("request should carry explicit coordinates: %+v", res.Request.Location)
	}
	if got := u.lastLatitude.Load(); got != "-33.9249" {
		t.Errorf("forecast requested for latitude %v", got)
	}
}

func TestCollectGeolocationFailureUsesDefault(t *testing.T) {
	u := newUpstream(t, http.StatusServiceUnavailable, http.StatusOK)

	res, err := newCollector(u, cache.NewMemoryStore(nil)).Collect(context.Background(), celsiusSettings())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if res.Request.Location.Source != models.SourceDefault {
		t.Errorf("location source = %s; want default", res.Request.Location.Source)
	}
	if got := u.lastLatitude.Load(); got != "51.4779" {
		t.Errorf("forecast requested for latitude %v", got)
	}
}

func TestCollectValidCacheSkipsFetch(t *testing.T) {
	u := newUpstream(t, http.StatusOK, http.StatusOK)
	cached := loadFixture(t)

	res, err := newCollector(u, cache.NewMemoryStore(cached)).Collect(context.Background(), celsiusSettings())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if res.Document != cached {
		t.Error("valid cached document should be returned as is")
	}
	if u.forecastCalls.Load() != 0 {
		t.Errorf("forecast API was called %d times", u.forecastCalls.Load())
	}
}

func TestCollectFallsBackToStaleCache(t *testing.T) {
	u := newUpstream(t, http.StatusOK, http.StatusInternalServerError)
	cached := loadFixture(t)
	s := celsiusSettings()
	s.ForceRefresh = true

	res, err := newCollector(u, cache.NewMemoryStore(cached)).Collect(context.Background(), s)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if res.Document != cached {
		t.Error("the cached document should be used when the fetch fails")
	}
	if u.forecastCalls.Load() != 1 {
		t.Errorf("forecast API was called %d times; want 1", u.forecastCalls.Load())
	}
}

func TestCollectFailsWithoutCache(t *testing.T) {
	u := newUpstream(t, http.StatusOK, http.StatusInternalServerError)

	_, err := newCollector(u, cache.NewMemoryStore(nil)).Collect(context.Background(), celsiusSettings())
	if err == nil {
		t.Fatal("Collect() should fail")
	}
	var netErr *datasource.NetworkError
	if !errors.As(err, &netErr) || netErr.Status != http.StatusInternalServerError {
		t.Errorf("error %v should carry the upstream status", err)
	}
	if !errors.Is(err, cache.ErrNotFound) {
		t.Errorf("error %v should report the missing cache", err)
	}
}
