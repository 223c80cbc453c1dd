package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-term/cache"
	"weather-term/collector"
	"weather-term/config"
	"weather-term/datasource"
	"weather-term/providers/ipapi"
	"weather-term/providers/openmeteo"
	"weather-term/render"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

const userAgent = "weather-term"

// app holds the process boundaries so a run can be driven from tests
type app struct {
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
	now    func() time.Time
	size   render.SizeFunc
}

func main() {
	// Load environment variables from .env file
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
		now:    time.Now,
		size:   render.StdoutSize,
	}
	code := a.run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the exit status
func (a *app) run(ctx context.Context, args []string) int {
	settings, action, err := config.Resolve(args, a.getenv)
	switch action {
	case config.ActionHelp:
		fmt.Fprint(a.stdout, config.Usage())
		return 0
	case config.ActionVersion:
		fmt.Fprintf(a.stdout, "weather-term %s\n", version)
		return 0
	case config.ActionUnknown:
		fmt.Fprintf(a.stdout, "weather-term: %v\nRun 'weather-term --help' for usage.\n", err)
		return 0
	}
	if err != nil {
		fmt.Fprintf(a.stderr, "weather-term: %v\n", err)
		return 1
	}

	logger := newLogger(a.stderr, settings)
	clock := a.now()

	// Each upstream sits behind a limiter; a canceled context stops a call before it is sent
	store := cache.NewFileStore(settings.CachePath)
	forecasts := cache.NewCachedForecastSource(
		datasource.NewRateLimitedForecastSource(
			openmeteo.NewClient(settings.ForecastURL, userAgent, settings.Timeout),
			datasource.DefaultMinInterval),
		store, a.now, logger)
	locator := datasource.NewFallbackLocator(
		datasource.NewRateLimitedLocationSource(
			ipapi.NewResolver(settings.GeoURL, userAgent, settings.Timeout),
			datasource.DefaultMinInterval),
		settings.DefaultLocation, logger)

	fc := collector.NewForecastCollector(locator, forecasts, logger)
	fc.SetFetchTimeout(settings.Timeout)

	res, err := fc.Collect(ctx, settings)
	if err != nil {
		logger.Error("no forecast available", "error", err)
		return 1
	}

	width, height := render.DetectSize(a.size, a.getenv)
	layout := render.NewLayout(width, height)
	r := render.NewRenderer(render.NewPainter(a.stdout, settings.Color), settings.Style, layout, clock)

	var out string
	switch settings.Mode {
	case config.ModeDay:
		out = r.DayTable(res.Document, settings.HoursBefore, settings.HoursAfter)
	case config.ModeWeek:
		out = r.WeekTable(res.Document)
	default:
		out = r.Summary(res.Document)
	}
	fmt.Fprintln(a.stdout, out)

	if settings.RuntimeInfo {
		hits, misses, fallbacks := forecasts.CacheStats()
		logger.Info("runtime info",
			"origin", forecasts.LastOrigin(),
			"location", res.Request.Location.Coordinates.String(),
			"location_source", res.Request.Location.Source,
			"cache_path", store.Path(),
			"cache_age", clock.Sub(res.Document.CurrentTime()).Round(time.Second),
			"terminal", fmt.Sprintf("%dx%d", width, height),
			"stride", layout.Stride(settings.HoursBefore, settings.HoursAfter),
			"elapsed", res.Elapsed.Round(time.Millisecond),
			"cache_hits", hits,
			"cache_misses", misses,
			"cache_fallbacks", fallbacks)
	}
	return 0
}

// newLogger logs to stderr at warn, error with --quiet, info with --runtime-info
func newLogger(w io.Writer, s config.Settings) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case s.RuntimeInfo:
		level = slog.LevelInfo
	case s.Quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
