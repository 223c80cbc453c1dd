package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"weather-term/config"
	"weather-term/datasource"
	"weather-term/models"
	"weather-term/providers/ipapi"
	"weather-term/providers/openmeteo"
)

// forecast-dump prints the raw forecast response for the configured location,
// bypassing the cache. Accepts the same flags as weather-term.
func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	settings, action, err := config.Resolve(os.Args[1:], os.Getenv)
	switch {
	case action == config.ActionHelp:
		fmt.Print("forecast-dump: print the raw forecast response\n\n" + config.Usage())
		return
	case action != config.ActionRun || err != nil:
		fmt.Fprintf(os.Stderr, "forecast-dump: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx, cancel := context.WithTimeout(context.Background(), 2*settings.Timeout)
	defer cancel()

	var loc models.Location
	if settings.Coordinates != nil {
		loc = models.Location{Coordinates: *settings.Coordinates, Source: models.SourceExplicit}
	} else {
		locator := datasource.NewFallbackLocator(
			ipapi.NewResolver(settings.GeoURL, "weather-term/forecast-dump", settings.Timeout),
			settings.DefaultLocation, logger)
		if loc, err = locator.Locate(ctx); err != nil {
			logger.Error("geolocation failed", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("fetching forecast", "location", loc.Coordinates.String(), "source", loc.Source, "unit", settings.Unit)

	client := openmeteo.NewClient(settings.ForecastURL, "weather-term/forecast-dump", settings.Timeout)
	body, err := client.FetchRaw(ctx, datasource.ForecastRequest{Location: loc, Unit: settings.Unit})
	if err != nil {
		logger.Error("fetch failed", "error", err)
		os.Exit(1)
	}

	if _, err := openmeteo.Decode(body); err != nil {
		logger.Warn("response would be rejected", "error", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		os.Stdout.Write(body)
		return
	}
	pretty.WriteByte('\n')
	pretty.WriteTo(os.Stdout)
}
