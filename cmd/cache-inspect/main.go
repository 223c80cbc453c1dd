package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"weather-term/cache"
	"weather-term/config"
	"weather-term/datasource"
	"weather-term/models"
)

// cache-inspect reports what the forecast cache holds and whether a run with
// the given flags would use it
func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	settings, action, err := config.Resolve(os.Args[1:], os.Getenv)
	switch {
	case action == config.ActionHelp:
		fmt.Print("cache-inspect: describe the forecast cache\n\n" + config.Usage())
		return
	case action != config.ActionRun || err != nil:
		fmt.Fprintf(os.Stderr, "cache-inspect: %v\n", err)
		os.Exit(1)
	}

	store := cache.NewFileStore(settings.CachePath)
	fmt.Printf("Cache file: %s\n", store.Path())

	doc, err := store.Load()
	var corrupt *cache.CorruptError
	switch {
	case errors.As(err, &corrupt):
		fmt.Printf("Unreadable: %v\n", err)
		os.Exit(1)
	case err != nil:
		fmt.Printf("Empty: %v\n", err)
		return
	}

	now := time.Now()
	age := now.Sub(doc.CurrentTime()).Round(time.Second)
	unit, _ := doc.TemperatureUnit()
	fmt.Printf("Location:   %.4f:%.4f (%s)\n", doc.Latitude, doc.Longitude, doc.Timezone)
	fmt.Printf("Observed:   %s (%s ago)\n", doc.CurrentTime().In(doc.Zone()).Format(time.RFC1123), age)
	fmt.Printf("Unit:       %s\n", unit)
	fmt.Printf("Samples:    %d quarter-hours, %d days\n", doc.Minutely15.Len(), doc.Daily.Len())

	req := datasource.ForecastRequest{Unit: settings.Unit, ForceRefresh: settings.ForceRefresh}
	if settings.Coordinates != nil {
		req.Location = models.Location{Coordinates: *settings.Coordinates, Source: models.SourceExplicit}
	}
	if cache.IsValid(doc, now, req) {
		fmt.Println("Status:     valid, a run with these flags would use it")
	} else {
		fmt.Printf("Status:     a run with these flags would refetch (timeout %s)\n", cache.Timeout)
	}
}
