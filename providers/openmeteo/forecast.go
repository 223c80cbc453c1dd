package openmeteo

import (
	"net/url"
	"strconv"
	"strings"

	"weather-term/datasource"
)

// Fixed request shape. The cache always holds a document of this shape, so
// every display mode can be served from it.
const (
	PastDays     = 1
	ForecastDays = 7
)

var (
	currentVariables = []string{
		"temperature_2m", "relative_humidity_2m", "weather_code",
		"wind_speed_10m", "wind_direction_10m",
	}
	seriesVariables = []string{
		"temperature_2m", "relative_humidity_2m", "dew_point_2m",
		"precipitation_probability", "weather_code",
		"wind_speed_10m", "wind_direction_10m",
	}
	dailyVariables = []string{
		"weather_code", "temperature_2m_max", "temperature_2m_min",
		"sunrise", "sunset", "uv_index_max",
		"precipitation_probability_max", "wind_speed_10m_max",
	}
)

// ForecastQuery builds the query string for a forecast request
func ForecastQuery(req datasource.ForecastRequest) url.Values {
	timezone := req.Location.Timezone
	if timezone == "" {
		timezone = "auto"
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(req.Location.Coordinates.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(req.Location.Coordinates.Longitude, 'f', -1, 64))
	params.Set("current", strings.Join(currentVariables, ","))
	params.Set("hourly", strings.Join(seriesVariables, ","))
	params.Set("minutely_15", strings.Join(seriesVariables, ","))
	params.Set("daily", strings.Join(dailyVariables, ","))
	params.Set("temperature_unit", string(req.Unit))
	params.Set("wind_speed_unit", req.Unit.WindUnit())
	params.Set("timezone", timezone)
	params.Set("timeformat", "unixtime")
	params.Set("past_days", strconv.Itoa(PastDays))
	params.Set("forecast_days", strconv.Itoa(ForecastDays))
	return params
}
