package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"weather-term/datasource"
	"weather-term/models"

	"github.com/go-resty/resty/v2"
)

// DefaultEndpoint is the public Open-Meteo forecast endpoint
const DefaultEndpoint = "https://api.open-meteo.com/v1/forecast"

// Client fetches forecast documents from Open-Meteo
type Client struct {
	endpoint string
	client   *resty.Client
}

// Ensure Client implements ForecastSource
var _ datasource.ForecastSource = (*Client)(nil)

// NewClient creates a forecast client for the given endpoint
func NewClient(endpoint, userAgent string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		client: resty.New().
			SetHeader("User-Agent", userAgent).
			SetHeader("Accept", "application/json").
			SetTimeout(timeout),
	}
}

// Name returns the provider name
func (c *Client) Name() string {
	return "Open-Meteo"
}

// FetchRaw performs the forecast request and returns the response body as is
func (c *Client) FetchRaw(ctx context.Context, req datasource.ForecastRequest) ([]byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(ForecastQuery(req)).
		Get(c.endpoint)
	if err != nil {
		return nil, &datasource.NetworkError{Source: c.Name(), Op: "forecast", Err: err}
	}

	// Check for error status code
	if resp.StatusCode() != 200 {
		return nil, &datasource.NetworkError{
			Source: c.Name(),
			Op:     "forecast",
			Status: resp.StatusCode(),
			Err:    fmt.Errorf("%s", apiReason(resp.Body())),
		}
	}
	return resp.Body(), nil
}

// FetchForecast fetches and decodes a forecast document
func (c *Client) FetchForecast(ctx context.Context, req datasource.ForecastRequest) (*models.ForecastDocument, error) {
	body, err := c.FetchRaw(ctx, req)
	if err != nil {
		return nil, err
	}
	return Decode(body)
}

// Decode parses and validates a forecast document
func Decode(body []byte) (*models.ForecastDocument, error) {
	var doc models.ForecastDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	doc.Raw = body
	return &doc, nil
}

// apiReason extracts the "reason" field Open-Meteo puts in error bodies
func apiReason(body []byte) string {
	var apiErr struct {
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Reason != "" {
		return apiErr.Reason
	}
	return string(body)
}
