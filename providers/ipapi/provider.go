package ipapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"weather-term/datasource"
	"weather-term/models"

	"github.com/go-resty/resty/v2"
)

// DefaultEndpoint is the ip-api.com JSON endpoint. The free tier is HTTP only.
const DefaultEndpoint = "http://ip-api.com/json/"

// errIncomplete is returned when the lookup succeeds but lacks fields
var errIncomplete = errors.New("response is missing lat, lon or timezone")

// Response is the subset of the ip-api.com response the resolver reads
type Response struct {
	Status   string   `json:"status"`
	Message  string   `json:"message,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	Timezone *string  `json:"timezone,omitempty"`
}

// Resolver geolocates the caller by public IP address
type Resolver struct {
	endpoint string
	client   *resty.Client
}

// Ensure Resolver implements LocationSource
var _ datasource.LocationSource = (*Resolver)(nil)

// NewResolver creates an IP geolocation resolver
func NewResolver(endpoint, userAgent string, timeout time.Duration) *Resolver {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Resolver{
		endpoint: endpoint,
		client: resty.New().
			SetHeader("User-Agent", userAgent).
			SetTimeout(timeout),
	}
}

// Name returns the provider name
func (r *Resolver) Name() string {
	return "ip-api"
}

// Locate looks up the caller's coordinates and timezone
func (r *Resolver) Locate(ctx context.Context) (models.Location, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("fields", "status,message,lat,lon,timezone").
		Get(r.endpoint)
	if err != nil {
		return models.Location{}, &datasource.NetworkError{Source: r.Name(), Op: "lookup", Err: err}
	}
	if resp.StatusCode() != 200 {
		return models.Location{}, &datasource.NetworkError{
			Source: r.Name(),
			Op:     "lookup",
			Status: resp.StatusCode(),
			Err:    fmt.Errorf("%s", resp.Body()),
		}
	}

	var body Response
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Location{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return body.Location()
}

// Location converts a lookup response into a validated Location
func (b Response) Location() (models.Location, error) {
	if b.Status != "success" {
		return models.Location{}, fmt.Errorf("lookup status %q: %s", b.Status, b.Message)
	}
	if b.Lat == nil || b.Lon == nil || b.Timezone == nil || *b.Timezone == "" {
		return models.Location{}, errIncomplete
	}
	coords, err := models.NewCoordinates(*b.Lat, *b.Lon)
	if err != nil {
		return models.Location{}, err
	}
	return models.Location{
		Coordinates: coords,
		Timezone:    *b.Timezone,
		Source:      models.SourceIPLookup,
	}, nil
}
