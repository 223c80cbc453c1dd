package datasource

import (
	"context"

	"weather-term/models"
)

// LocationSource defines the interface for anything that can tell where the caller is
type LocationSource interface {
	Name() string
	Locate(ctx context.Context) (models.Location, error)
}
