package interfaces

import (
	"context"
	"time"

	"github.com/secmon-lab/slackvoice/pkg/domain/model"
)

// DeviceAddressClient fetches the coarse address of a voice device
type DeviceAddressClient interface {
	// GetCountryAndPostalCode returns model.ErrPermissionDenied when the user has not
	// granted address access
	GetCountryAndPostalCode(ctx context.Context, device *model.Device) (*model.Address, error)
}

// GeoClient resolves places and timezones
type GeoClient interface {
	// Geocode returns the best match for the query, or model.ErrGeocodeFailed
	Geocode(ctx context.Context, query string) (*model.Coordinates, error)

	// UTCOffset returns the offset in effect at the coordinates at the given instant,
	// or model.ErrTimezoneLookupFailed
	UTCOffset(ctx context.Context, coords model.Coordinates, at time.Time) (model.UTCOffset, error)
}
