package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackvoice/pkg/domain/interfaces"
	"github.com/secmon-lab/slackvoice/pkg/domain/model"
	"github.com/secmon-lab/slackvoice/pkg/utils/logging"
)

// LocationResolver derives a device's UTC offset from its coarse address.
// The lookup is a strict pipeline (address, then geocode, then timezone) because
// every step needs the previous result. Nothing is cached.
type LocationResolver struct {
	address interfaces.DeviceAddressClient
	geo     interfaces.GeoClient
	now     func() time.Time
}

// NewLocationResolver creates a LocationResolver
func NewLocationResolver(address interfaces.DeviceAddressClient, geo interfaces.GeoClient) *LocationResolver {
	return &LocationResolver{
		address: address,
		geo:     geo,
		now:     time.Now,
	}
}

// ResolveUTCOffset returns the UTC offset currently in effect at the device's location
func (r *LocationResolver) ResolveUTCOffset(ctx context.Context, device *model.Device) (model.UTCOffset, error) {
	addr, err := r.address.GetCountryAndPostalCode(ctx, device)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to get device address")
	}

	coords, err := r.geo.Geocode(ctx, addr.Query())
	if err != nil {
		return 0, goerr.Wrap(err, "failed to geocode device address")
	}

	offset, err := r.geo.UTCOffset(ctx, *coords, r.now())
	if err != nil {
		return 0, goerr.Wrap(err, "failed to look up timezone")
	}

	logging.From(ctx).Debug("resolved device UTC offset", "offset", offset.String())
	return offset, nil
}

// offsetSource picks where a request's UTC offset comes from: the device location when
// location lookup is enabled and the request carries device access, else the configured value.
type offsetSource struct {
	location *LocationResolver
	fallback model.UTCOffset
}

func (s *offsetSource) resolve(ctx context.Context, device *model.Device) (model.UTCOffset, error) {
	if s.location != nil && device.HasLocationAccess() {
		return s.location.ResolveUTCOffset(ctx, device)
	}
	return s.fallback, nil
}
