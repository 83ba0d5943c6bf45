package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackvoice/pkg/service/alexa"
	"github.com/secmon-lab/slackvoice/pkg/service/googlemaps"
	"github.com/secmon-lab/slackvoice/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type Location struct {
	apiKey  string
	baseURL string
	timeout time.Duration
}

func (x *Location) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "google-maps-api-key",
			Usage:       "Google Maps API key. Device timezone lookup is enabled only when set",
			Category:    "Location",
			Destination: &x.apiKey,
			Sources:     cli.EnvVars("SLACKVOICE_GOOGLE_MAPS_API_KEY"),
		},
		&cli.StringFlag{
			Name:        "google-maps-url",
			Usage:       "Google Maps API base URL",
			Category:    "Location",
			Value:       googlemaps.DefaultBaseURL,
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("SLACKVOICE_GOOGLE_MAPS_URL"),
		},
		&cli.DurationFlag{
			Name:        "location-timeout",
			Usage:       "Timeout of a single device address, geocoding or timezone call",
			Category:    "Location",
			Value:       googlemaps.DefaultTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("SLACKVOICE_LOCATION_TIMEOUT"),
		},
	}
}

func (x Location) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("api-key.len", len(x.apiKey)),
		slog.String("base-url", x.baseURL),
		slog.Duration("timeout", x.timeout),
	)
}

// IsEnabled reports whether device timezone lookup is configured
func (x *Location) IsEnabled() bool {
	return x.apiKey != ""
}

// Configure returns the use case option enabling device timezone lookup, or nil when
// lookup is disabled
func (x *Location) Configure() (usecase.Option, error) {
	if !x.IsEnabled() {
		return nil, nil
	}
	if x.timeout <= 0 {
		return nil, goerr.Wrap(ErrInvalidTimeout, "invalid location timeout", goerr.V("timeout", x.timeout.String()))
	}

	geo, err := googlemaps.New(x.apiKey,
		googlemaps.WithBaseURL(x.baseURL),
		googlemaps.WithTimeout(x.timeout),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create google maps client")
	}
	address := alexa.New(alexa.WithTimeout(x.timeout))

	return usecase.WithLocation(address, geo), nil
}
