package googlemaps

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackvoice/pkg/domain/interfaces"
	"github.com/secmon-lab/slackvoice/pkg/domain/model"
	"github.com/secmon-lab/slackvoice/pkg/utils/errutil"
)

const (
	// DefaultBaseURL is the Google Maps Platform web service root
	DefaultBaseURL = "https://maps.googleapis.com"
	// DefaultTimeout bounds each geocode and timezone call
	DefaultTimeout = 5 * time.Second

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Client calls the Geocoding and Time Zone APIs
type Client struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

var _ interfaces.GeoClient = (*Client)(nil)

// Option is a functional option for client configuration
type Option func(*Client)

// WithBaseURL overrides the API root
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.SetTimeout(timeout)
	}
}

// New creates a Google Maps client with the given API key
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.New("Google Maps API key is required")
	}

	c := &Client{
		client:  resty.New().SetTimeout(DefaultTimeout),
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves an address query to the coordinates of its first result
func (c *Client) Geocode(ctx context.Context, query string) (*model.Coordinates, error) {
	var result geocodeResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("address", query).
		SetQueryParam("key", c.apiKey).
		SetResult(&result).
		Get(c.baseURL + "/maps/api/geocode/json")
	if err != nil {
		return nil, goerr.Wrap(model.NewUpstreamError(model.ErrGeocodeFailed, errutil.TransportMessage(err)),
			"failed to request geocode", goerr.V("query", query))
	}

	if status := upstreamStatus(resp, result.Status); status != statusOK {
		return nil, goerr.Wrap(model.NewUpstreamError(model.ErrGeocodeFailed, status),
			"geocode did not succeed", goerr.V("query", query), goerr.V(model.StatusKey, status))
	}
	if len(result.Results) == 0 {
		return nil, goerr.Wrap(model.NewUpstreamError(model.ErrGeocodeFailed, statusZeroResults),
			"geocode returned no result", goerr.V("query", query))
	}

	loc := result.Results[0].Geometry.Location
	return &model.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}

type timezoneResponse struct {
	Status     string `json:"status"`
	RawOffset  int    `json:"rawOffset"`
	DstOffset  int    `json:"dstOffset"`
	TimeZoneID string `json:"timeZoneId"`
}

// UTCOffset returns raw plus daylight-saving offset at the coordinates and instant
func (c *Client) UTCOffset(ctx context.Context, coords model.Coordinates, at time.Time) (model.UTCOffset, error) {
	location := fmt.Sprintf("%s,%s",
		strconv.FormatFloat(coords.Lat, 'f', -1, 64),
		strconv.FormatFloat(coords.Lng, 'f', -1, 64))

	var result timezoneResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("location", location).
		SetQueryParam("timestamp", strconv.FormatInt(at.Unix(), 10)).
		SetQueryParam("key", c.apiKey).
		SetResult(&result).
		Get(c.baseURL + "/maps/api/timezone/json")
	if err != nil {
		return 0, goerr.Wrap(model.NewUpstreamError(model.ErrTimezoneLookupFailed, errutil.TransportMessage(err)),
			"failed to request timezone", goerr.V("location", location))
	}

	if status := upstreamStatus(resp, result.Status); status != statusOK {
		return 0, goerr.Wrap(model.NewUpstreamError(model.ErrTimezoneLookupFailed, status),
			"timezone lookup did not succeed", goerr.V("location", location), goerr.V(model.StatusKey, status))
	}

	return model.UTCOffsetFromSeconds(result.RawOffset, result.DstOffset), nil
}

// upstreamStatus prefers the API's status field and falls back to the HTTP status
// line when the body carried none (e.g. a 5xx from a proxy)
func upstreamStatus(resp *resty.Response, status string) string {
	if status == "" && !resp.IsSuccess() {
		return resp.Status()
	}
	return status
}
