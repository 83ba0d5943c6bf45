package alexa

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackvoice/pkg/domain/interfaces"
	"github.com/secmon-lab/slackvoice/pkg/domain/model"
	"github.com/secmon-lab/slackvoice/pkg/utils/errutil"
)

// DefaultTimeout bounds the device address call
const DefaultTimeout = 5 * time.Second

// Client reads device settings from the voice platform's device API
type Client struct {
	client *resty.Client
}

var _ interfaces.DeviceAddressClient = (*Client)(nil)

// Option is a functional option for client configuration
type Option func(*Client)

// WithTimeout sets the request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.SetTimeout(timeout)
	}
}

// New creates a device address client
func New(opts ...Option) *Client {
	c := &Client{
		client: resty.New().SetTimeout(DefaultTimeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type addressResponse struct {
	CountryCode string `json:"countryCode"`
	PostalCode  string `json:"postalCode"`
}

// GetCountryAndPostalCode fetches the coarse address of the device. Any non-200
// response means the user has not granted address permission.
func (c *Client) GetCountryAndPostalCode(ctx context.Context, device *model.Device) (*model.Address, error) {
	if !device.HasLocationAccess() {
		return nil, goerr.Wrap(model.ErrPermissionDenied, "device has no address access")
	}

	endpoint := fmt.Sprintf("%s/v1/devices/%s/settings/address/countryAndPostalCode",
		device.APIEndpoint, url.PathEscape(device.ID))

	var result addressResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(string(device.ConsentToken)).
		SetHeader("Accept", "application/json").
		SetResult(&result).
		Get(endpoint)
	if err != nil {
		return nil, goerr.Wrap(model.NewUpstreamError(model.ErrDeviceAddressFailed, errutil.TransportMessage(err)),
			"failed to request device address", goerr.V(model.DeviceIDKey, device.ID))
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, goerr.Wrap(model.ErrPermissionDenied, "device address request rejected",
			goerr.V(model.DeviceIDKey, device.ID),
			goerr.V("status_code", resp.StatusCode()))
	}

	return &model.Address{
		CountryCode: result.CountryCode,
		PostalCode:  result.PostalCode,
	}, nil
}
