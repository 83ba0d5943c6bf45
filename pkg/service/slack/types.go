package slack

import (
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds every Slack API call
	DefaultTimeout = 10 * time.Second

	// upstream value for an active presence
	presenceAuto = "auto"
)

// Option is a functional option for client configuration
type Option func(*Client)

// WithAPIURL overrides the Slack Web API base URL. The URL must end with a slash.
func WithAPIURL(url string) Option {
	return func(c *Client) {
		c.apiURL = url
	}
}

// WithHTTPClient sets the HTTP client used for Slack API calls
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-call timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}
