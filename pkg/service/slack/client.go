package slack

import (
	"context"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackvoice/pkg/domain/interfaces"
	"github.com/secmon-lab/slackvoice/pkg/domain/model"
	"github.com/secmon-lab/slackvoice/pkg/domain/types"
	"github.com/secmon-lab/slackvoice/pkg/utils/errutil"
	"github.com/slack-go/slack"
)

// Client implements interfaces.SlackActionClient. It keeps no user state; a Slack API
// client is built from the caller's token for every call.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

var _ interfaces.SlackActionClient = (*Client)(nil)

// New creates a new Slack action client
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) api(token model.SlackToken) *slack.Client {
	opts := []slack.Option{slack.OptionHTTPClient(c.httpClient)}
	if c.apiURL != "" {
		opts = append(opts, slack.OptionAPIURL(c.apiURL))
	}
	return slack.New(string(token), opts...)
}

// SetPresence sets the user's presence. Slack has no "active" presence; it is sent as "auto".
func (c *Client) SetPresence(ctx context.Context, presence types.Presence, token model.SlackToken) error {
	value := presence.String()
	if presence == types.PresenceActive {
		value = presenceAuto
	}

	if err := c.api(token).SetUserPresenceContext(ctx, value); err != nil {
		return upstreamError(err, "users.setPresence", goerr.V("presence", value))
	}
	return nil
}

// SetStatus sets the status text and emoji of the user's profile
func (c *Client) SetStatus(ctx context.Context, profile model.StatusProfile, token model.SlackToken) error {
	if err := c.api(token).SetUserCustomStatusContext(ctx, profile.Text, profile.Icon, 0); err != nil {
		return upstreamError(err, "users.profile.set",
			goerr.V("status_text", profile.Text), goerr.V("status_emoji", profile.Icon))
	}
	return nil
}

// SetSnooze turns on DND for the given number of minutes
func (c *Client) SetSnooze(ctx context.Context, minutes int, token model.SlackToken) error {
	if _, err := c.api(token).SetSnoozeContext(ctx, minutes); err != nil {
		return upstreamError(err, "dnd.setSnooze", goerr.V("num_minutes", minutes))
	}
	return nil
}

// EndSnooze ends the user's DND snooze
func (c *Client) EndSnooze(ctx context.Context, token model.SlackToken) error {
	if _, err := c.api(token).EndSnoozeContext(ctx); err != nil {
		return upstreamError(err, "dnd.endSnooze")
	}
	return nil
}

// IsSnoozeActive reports the snooze_enabled flag of the user's DND status
func (c *Client) IsSnoozeActive(ctx context.Context, token model.SlackToken) (bool, error) {
	status, err := c.api(token).GetDNDInfoContext(ctx, nil)
	if err != nil {
		return false, upstreamError(err, "dnd.info")
	}
	return status.SnoozeEnabled, nil
}

// upstreamError keeps the error string reported by Slack (e.g. "invalid_auth") as is.
// Transport failures keep the network error without the request URL.
func upstreamError(err error, method string, values ...goerr.Option) error {
	msg := errutil.TransportMessage(err)
	var slackErr slack.SlackErrorResponse
	if errors.As(err, &slackErr) {
		msg = slackErr.Err
	}

	opts := append([]goerr.Option{goerr.V(model.OperationKey, method)}, values...)
	return goerr.Wrap(model.NewUpstreamError(model.ErrUpstreamActionFailed, msg), "slack API call failed", opts...)
}
