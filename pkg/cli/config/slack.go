package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackvoice/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

type Slack struct {
	apiURL  string
	timeout time.Duration
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-api-url",
			Usage:       "Slack Web API base URL (for proxies and testing)",
			Category:    "Slack",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("SLACKVOICE_SLACK_API_URL"),
		},
		&cli.DurationFlag{
			Name:        "slack-timeout",
			Usage:       "Timeout of a single Slack API call",
			Category:    "Slack",
			Value:       slack.DefaultTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("SLACKVOICE_SLACK_TIMEOUT"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("api-url", x.apiURL),
		slog.Duration("timeout", x.timeout),
	)
}

// Configure creates the Slack client. Tokens are per request, so none is configured here.
func (x *Slack) Configure() (*slack.Client, error) {
	if x.timeout <= 0 {
		return nil, goerr.Wrap(ErrInvalidTimeout, "invalid slack timeout", goerr.V("timeout", x.timeout.String()))
	}

	opts := []slack.Option{slack.WithTimeout(x.timeout)}
	if x.apiURL != "" {
		opts = append(opts, slack.WithAPIURL(x.apiURL))
	}
	return slack.New(opts...), nil
}
