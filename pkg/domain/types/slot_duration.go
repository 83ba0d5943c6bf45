package types

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sosodev/duration"
)

// ParseSlotDuration parses an ISO-8601 duration slot value such as "PT2H" or "PT45M"
func ParseSlotDuration(s string) (time.Duration, error) {
	d, err := duration.Parse(s)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid duration slot", goerr.V("duration", s))
	}
	return d.ToTimeDuration(), nil
}
