package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Presence represents a user's active/away state in a Slack workspace
type Presence string

const (
	PresenceActive Presence = "active"
	PresenceAway   Presence = "away"
)

// String returns the string representation of the presence
func (p Presence) String() string {
	return string(p)
}

// ParsePresence parses a slot value into a Presence. The value is lowercased and
// otherwise passed through, so Slack decides whether an unknown value is acceptable.
func ParsePresence(s string) (Presence, error) {
	p := Presence(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return "", goerr.New("presence is empty")
	}
	return p, nil
}
