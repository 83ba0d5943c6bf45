package interfaces

import (
	"context"

	"github.com/secmon-lab/slackvoice/pkg/domain/model"
	"github.com/secmon-lab/slackvoice/pkg/domain/types"
)

// SlackActionClient issues presence, status and DND actions on behalf of a user.
// Implementations hold no per-user state; the token is supplied on every call.
type SlackActionClient interface {
	// SetPresence sets the user's presence
	SetPresence(ctx context.Context, presence types.Presence, token model.SlackToken) error

	// SetStatus sets the user's profile status. An empty profile clears it.
	SetStatus(ctx context.Context, profile model.StatusProfile, token model.SlackToken) error

	// SetSnooze turns on DND for the given number of minutes
	SetSnooze(ctx context.Context, minutes int, token model.SlackToken) error

	// EndSnooze ends an active DND snooze
	EndSnooze(ctx context.Context, token model.SlackToken) error

	// IsSnoozeActive reports whether a DND snooze is currently on
	IsSnoozeActive(ctx context.Context, token model.SlackToken) (bool, error)
}
