package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/secmon-lab/slackvoice/pkg/domain/model"
	"github.com/secmon-lab/slackvoice/pkg/domain/model/alexa"
)

const (
	speechLinkAccount   = "Please connect your Slack account to Alexa using the Alexa app."
	speechLaunch        = "What would you like to do?"
	speechReprompt      = "I'm sorry, I didn't hear you. Could you say that again?"
	speechUnhandled     = "I didn't get that. What would you like to do?"
	speechOkay          = "Okay"
	speechAskStatus     = "What would you like your status to be?"
	speechCleared       = "Okay, I've cleared your status."
	speechSnoozeEnded   = "Okay, I've turned off do not disturb."
	speechPermission    = "To snooze until a time, I need your device's country and postal code. Please allow access in the Alexa app."
	speechInvalidPres   = "I can set your presence to away or active."
	speechInvalidDur    = "I can only snooze your notifications for between one minute and 24 hours."
	speechInvalidTime   = "I didn't understand that time. Please try again."
	speechAddressFailed = "I couldn't read your device's location: %s"
	speechGeocodeFailed = "I couldn't find your location: %s"
	speechTimezone      = "I couldn't look up your time zone: %s"
	speechUnknownError  = "I'm sorry, something went wrong. Please try again."
)

var helpSSML = strings.Join([]string{
	"<p>Here are a few things you can do:</p>",
	"<p>To set yourself to away, say: set me to away.</p>",
	"<p>To set yourself to active, say: set me to active.</p>",
	"<p>To set your status, say: set my status to, followed by whatever you want your status to be.</p>",
	"<p>To clear your status, say: clear my status.</p>",
	"<p>To pause notifications, say: snooze for one hour, or snooze until this evening.</p>",
	"<p>To resume notifications, say: end my snooze.</p>",
}, "")

func presenceSpeech(presence string) string {
	return fmt.Sprintf("Okay, I've set your presence to %s.", presence)
}

func statusSpeech(phrase string) string {
	return fmt.Sprintf("Okay, I've set your status to: %s", phrase)
}

func snoozeSpeech(r *SnoozeResult) string {
	if r.Until != "" {
		return fmt.Sprintf("Okay, I've snoozed your notifications until %s.", r.Until)
	}
	return fmt.Sprintf("Okay, I've snoozed your notifications for %s.", formatMinutes(r.Minutes))
}

// formatMinutes renders a whole number of minutes as spoken hours and minutes
func formatMinutes(minutes int) string {
	h, m := minutes/60, minutes%60
	var parts []string
	if h > 0 {
		parts = append(parts, plural(h, "hour"))
	}
	if m > 0 || h == 0 {
		parts = append(parts, plural(m, "minute"))
	}
	return strings.Join(parts, " and ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// errorResponse renders a failed action. Upstream error text is spoken unchanged.
func errorResponse(err error) *alexa.ResponseEnvelope {
	switch {
	case errors.Is(err, model.ErrMissingCredential):
		return alexa.TellWithLinkAccountCard(speechLinkAccount)
	case errors.Is(err, model.ErrPermissionDenied):
		return alexa.TellWithPermissionCard(speechPermission, alexa.PermissionCountryAndPostalCode)
	case errors.Is(err, model.ErrInvalidPresence):
		return alexa.Tell(speechInvalidPres)
	case errors.Is(err, model.ErrInvalidDuration):
		return alexa.Tell(speechInvalidDur)
	case errors.Is(err, model.ErrInvalidTime):
		return alexa.Tell(speechInvalidTime)
	}

	msg, ok := model.UpstreamMessage(err)
	if !ok {
		return alexa.Tell(speechUnknownError)
	}
	switch {
	case errors.Is(err, model.ErrDeviceAddressFailed):
		return alexa.Tell(fmt.Sprintf(speechAddressFailed, msg))
	case errors.Is(err, model.ErrGeocodeFailed):
		return alexa.Tell(fmt.Sprintf(speechGeocodeFailed, msg))
	case errors.Is(err, model.ErrTimezoneLookupFailed):
		return alexa.Tell(fmt.Sprintf(speechTimezone, msg))
	default:
		return alexa.Tell(msg)
	}
}

// isExpected reports whether err is a user-facing outcome rather than a fault
func isExpected(err error) bool {
	for _, kind := range []error{
		model.ErrMissingCredential,
		model.ErrPermissionDenied,
		model.ErrInvalidPresence,
		model.ErrInvalidDuration,
		model.ErrInvalidTime,
		model.ErrUpstreamActionFailed,
		model.ErrDeviceAddressFailed,
		model.ErrGeocodeFailed,
		model.ErrTimezoneLookupFailed,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
