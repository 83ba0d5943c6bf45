package types

// RequestType is the type of an incoming voice platform request
type RequestType string

const (
	RequestTypeLaunch       RequestType = "LaunchRequest"
	RequestTypeIntent       RequestType = "IntentRequest"
	RequestTypeSessionEnded RequestType = "SessionEndedRequest"
)

// IntentName identifies a voice intent
type IntentName string

const (
	IntentHelp   IntentName = "AMAZON.HelpIntent"
	IntentStop   IntentName = "AMAZON.StopIntent"
	IntentCancel IntentName = "AMAZON.CancelIntent"

	IntentSlackAway        IntentName = "SlackAwayIntent"
	IntentSlackStatus      IntentName = "SlackStatusIntent"
	IntentSlackClearStatus IntentName = "SlackClearStatusIntent"
	IntentSlackSnooze      IntentName = "SlackSnoozeIntent"
	IntentSlackEndSnooze   IntentName = "SlackEndSnoozeIntent"
)

// Slot names used by the interaction model
const (
	SlotAwayStatus = "awaystatus"
	SlotStatus     = "status"
	SlotDuration   = "duration"
	SlotTime       = "time"
)

// String returns the string representation of the intent name
func (n IntentName) String() string {
	return string(n)
}
