package alexa

import (
	"time"

	"github.com/secmon-lab/slackvoice/pkg/domain/model"
	"github.com/secmon-lab/slackvoice/pkg/domain/types"
)

// RequestEnvelope is the JSON body the voice platform posts to the skill endpoint
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Context Context `json:"context"`
	Request Request `json:"request"`
}

type Session struct {
	New         bool        `json:"new"`
	SessionID   string      `json:"sessionId"`
	Application Application `json:"application"`
	User        User        `json:"user"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID      string           `json:"userId"`
	AccessToken model.SlackToken `json:"accessToken,omitempty"`
	Permissions *UserPermissions `json:"permissions,omitempty"`
}

type UserPermissions struct {
	ConsentToken model.ConsentToken `json:"consentToken,omitempty"`
}

type Context struct {
	System System `json:"System"`
}

type System struct {
	Application    Application        `json:"application"`
	User           User               `json:"user"`
	Device         Device             `json:"device"`
	APIEndpoint    string             `json:"apiEndpoint"`
	APIAccessToken model.ConsentToken `json:"apiAccessToken,omitempty"`
}

type Device struct {
	DeviceID string `json:"deviceId"`
}

type Request struct {
	Type      types.RequestType `json:"type"`
	RequestID string            `json:"requestId"`
	Timestamp time.Time         `json:"timestamp"`
	Locale    string            `json:"locale"`
	Intent    *Intent           `json:"intent,omitempty"`
	Reason    string            `json:"reason,omitempty"`
}

type Intent struct {
	Name  types.IntentName `json:"name"`
	Slots map[string]Slot  `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// ApplicationID returns the skill ID the request was addressed to
func (e *RequestEnvelope) ApplicationID() string {
	if id := e.Context.System.Application.ApplicationID; id != "" {
		return id
	}
	return e.Session.Application.ApplicationID
}

// AccessToken returns the linked Slack token, if any
func (e *RequestEnvelope) AccessToken() model.SlackToken {
	if t := e.Session.User.AccessToken; t != "" {
		return t
	}
	return e.Context.System.User.AccessToken
}

// IntentName returns the intent name, or empty for non-intent requests
func (e *RequestEnvelope) IntentName() types.IntentName {
	if e.Request.Intent == nil {
		return ""
	}
	return e.Request.Intent.Name
}

// SlotValue returns the value of the named slot, or empty if it was not filled
func (e *RequestEnvelope) SlotValue(name string) string {
	if e.Request.Intent == nil {
		return ""
	}
	return e.Request.Intent.Slots[name].Value
}

// Device returns the device the request came from. The consent token is the
// system API access token, falling back to the legacy session permission token.
func (e *RequestEnvelope) Device() *model.Device {
	token := e.Context.System.APIAccessToken
	if token == "" && e.Session.User.Permissions != nil {
		token = e.Session.User.Permissions.ConsentToken
	}
	return &model.Device{
		ID:           e.Context.System.Device.DeviceID,
		APIEndpoint:  e.Context.System.APIEndpoint,
		ConsentToken: token,
	}
}
