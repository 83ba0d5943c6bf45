package alexa_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackvoice/pkg/domain/model"
	"github.com/secmon-lab/slackvoice/pkg/domain/model/alexa"
	"github.com/secmon-lab/slackvoice/pkg/domain/types"
)

func TestRequestEnvelope_Accessors(t *testing.T) {
	t.Run("non-intent request has no slots", func(t *testing.T) {
		req := &alexa.RequestEnvelope{Request: alexa.Request{Type: types.RequestTypeLaunch}}
		gt.Value(t, req.IntentName()).Equal(types.IntentName(""))
		gt.Value(t, req.SlotValue(types.SlotStatus)).Equal("")
	})

	t.Run("application ID prefers the system context", func(t *testing.T) {
		req := &alexa.RequestEnvelope{}
		req.Session.Application.ApplicationID = "session-app"
		gt.Value(t, req.ApplicationID()).Equal("session-app")

		req.Context.System.Application.ApplicationID = "system-app"
		gt.Value(t, req.ApplicationID()).Equal("system-app")
	})

	t.Run("access token falls back to system user", func(t *testing.T) {
		req := &alexa.RequestEnvelope{}
		gt.Value(t, req.AccessToken()).Equal(model.SlackToken(""))

		req.Context.System.User.AccessToken = "xoxp-system"
		gt.Value(t, req.AccessToken()).Equal(model.SlackToken("xoxp-system"))

		req.Session.User.AccessToken = "xoxp-session"
		gt.Value(t, req.AccessToken()).Equal(model.SlackToken("xoxp-session"))
	})

	t.Run("consent token falls back to session permissions", func(t *testing.T) {
		req := &alexa.RequestEnvelope{}
		req.Context.System.Device.DeviceID = "device"
		req.Context.System.APIEndpoint = "https://api.amazonalexa.com"
		gt.Bool(t, req.Device().HasLocationAccess()).False()

		req.Session.User.Permissions = &alexa.UserPermissions{ConsentToken: "legacy"}
		gt.Value(t, req.Device().ConsentToken).Equal(model.ConsentToken("legacy"))

		req.Context.System.APIAccessToken = "current"
		gt.Value(t, req.Device().ConsentToken).Equal(model.ConsentToken("current"))
		gt.Bool(t, req.Device().HasLocationAccess()).True()
	})
}

func TestResponseBuilders(t *testing.T) {
	t.Run("tell ends the session", func(t *testing.T) {
		resp := alexa.Tell("Okay")
		gt.Value(t, resp.Version).Equal("1.0")
		gt.Value(t, resp.Response.OutputSpeech.Type).Equal(alexa.SpeechTypePlainText)
		gt.Bool(t, resp.Response.ShouldEndSession).True()
		gt.Value(t, resp.Response.Reprompt).Nil()
	})

	t.Run("ask keeps the session open", func(t *testing.T) {
		resp := alexa.Ask("What?", "Say again")
		gt.Bool(t, resp.Response.ShouldEndSession).False()
		gt.Value(t, resp.Response.Reprompt.OutputSpeech.Text).Equal("Say again")
	})

	t.Run("SSML is wrapped in speak", func(t *testing.T) {
		resp := alexa.AskSSML("<p>Hi</p>", "Say again")
		gt.Value(t, resp.Response.OutputSpeech.SSML).Equal("<speak><p>Hi</p></speak>")
		gt.Value(t, resp.Response.OutputSpeech.Text).Equal("")
	})

	t.Run("cards", func(t *testing.T) {
		link := alexa.TellWithLinkAccountCard("Link please")
		gt.Value(t, link.Response.Card.Type).Equal(alexa.CardTypeLinkAccount)

		perm := alexa.TellWithPermissionCard("Allow please", alexa.PermissionCountryAndPostalCode)
		gt.Value(t, perm.Response.Card.Type).Equal(alexa.CardTypePermissions)
		gt.Value(t, perm.Response.Card.Permissions).Equal([]string{alexa.PermissionCountryAndPostalCode})
	})

	t.Run("empty has no speech", func(t *testing.T) {
		resp := alexa.Empty()
		gt.Value(t, resp.Response.OutputSpeech).Nil()
	})
}
