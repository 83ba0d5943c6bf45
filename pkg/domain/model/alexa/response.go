package alexa

import "fmt"

const (
	SpeechTypePlainText = "PlainText"
	SpeechTypeSSML      = "SSML"

	CardTypeLinkAccount = "LinkAccount"
	CardTypePermissions = "AskForPermissionsConsent"

	// PermissionCountryAndPostalCode grants read access to the device's coarse address
	PermissionCountryAndPostalCode = "read::alexa:device:all:address:country_and_postal_code"
)

// ResponseEnvelope is the JSON body returned to the voice platform
type ResponseEnvelope struct {
	Version  string   `json:"version"`
	Response Response `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	SSML string `json:"ssml,omitempty"`
}

type Card struct {
	Type        string   `json:"type"`
	Permissions []string `json:"permissions,omitempty"`
}

type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech"`
}

func plain(text string) *OutputSpeech {
	return &OutputSpeech{Type: SpeechTypePlainText, Text: text}
}

// Tell speaks text and ends the session
func Tell(text string) *ResponseEnvelope {
	return &ResponseEnvelope{
		Version: "1.0",
		Response: Response{
			OutputSpeech:     plain(text),
			ShouldEndSession: true,
		},
	}
}

// Ask speaks text and keeps the session open, repeating reprompt on silence
func Ask(text, reprompt string) *ResponseEnvelope {
	return &ResponseEnvelope{
		Version: "1.0",
		Response: Response{
			OutputSpeech:     plain(text),
			Reprompt:         &Reprompt{OutputSpeech: plain(reprompt)},
			ShouldEndSession: false,
		},
	}
}

// AskSSML is Ask with an SSML body. ssml is wrapped in a speak element.
func AskSSML(ssml, reprompt string) *ResponseEnvelope {
	resp := Ask("", reprompt)
	resp.Response.OutputSpeech = &OutputSpeech{
		Type: SpeechTypeSSML,
		SSML: fmt.Sprintf("<speak>%s</speak>", ssml),
	}
	return resp
}

// TellWithLinkAccountCard speaks text and shows the account linking card
func TellWithLinkAccountCard(text string) *ResponseEnvelope {
	resp := Tell(text)
	resp.Response.Card = &Card{Type: CardTypeLinkAccount}
	return resp
}

// TellWithPermissionCard speaks text and asks for the given permissions in the app
func TellWithPermissionCard(text string, permissions ...string) *ResponseEnvelope {
	resp := Tell(text)
	resp.Response.Card = &Card{Type: CardTypePermissions, Permissions: permissions}
	return resp
}

// Empty is the response to a session end notification
func Empty() *ResponseEnvelope {
	return &ResponseEnvelope{Version: "1.0", Response: Response{ShouldEndSession: true}}
}
