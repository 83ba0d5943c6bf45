package types_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackvoice/pkg/domain/types"
)

func TestParsePresence(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.Presence
		wantErr bool
	}{
		{"active", "active", types.PresenceActive, false},
		{"away", "away", types.PresenceAway, false},
		{"upper case", "AWAY", types.PresenceAway, false},
		{"surrounding space", " active ", types.PresenceActive, false},
		{"empty", "", "", true},
		{"blank", "   ", "", true},
		{"unknown value passes through", "Available", types.Presence("available"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParsePresence(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePresence() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePresence() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"MO", "09:00"},
		{"AF", "13:00"},
		{"EV", "19:00"},
		{"NI", "21:00"},
		{"13:45", "13:45"},
		{"ev", "ev"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			gt.Value(t, types.NormalizeTime(tt.input)).Equal(tt.want)
		})
	}
}

func TestTimeToken_IsValid(t *testing.T) {
	for _, tok := range types.AllTimeTokens() {
		gt.Bool(t, tok.IsValid()).True()
	}
	gt.Bool(t, types.TimeToken("XX").IsValid()).False()
}

func TestParseSlotDuration(t *testing.T) {
	t.Run("hours and minutes", func(t *testing.T) {
		d, err := types.ParseSlotDuration("PT1H30M")
		gt.NoError(t, err).Required()
		gt.Value(t, d).Equal(90 * time.Minute)
	})

	t.Run("minutes only", func(t *testing.T) {
		d, err := types.ParseSlotDuration("PT45M")
		gt.NoError(t, err).Required()
		gt.Value(t, d).Equal(45 * time.Minute)
	})

	t.Run("days", func(t *testing.T) {
		d, err := types.ParseSlotDuration("P1D")
		gt.NoError(t, err).Required()
		gt.Value(t, d).Equal(24 * time.Hour)
	})

	t.Run("not a duration", func(t *testing.T) {
		_, err := types.ParseSlotDuration("an hour")
		gt.Error(t, err)
	})
}
