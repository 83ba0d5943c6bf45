package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/secmon-lab/slackvoice/pkg/domain/model"
	"github.com/secmon-lab/slackvoice/pkg/domain/types"
)

// mockSlackClient is a mock implementation of interfaces.SlackActionClient for testing.
// Every call is recorded by method name in order.
type mockSlackClient struct {
	setPresenceFn    func(ctx context.Context, presence types.Presence, token model.SlackToken) error
	setStatusFn      func(ctx context.Context, profile model.StatusProfile, token model.SlackToken) error
	setSnoozeFn      func(ctx context.Context, minutes int, token model.SlackToken) error
	endSnoozeFn      func(ctx context.Context, token model.SlackToken) error
	isSnoozeActiveFn func(ctx context.Context, token model.SlackToken) (bool, error)

	mu       sync.Mutex
	calls    []string
	presence types.Presence
	profile  *model.StatusProfile
	minutes  int
	token    model.SlackToken
}

func (m *mockSlackClient) record(method string, token model.SlackToken) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, method)
	m.token = token
}

func (m *mockSlackClient) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *mockSlackClient) SetPresence(ctx context.Context, presence types.Presence, token model.SlackToken) error {
	m.record("SetPresence", token)
	m.presence = presence
	if m.setPresenceFn != nil {
		return m.setPresenceFn(ctx, presence, token)
	}
	return nil
}

func (m *mockSlackClient) SetStatus(ctx context.Context, profile model.StatusProfile, token model.SlackToken) error {
	m.record("SetStatus", token)
	m.profile = &profile
	if m.setStatusFn != nil {
		return m.setStatusFn(ctx, profile, token)
	}
	return nil
}

func (m *mockSlackClient) SetSnooze(ctx context.Context, minutes int, token model.SlackToken) error {
	m.record("SetSnooze", token)
	m.minutes = minutes
	if m.setSnoozeFn != nil {
		return m.setSnoozeFn(ctx, minutes, token)
	}
	return nil
}

func (m *mockSlackClient) EndSnooze(ctx context.Context, token model.SlackToken) error {
	m.record("EndSnooze", token)
	if m.endSnoozeFn != nil {
		return m.endSnoozeFn(ctx, token)
	}
	return nil
}

func (m *mockSlackClient) IsSnoozeActive(ctx context.Context, token model.SlackToken) (bool, error) {
	m.record("IsSnoozeActive", token)
	if m.isSnoozeActiveFn != nil {
		return m.isSnoozeActiveFn(ctx, token)
	}
	return false, nil
}

// mockAddressClient is a mock implementation of interfaces.DeviceAddressClient for testing
type mockAddressClient struct {
	getFn func(ctx context.Context, device *model.Device) (*model.Address, error)
	calls int
}

func (m *mockAddressClient) GetCountryAndPostalCode(ctx context.Context, device *model.Device) (*model.Address, error) {
	m.calls++
	if m.getFn != nil {
		return m.getFn(ctx, device)
	}
	return &model.Address{CountryCode: "US", PostalCode: "98109"}, nil
}

// mockGeoClient is a mock implementation of interfaces.GeoClient for testing
type mockGeoClient struct {
	geocodeFn   func(ctx context.Context, query string) (*model.Coordinates, error)
	utcOffsetFn func(ctx context.Context, coords model.Coordinates, at time.Time) (model.UTCOffset, error)
	queries     []string
}

func (m *mockGeoClient) Geocode(ctx context.Context, query string) (*model.Coordinates, error) {
	m.queries = append(m.queries, query)
	if m.geocodeFn != nil {
		return m.geocodeFn(ctx, query)
	}
	return &model.Coordinates{Lat: 47.62, Lng: -122.35}, nil
}

func (m *mockGeoClient) UTCOffset(ctx context.Context, coords model.Coordinates, at time.Time) (model.UTCOffset, error) {
	if m.utcOffsetFn != nil {
		return m.utcOffsetFn(ctx, coords, at)
	}
	return model.UTCOffset(-420), nil
}

// locatedDevice is a device that granted address access
func locatedDevice() *model.Device {
	return &model.Device{
		ID:           "amzn1.ask.device.TEST",
		APIEndpoint:  "https://api.amazonalexa.com",
		ConsentToken: "consent-token",
	}
}
