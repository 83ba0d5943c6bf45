package googlemaps_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackvoice/pkg/domain/model"
	"github.com/secmon-lab/slackvoice/pkg/service/googlemaps"
)

func newServer(t *testing.T, body string, query *url.Values) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if query != nil {
			*query = r.URL.Query()
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// closedServerURL returns the address of a server that no longer accepts connections
func closedServerURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return srv.URL
}

func TestNew(t *testing.T) {
	t.Run("returns error when API key is empty", func(t *testing.T) {
		_, err := googlemaps.New("")
		gt.Value(t, err).NotNil()
	})

	t.Run("creates client when API key is provided", func(t *testing.T) {
		c, err := googlemaps.New("test-key")
		gt.NoError(t, err).Required()
		gt.Value(t, c).NotNil()
	})
}

func TestGeocode(t *testing.T) {
	ctx := context.Background()

	t.Run("uses first result", func(t *testing.T) {
		var q url.Values
		srv := newServer(t, `{"status":"OK","results":[
			{"geometry":{"location":{"lat":47.62,"lng":-122.35}}},
			{"geometry":{"location":{"lat":1,"lng":2}}}
		]}`, &q)

		c, err := googlemaps.New("test-key", googlemaps.WithBaseURL(srv.URL))
		gt.NoError(t, err).Required()

		coords, err := c.Geocode(ctx, "98109, US")
		gt.NoError(t, err).Required()
		gt.Value(t, coords.Lat).Equal(47.62)
		gt.Value(t, coords.Lng).Equal(-122.35)
		gt.Value(t, q.Get("address")).Equal("98109, US")
		gt.Value(t, q.Get("key")).Equal("test-key")
	})

	t.Run("non-OK status carries the upstream status", func(t *testing.T) {
		srv := newServer(t, `{"status":"REQUEST_DENIED","results":[]}`, nil)
		c, err := googlemaps.New("test-key", googlemaps.WithBaseURL(srv.URL))
		gt.NoError(t, err).Required()

		_, err = c.Geocode(ctx, "nowhere")
		gt.Error(t, err).Is(model.ErrGeocodeFailed)
		msg, ok := model.UpstreamMessage(err)
		gt.Bool(t, ok).True()
		gt.Value(t, msg).Equal("REQUEST_DENIED")
	})

	t.Run("transport failure is a geocode failure without the API key", func(t *testing.T) {
		c, err := googlemaps.New("secret-maps-key", googlemaps.WithBaseURL(closedServerURL(t)))
		gt.NoError(t, err).Required()

		_, err = c.Geocode(ctx, "98109, US")
		gt.Error(t, err).Is(model.ErrGeocodeFailed)
		msg, ok := model.UpstreamMessage(err)
		gt.Bool(t, ok).True()
		gt.String(t, msg).IsNotEmpty()
		gt.String(t, err.Error()).NotContains("secret-maps-key")
	})

	t.Run("OK without results fails", func(t *testing.T) {
		srv := newServer(t, `{"status":"OK","results":[]}`, nil)
		c, err := googlemaps.New("test-key", googlemaps.WithBaseURL(srv.URL))
		gt.NoError(t, err).Required()

		_, err = c.Geocode(ctx, "nowhere")
		gt.Error(t, err).Is(model.ErrGeocodeFailed)
	})
}

func TestUTCOffset(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

	t.Run("sums raw and dst offsets", func(t *testing.T) {
		var q url.Values
		srv := newServer(t, `{"status":"OK","rawOffset":-28800,"dstOffset":3600,"timeZoneId":"America/Los_Angeles"}`, &q)
		c, err := googlemaps.New("test-key", googlemaps.WithBaseURL(srv.URL))
		gt.NoError(t, err).Required()

		offset, err := c.UTCOffset(ctx, model.Coordinates{Lat: 47.62, Lng: -122.35}, at)
		gt.NoError(t, err).Required()
		gt.Value(t, offset).Equal(model.UTCOffset(-420))
		gt.Value(t, q.Get("location")).Equal("47.62,-122.35")
		gt.Value(t, q.Get("timestamp")).Equal("1719835200")
	})

	t.Run("non-OK status is a timezone failure", func(t *testing.T) {
		srv := newServer(t, `{"status":"INVALID_REQUEST"}`, nil)
		c, err := googlemaps.New("test-key", googlemaps.WithBaseURL(srv.URL))
		gt.NoError(t, err).Required()

		_, err = c.UTCOffset(ctx, model.Coordinates{}, at)
		gt.Error(t, err).Is(model.ErrTimezoneLookupFailed)
		msg, _ := model.UpstreamMessage(err)
		gt.Value(t, msg).Equal("INVALID_REQUEST")
	})

	t.Run("transport failure is a timezone failure without the API key", func(t *testing.T) {
		c, err := googlemaps.New("secret-maps-key", googlemaps.WithBaseURL(closedServerURL(t)))
		gt.NoError(t, err).Required()

		_, err = c.UTCOffset(ctx, model.Coordinates{Lat: 47.62, Lng: -122.35}, at)
		gt.Error(t, err).Is(model.ErrTimezoneLookupFailed)
		_, ok := model.UpstreamMessage(err)
		gt.Bool(t, ok).True()
		gt.String(t, err.Error()).NotContains("secret-maps-key")
	})
}
