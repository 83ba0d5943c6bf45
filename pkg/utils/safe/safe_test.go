package safe_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackvoice/pkg/utils/logging"
	"github.com/secmon-lab/slackvoice/pkg/utils/safe"
)

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("already closed") }

type failingWriter struct {
	header http.Header
	status int
}

func (w *failingWriter) Header() http.Header { return w.header }
func (w *failingWriter) WriteHeader(status int) { w.status = status }
func (w *failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func loggedContext() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	return logging.With(context.Background(), logger), &buf
}

func TestClose(t *testing.T) {
	t.Run("nil closer is ignored", func(t *testing.T) {
		ctx, buf := loggedContext()
		safe.Close(ctx, nil)
		gt.Value(t, buf.Len()).Equal(0)
	})

	t.Run("failure is logged", func(t *testing.T) {
		ctx, buf := loggedContext()
		safe.Close(ctx, failingCloser{})
		gt.String(t, buf.String()).Contains("already closed")
	})
}

func TestRespond(t *testing.T) {
	t.Run("writes status, content type and body", func(t *testing.T) {
		ctx, buf := loggedContext()
		rec := httptest.NewRecorder()

		safe.Respond(ctx, rec, http.StatusAccepted, "application/json", []byte(`{}`))
		gt.Value(t, rec.Code).Equal(http.StatusAccepted)
		gt.Value(t, rec.Header().Get("Content-Type")).Equal("application/json")
		gt.Value(t, rec.Body.String()).Equal(`{}`)
		gt.Value(t, buf.Len()).Equal(0)
	})

	t.Run("write failure is logged", func(t *testing.T) {
		ctx, buf := loggedContext()
		w := &failingWriter{header: http.Header{}}

		safe.Respond(ctx, w, http.StatusOK, "text/plain", []byte("ok"))
		gt.Value(t, w.status).Equal(http.StatusOK)
		gt.String(t, buf.String()).Contains("broken pipe")
	})
}
