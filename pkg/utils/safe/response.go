package safe

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/secmon-lab/slackvoice/pkg/utils/logging"
)

// Respond writes a complete HTTP response. The status line is already sent when the body
// write fails, so the failure can only be logged.
func Respond(ctx context.Context, w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.From(ctx).Warn("failed to write response",
			slog.Int("status", status),
			slog.Int("size", len(body)),
			slog.Any("error", err),
		)
	}
}
