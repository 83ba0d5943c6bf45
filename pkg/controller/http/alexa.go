package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackvoice/pkg/domain/model/alexa"
	"github.com/secmon-lab/slackvoice/pkg/utils/errutil"
	"github.com/secmon-lab/slackvoice/pkg/utils/safe"
)

// maxRequestBody bounds the size of an incoming request envelope
const maxRequestBody = 1 << 20

// verifyAlexaRequest checks that the request is addressed to this skill and is fresh.
// An empty appID accepts any skill.
func verifyAlexaRequest(req *alexa.RequestEnvelope, appID string, tolerance time.Duration, now time.Time) error {
	if appID != "" && req.ApplicationID() != appID {
		return goerr.New("application ID mismatch",
			goerr.V("expected", appID),
			goerr.V("actual", req.ApplicationID()))
	}

	if req.Request.Timestamp.IsZero() {
		return goerr.New("missing timestamp")
	}

	// Reject requests too far from the server clock in either direction
	diff := now.Sub(req.Request.Timestamp)
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance {
		return goerr.New("timestamp out of tolerance",
			goerr.V("timestamp", req.Request.Timestamp),
			goerr.V("now", now),
			goerr.V("tolerance", tolerance.String()))
	}

	return nil
}

func (s *Server) alexaHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer safe.Close(ctx, r.Body)

	var req alexa.RequestEnvelope
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode alexa request"), http.StatusBadRequest)
		return
	}

	if err := verifyAlexaRequest(&req, s.appID, s.tolerance, s.now()); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "alexa request verification failed",
			goerr.V("request_id", req.Request.RequestID)), http.StatusBadRequest)
		return
	}

	resp := s.skill.Handle(ctx, &req)

	data, err := json.Marshal(resp)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal alexa response"), http.StatusInternalServerError)
		return
	}
	safe.Respond(ctx, w, http.StatusOK, "application/json;charset=UTF-8", data)
}
