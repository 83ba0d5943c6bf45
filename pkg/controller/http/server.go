package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/slackvoice/pkg/domain/model/alexa"
	"github.com/secmon-lab/slackvoice/pkg/utils/logging"
	"github.com/secmon-lab/slackvoice/pkg/utils/safe"
)

// DefaultRequestTolerance is the maximum allowed distance between a request's timestamp
// and the server clock
const DefaultRequestTolerance = 150 * time.Second

// SkillUseCase answers a voice request. It never fails; failures are rendered as speech.
type SkillUseCase interface {
	Handle(ctx context.Context, req *alexa.RequestEnvelope) *alexa.ResponseEnvelope
}

type Server struct {
	router    *chi.Mux
	skill     SkillUseCase
	appID     string
	tolerance time.Duration
	now       func() time.Time
}

type Options func(*Server)

// WithAppID rejects requests addressed to any other skill
func WithAppID(appID string) Options {
	return func(s *Server) {
		s.appID = appID
	}
}

func WithRequestTolerance(d time.Duration) Options {
	return func(s *Server) {
		s.tolerance = d
	}
}

func WithClock(now func() time.Time) Options {
	return func(s *Server) {
		s.now = now
	}
}

func New(skill SkillUseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:    r,
		skill:     skill,
		tolerance: DefaultRequestTolerance,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Post("/alexa", s.alexaHandler)
	r.Get("/health", healthHandler)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestLogger binds a logger carrying the request ID to the request context
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.Default().With("request_id", middleware.GetReqID(ctx))
		next.ServeHTTP(w, r.WithContext(logging.With(ctx, logger)))
	})
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.From(r.Context()).Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	safe.Respond(r.Context(), w, http.StatusOK, "text/plain", []byte("ok"))
}
