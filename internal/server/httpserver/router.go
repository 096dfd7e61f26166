package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/vidgate/vidgate-go/internal/core/service"
	"github.com/vidgate/vidgate-go/internal/server/httpserver/handler"
	"github.com/vidgate/vidgate-go/internal/telemetry/metric"
)

// RouterConfig holds the dependencies and knobs for the HTTP router.
type RouterConfig struct {
	AuthService  *service.AuthService
	VideoService *service.VideoService
	Metrics      *metric.Registry
	Logger       *slog.Logger

	// RequestsPerSecond caps requests per client IP across all
	// routes. Zero disables the limiter.
	RequestsPerSecond float64
	Burst             int

	// TrustProxy lets X-Forwarded-For identify the caller for rate
	// limiting. Leave unset unless a trusted proxy terminates client
	// connections.
	TrustProxy bool
}

// NewRouter builds the full route table with middleware applied.
// Every business route requires a bearer token; health and metrics
// do not.
func NewRouter(cfg *RouterConfig) http.Handler {
	h := handler.New(cfg.AuthService, cfg.VideoService, cfg.Metrics, cfg.Logger, cfg.TrustProxy)

	base := []Middleware{
		RequestID(),
		Recover(cfg.Logger),
		Audit(cfg.Logger, cfg.Metrics),
	}
	if cfg.RequestsPerSecond > 0 {
		base = append(base, RateLimit(cfg.RequestsPerSecond, cfg.Burst, cfg.TrustProxy))
	}
	authed := append(append([]Middleware{}, base...), Auth(cfg.AuthService))

	open := func(fn http.HandlerFunc) http.Handler {
		return Chain(fn, base...)
	}
	protected := func(fn http.HandlerFunc) http.Handler {
		return Chain(fn, authed...)
	}

	mux := http.NewServeMux()

	mux.Handle("GET /health", open(h.Health))
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(cfg.Metrics.Handler(), RequestID(), Recover(cfg.Logger)))
	}

	mux.Handle("POST /auth/signup", open(h.Signup))
	mux.Handle("POST /auth/login", open(h.Login))
	mux.Handle("GET /auth/me", protected(h.Me))
	mux.Handle("POST /auth/logout", protected(h.Logout))

	mux.Handle("GET /dashboard", protected(h.Dashboard))
	mux.Handle("GET /video/{id}/play", protected(h.Play))

	return mux
}
