// Package handler implements the HTTP API endpoints for VidGate:
// account lifecycle, the video dashboard, and playback resolution.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/vidgate/vidgate-go/internal/core/domain"
	"github.com/vidgate/vidgate-go/internal/core/service"
	"github.com/vidgate/vidgate-go/internal/telemetry/metric"
)

type contextKey string

const claimsKey contextKey = "vidgate.claims"

// WithClaims stores verified token claims in the context. Set by the
// auth middleware before protected handlers run.
func WithClaims(ctx context.Context, claims *service.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext retrieves the claims stored by WithClaims.
func ClaimsFromContext(ctx context.Context) *service.TokenClaims {
	if claims, ok := ctx.Value(claimsKey).(*service.TokenClaims); ok {
		return claims
	}
	return nil
}

// Handler holds the services behind the HTTP API.
type Handler struct {
	authSvc    *service.AuthService
	videoSvc   *service.VideoService
	metrics    *metric.Registry
	logger     *slog.Logger
	trustProxy bool
}

// New creates a Handler. trustProxy controls whether client-supplied
// forwarding headers may identify the caller for credential limiting.
func New(authSvc *service.AuthService, videoSvc *service.VideoService, metrics *metric.Registry, logger *slog.Logger, trustProxy bool) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		authSvc:    authSvc,
		videoSvc:   videoSvc,
		metrics:    metrics,
		logger:     logger,
		trustProxy: trustProxy,
	}
}

// writeJSON writes a JSON response body.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}

// writeServiceError maps a service error to the flat {"error": msg}
// body. Internal details never reach the client.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	status := domain.HTTPStatus(err)
	if status >= 500 {
		h.logger.Error("request failed", "error", err)
	}
	h.writeJSON(w, status, ErrorResponse{Error: domain.ClientMessage(err)})
}

// decodeJSON parses a request body, tolerating an empty body so field
// validation can name the missing field instead.
func decodeJSON(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(target)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (h *Handler) observeAuth(operation string, ok bool) {
	if h.metrics != nil {
		h.metrics.ObserveAuth(operation, ok)
	}
}
