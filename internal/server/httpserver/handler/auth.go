package handler

import (
	"net"
	"net/http"
	"strings"

	"github.com/vidgate/vidgate-go/internal/core/domain"
	"github.com/vidgate/vidgate-go/internal/core/service"
)

// clientIP keys the credential limiter. Forwarding headers are only
// honored behind a trusted proxy; otherwise a caller could rotate
// X-Forwarded-For to dodge the per-IP budget.
func (h *Handler) clientIP(r *http.Request) string {
	if h.trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			parts := strings.Split(xff, ",")
			return strings.TrimSpace(parts[0])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Signup handles POST /auth/signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, domain.ErrBadRequest)
		return
	}

	res, err := h.authSvc.Signup(r.Context(), &service.SignupRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		ClientIP: h.clientIP(r),
	})
	h.observeAuth("signup", err == nil)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, AuthResponse{Message: "Success", Token: res.Token})
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, domain.ErrBadRequest)
		return
	}

	res, err := h.authSvc.Login(r.Context(), &service.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
		ClientIP: h.clientIP(r),
	})
	h.observeAuth("login", err == nil)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, AuthResponse{Message: "Success", Token: res.Token})
}

// Me handles GET /auth/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		h.writeServiceError(w, domain.ErrTokenMissing)
		return
	}

	user, err := h.authSvc.Me(r.Context(), claims.UserID())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ProfileResponse{Name: user.Name, Email: user.Email})
}

// Logout handles POST /auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		h.writeServiceError(w, domain.ErrTokenMissing)
		return
	}

	if err := h.authSvc.Logout(r.Context(), claims); err != nil {
		h.writeServiceError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.TokensRevoked.Inc()
	}

	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
}
