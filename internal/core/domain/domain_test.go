package domain

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"email exists", ErrEmailExists, http.StatusBadRequest},
		{"user not found", ErrUserNotFound, http.StatusNotFound},
		{"video not found", ErrVideoNotFound, http.StatusNotFound},
		{"rate limited", ErrRateLimited, http.StatusTooManyRequests},
		{"internal", ErrInternal, http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped domain error", ErrStorage.WithCause(errors.New("disk full")), http.StatusInternalServerError},
		{"garbage code", NewDomainError("nope", "x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClientMessage(t *testing.T) {
	if got := ClientMessage(ErrInvalidCredentials); got != "Invalid email or password" {
		t.Errorf("ClientMessage = %q", got)
	}
	if got := ClientMessage(errors.New("pq: connection refused")); got != "Internal server error" {
		t.Errorf("ClientMessage leaked internals: %q", got)
	}
	if got := ClientMessage(ErrMissingField.WithMessage("Missing field: email")); got != "Missing field: email" {
		t.Errorf("ClientMessage = %q", got)
	}
}

func TestDomainErrorIs(t *testing.T) {
	wrapped := ErrTokenRevoked.WithCause(errors.New("jti found in blocklist"))
	if !errors.Is(wrapped, ErrTokenRevoked) {
		t.Error("errors.Is failed to match wrapped domain error by code")
	}
	if errors.Is(wrapped, ErrTokenInvalid) {
		t.Error("errors.Is matched a different code")
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "user.name+tag@example.co.uk"}
	invalid := []string{"", "no-at-sign", "a@b", "a b@c.com", "@x.com"}

	for _, e := range valid {
		if !ValidEmail(e) {
			t.Errorf("ValidEmail(%q) = false, want true", e)
		}
	}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Errorf("ValidEmail(%q) = true, want false", e)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Alice@Example.COM "); got != "alice@example.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}

func TestNewUser(t *testing.T) {
	u := NewUser("  Alice  ", "Alice@Example.com")
	if u.ID == "" {
		t.Error("NewUser produced empty ID")
	}
	if u.Name != "Alice" {
		t.Errorf("Name = %q, want %q", u.Name, "Alice")
	}
	if u.Email != "alice@example.com" {
		t.Errorf("Email = %q", u.Email)
	}
}

func TestVideoIDOrdering(t *testing.T) {
	a := NewVideoID()
	b := NewVideoID()
	if !ValidVideoID(a) || !ValidVideoID(b) {
		t.Fatal("generated video ID failed validation")
	}
	if ValidVideoID("not-a-ulid") {
		t.Error("ValidVideoID accepted garbage")
	}
}

func TestVideoEmbedURL(t *testing.T) {
	v := &Video{YouTubeID: "arj7oStGLkU"}
	want := "https://www.youtube.com/embed/arj7oStGLkU?enablejsapi=1"
	if got := v.EmbedURL(); got != want {
		t.Errorf("EmbedURL() = %q, want %q", got, want)
	}
}
