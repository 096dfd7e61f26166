package connection

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Get() (string, bool) {
	return s.token, s.token != ""
}

func TestBearerHeaderAttachedWhenTokenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens{token: "tok-123"})
	if err := c.Get(context.Background(), "/auth/me", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestNoHeaderWhenSignedOut(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, staticTokens{})
	if err := c.Get(context.Background(), "/dashboard", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sawAuth {
		t.Error("Authorization header sent without a stored token")
	}
}

func TestServerErrorFieldWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Invalid email or password"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	err := c.Post(context.Background(), "/auth/login", map[string]string{}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Invalid email or password" {
		t.Errorf("message = %q", err.Error())
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("APIError not surfaced: %v", err)
	}
}

func TestGenericFallbackWhenBodyUnusable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream broke</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	err := c.Get(context.Background(), "/dashboard", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "request failed with status 502" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestTransportErrorSurfaced(t *testing.T) {
	// A closed server yields a connection error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, nil)
	err := c.Get(context.Background(), "/dashboard", nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure misreported as server error: %v", err)
	}
}

func TestSchemePrepended(t *testing.T) {
	c := New("localhost:5080", nil)
	if c.BaseURL() != "http://localhost:5080" {
		t.Errorf("BaseURL = %q", c.BaseURL())
	}
	c = New("https://api.example.com/", nil)
	if c.BaseURL() != "https://api.example.com" {
		t.Errorf("BaseURL = %q", c.BaseURL())
	}
}

func TestTypedEndpoints(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"message": "Success", "token": "tok-abc"}`))
		case "/auth/me":
			w.Write([]byte(`{"name": "Alice", "email": "alice@example.com"}`))
		case "/dashboard":
			w.Write([]byte(`[{"id": "v1", "title": "First"}]`))
		case "/video/v1/play":
			w.Write([]byte(`{"embed_url": "https://www.youtube.com/embed/abc?enablejsapi=1"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	ctx := context.Background()

	auth, err := c.Login(ctx, "alice@example.com", "pw")
	if err != nil || auth.Token != "tok-abc" {
		t.Errorf("Login = %+v, %v", auth, err)
	}
	me, err := c.Me(ctx)
	if err != nil || me.Name != "Alice" {
		t.Errorf("Me = %+v, %v", me, err)
	}
	videos, err := c.Dashboard(ctx)
	if err != nil || len(videos) != 1 || videos[0].ID != "v1" {
		t.Errorf("Dashboard = %+v, %v", videos, err)
	}
	play, err := c.PlayURL(ctx, "v1")
	if err != nil || play.EmbedURL == "" {
		t.Errorf("PlayURL = %+v, %v", play, err)
	}
}
