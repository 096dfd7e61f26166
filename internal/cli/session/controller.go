// Package session coordinates the CLI's authentication state.
//
// The Controller owns the transition between signed out and signed
// in. On every success path the token is persisted before the state
// flips, so a crash between the two leaves a stored token that the
// next startup check validates, never a signed-in state without a
// token.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/vidgate/vidgate-go/internal/cli/connection"
	"github.com/vidgate/vidgate-go/internal/cli/credential"
)

// Fallback messages for success responses missing their token.
var (
	ErrLoginFailed  = errors.New("Login failed")
	ErrSignupFailed = errors.New("Signup failed")
)

// Controller tracks whether the CLI is signed in and against which
// account.
type Controller struct {
	client *connection.Client
	store  *credential.Store
	logger *slog.Logger

	mu       sync.RWMutex
	signedIn bool
	loading  bool
	user     *connection.UserInfo
}

// New creates a Controller.
func New(client *connection.Client, store *credential.Store, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{client: client, store: store, logger: logger}
}

// SignedIn reports whether a session is active.
func (c *Controller) SignedIn() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.signedIn
}

// Loading reports whether a startup check is in progress.
func (c *Controller) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// User returns the signed-in profile, or nil.
func (c *Controller) User() *connection.UserInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

// StartupCheck validates any stored token against the server and
// settles the initial state. Any probe failure, server rejection or
// transport error alike, treats the stored token as invalid: it is
// cleared and the session resolves to signed out.
func (c *Controller) StartupCheck(ctx context.Context) {
	c.setLoading(true)
	defer c.setLoading(false)

	if _, ok := c.store.Get(); !ok {
		c.setSignedOut()
		return
	}

	user, err := c.client.Me(ctx)
	if err != nil {
		c.logger.Debug("stored token validation failed", "error", err)
		c.store.Clear()
		c.setSignedOut()
		return
	}

	c.setSignedIn(user)
}

// Login authenticates and persists the session.
func (c *Controller) Login(ctx context.Context, email, password string) (*connection.UserInfo, error) {
	resp, err := c.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, ErrLoginFailed
	}

	// Persist before flipping state.
	c.store.Set(resp.Token)

	user, err := c.client.Me(ctx)
	if err != nil {
		c.logger.Debug("profile fetch after login failed", "error", err)
		user = nil
	}
	c.setSignedIn(user)
	return user, nil
}

// Signup registers an account and persists the session.
func (c *Controller) Signup(ctx context.Context, name, email, password string) (*connection.UserInfo, error) {
	resp, err := c.client.Signup(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, ErrSignupFailed
	}

	c.store.Set(resp.Token)

	user, err := c.client.Me(ctx)
	if err != nil {
		c.logger.Debug("profile fetch after signup failed", "error", err)
		user = nil
	}
	c.setSignedIn(user)
	return user, nil
}

// Logout ends the session. The server-side revocation is best
// effort: the local token and state are cleared even when the server
// cannot be reached.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.client.Logout(ctx); err != nil {
		c.logger.Debug("server logout failed, clearing locally", "error", err)
	}
	c.store.Clear()
	c.setSignedOut()
}

func (c *Controller) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

func (c *Controller) setSignedIn(user *connection.UserInfo) {
	c.mu.Lock()
	c.signedIn = true
	c.user = user
	c.mu.Unlock()
}

func (c *Controller) setSignedOut() {
	c.mu.Lock()
	c.signedIn = false
	c.user = nil
	c.mu.Unlock()
}
