package connection

import "context"

// AuthResponse is returned by Login and Signup.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UserInfo is the authenticated profile from /auth/me.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// VideoSummary is one dashboard entry.
type VideoSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// PlayInfo is the playback resolution from /video/{id}/play.
type PlayInfo struct {
	EmbedURL string `json:"embed_url"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.Post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.Post(ctx, "/auth/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the profile for the stored token.
func (c *Client) Me(ctx context.Context) (*UserInfo, error) {
	var resp UserInfo
	if err := c.Get(ctx, "/auth/me", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout revokes the stored token on the server.
func (c *Client) Logout(ctx context.Context) error {
	return c.Post(ctx, "/auth/logout", nil, nil)
}

// Dashboard fetches the video catalog, newest first.
func (c *Client) Dashboard(ctx context.Context) ([]VideoSummary, error) {
	var resp []VideoSummary
	if err := c.Get(ctx, "/dashboard", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// PlayURL resolves a video to its embeddable playback URL.
func (c *Client) PlayURL(ctx context.Context, videoID string) (*PlayInfo, error) {
	var resp PlayInfo
	if err := c.Get(ctx, "/video/"+videoID+"/play", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
