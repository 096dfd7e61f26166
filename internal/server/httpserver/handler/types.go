package handler

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SignupRequest is the request body for POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the response body for signup and login.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ProfileResponse is the response body for GET /auth/me.
type ProfileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MessageResponse is a bare confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// VideoSummary is one dashboard entry.
type VideoSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// PlayResponse is the response body for GET /video/{id}/play.
type PlayResponse struct {
	EmbedURL string `json:"embed_url"`
}
