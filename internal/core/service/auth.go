package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/vidgate/vidgate-go/internal/core/domain"
)

// UserRepository is the storage interface for accounts.
type UserRepository interface {
	// Create stores a new user. It returns domain.ErrEmailExists when
	// the email is already registered.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by normalized email.
	// Returns domain.ErrUserNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByID retrieves a user by ID.
	// Returns domain.ErrUserNotFound when absent.
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// RevocationRepository is the storage interface for logged-out tokens.
// Entries only need to survive until the token would have expired
// anyway.
type RevocationRepository interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthConfig holds configuration for AuthService.
type AuthConfig struct {
	// TokenSecret signs access tokens (HS256).
	TokenSecret []byte

	// TokenTTL is the access token lifetime (default 24h).
	TokenTTL time.Duration

	// CredentialAttemptsPerHour caps login/signup attempts per client IP.
	// Zero disables the limiter.
	CredentialAttemptsPerHour int
}

// AuthService owns the account lifecycle: signup, login, logout,
// profile lookup, and bearer token verification.
type AuthService struct {
	users   UserRepository
	revoked RevocationRepository
	issuer  *TokenIssuer
	limiter *LimiterRegistry
	logger  *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(users UserRepository, revoked RevocationRepository, cfg AuthConfig, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}

	var limiter *LimiterRegistry
	if cfg.CredentialAttemptsPerHour > 0 {
		perSecond := rate.Limit(float64(cfg.CredentialAttemptsPerHour) / 3600.0)
		limiter = NewLimiterRegistry(perSecond, cfg.CredentialAttemptsPerHour)
	}

	return &AuthService{
		users:   users,
		revoked: revoked,
		issuer:  NewTokenIssuer(cfg.TokenSecret, cfg.TokenTTL),
		limiter: limiter,
		logger:  logger,
	}
}

// SignupRequest carries the signup parameters.
type SignupRequest struct {
	Name     string
	Email    string
	Password string
	ClientIP string
}

// LoginRequest carries the login parameters.
type LoginRequest struct {
	Email    string
	Password string
	ClientIP string
}

// AuthResult is returned by Signup and Login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// Signup registers a new account and returns a fresh access token.
func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (*AuthResult, error) {
	if err := s.checkRate(req.ClientIP); err != nil {
		return nil, err
	}

	if field := firstMissing(map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
	}, "name", "email", "password"); field != "" {
		return nil, domain.ErrMissingField.WithMessage("Missing field: " + field)
	}

	email := domain.NormalizeEmail(req.Email)
	if !domain.ValidEmail(email) {
		return nil, domain.ErrInvalidEmail
	}
	if !domain.ValidPassword(req.Password) {
		return nil, domain.ErrWeakPassword
	}

	user := domain.NewUser(req.Name, email)
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, domain.ErrInternal.WithCause(err)
	}
	user.PasswordHash = hash

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return nil, domain.ErrEmailExists
		}
		return nil, domain.ErrStorage.WithCause(err)
	}

	tok, _, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, domain.ErrInternal.WithCause(err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return &AuthResult{Token: tok, User: user}, nil
}

// Login authenticates an existing account and returns an access token.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResult, error) {
	if err := s.checkRate(req.ClientIP); err != nil {
		return nil, err
	}

	if field := firstMissing(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	}, "email", "password"); field != "" {
		return nil, domain.ErrMissingField.WithMessage("Missing field: " + field)
	}

	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, domain.ErrStorage.WithCause(err)
	}
	if !VerifyPassword(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	tok, _, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, domain.ErrInternal.WithCause(err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &AuthResult{Token: tok, User: user}, nil
}

// Me returns the profile of the authenticated user.
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.ErrStorage.WithCause(err)
	}
	return user, nil
}

// Logout revokes the token carrying claims. The revocation record
// expires with the token itself.
func (s *AuthService) Logout(ctx context.Context, claims *TokenClaims) error {
	expiresAt := time.Now().Add(DefaultTokenTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.revoked.Revoke(ctx, claims.JTI(), expiresAt); err != nil {
		return domain.ErrStorage.WithCause(err)
	}
	s.logger.Info("token revoked", "user_id", claims.UserID())
	return nil
}

// Authenticate verifies a bearer token string: signature, expiry,
// and the revocation list. Used by the HTTP auth middleware.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*TokenClaims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, domain.ErrTokenMissing
	}

	claims, err := s.issuer.Parse(tokenString)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.JTI())
	if err != nil {
		return nil, domain.ErrStorage.WithCause(err)
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}
	return claims, nil
}

func (s *AuthService) checkRate(clientIP string) error {
	if s.limiter == nil || clientIP == "" {
		return nil
	}
	if !s.limiter.Allow(clientIP) {
		return domain.ErrRateLimited
	}
	return nil
}

// firstMissing returns the first field (in order) whose value is blank.
func firstMissing(fields map[string]string, order ...string) string {
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			return name
		}
	}
	return ""
}
