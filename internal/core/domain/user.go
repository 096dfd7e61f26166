// Package domain defines the core domain models for vidgate.
//
// Domain models are pure value objects without IO dependencies or
// framework coupling.
package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User is a registered account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser creates a User with a fresh ID and normalized fields.
// The password hash is set separately by the auth service.
func NewUser(name, email string) *User {
	return &User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		CreatedAt: time.Now().UTC(),
	}
}

// Clone returns a copy so stores can hand out values safely.
func (u *User) Clone() *User {
	c := *u
	return &c
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email has a plausible address shape.
func ValidEmail(email string) bool {
	return emailRE.MatchString(email)
}

// ValidPassword reports whether password meets the minimum length.
func ValidPassword(password string) bool {
	return len(password) >= MinPasswordLength
}
