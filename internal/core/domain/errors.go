// Package domain defines the core domain models for vidgate.
package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// DomainError is a business error with a structured code.
//
// Codes have the form "VG-<AREA>-<NNNN>" where the numeric segment
// encodes the HTTP status tens (4010 -> 401, 4040 -> 404). The Message
// is the exact string clients see in the {"error": ...} response body.
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches DomainErrors by code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy carrying a different client-visible message.
// The code, and therefore the HTTP status, is preserved.
func (e *DomainError) WithMessage(msg string) *DomainError {
	return &DomainError{Code: e.Code, Message: msg, Cause: e.Cause}
}

// WithCause returns a copy wrapping cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{Code: e.Code, Message: e.Message, Cause: cause}
}

// NewDomainError creates a DomainError.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// HTTPStatus derives the HTTP status code for an error.
// Non-domain errors map to 500.
func HTTPStatus(err error) int {
	var de *DomainError
	if !errors.As(err, &de) {
		return http.StatusInternalServerError
	}
	i := strings.LastIndex(de.Code, "-")
	if i < 0 || len(de.Code)-i-1 != 4 {
		return http.StatusInternalServerError
	}
	n, convErr := strconv.Atoi(de.Code[i+1:])
	if convErr != nil {
		return http.StatusInternalServerError
	}
	status := n / 10
	if status < 100 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}

// ClientMessage extracts the client-visible message for an error.
// Non-domain errors collapse to a generic message so internals never leak.
func ClientMessage(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return "Internal server error"
}

// Authentication and account errors.
var (
	// ErrInvalidCredentials is returned for a wrong email or password.
	// The message deliberately does not reveal which one was wrong.
	ErrInvalidCredentials = NewDomainError("VG-AUTH-4010", "Invalid email or password")

	// ErrTokenMissing indicates no bearer token was supplied.
	ErrTokenMissing = NewDomainError("VG-AUTH-4011", "Missing authorization token")

	// ErrTokenInvalid indicates the bearer token failed verification.
	ErrTokenInvalid = NewDomainError("VG-AUTH-4012", "Invalid or expired token")

	// ErrTokenRevoked indicates the token was logged out.
	ErrTokenRevoked = NewDomainError("VG-AUTH-4013", "Token has been revoked")

	// ErrEmailExists indicates a signup with an already-registered email.
	ErrEmailExists = NewDomainError("VG-ACCT-4000", "Email already exists")

	// ErrInvalidEmail indicates the email failed format validation.
	ErrInvalidEmail = NewDomainError("VG-ACCT-4001", "Invalid email format")

	// ErrWeakPassword indicates the password is below the minimum length.
	ErrWeakPassword = NewDomainError("VG-ACCT-4002", "Password must be at least 8 characters")

	// ErrMissingField indicates a required request field is absent.
	// Use WithMessage to name the field.
	ErrMissingField = NewDomainError("VG-ACCT-4003", "Missing field")

	// ErrUserNotFound indicates the authenticated user no longer exists.
	ErrUserNotFound = NewDomainError("VG-ACCT-4040", "User not found")
)

// Catalog errors.
var (
	// ErrVideoNotFound indicates an unknown or inactive video.
	ErrVideoNotFound = NewDomainError("VG-VID-4040", "Video not found")

	// ErrInvalidVideoID indicates a malformed video identifier.
	ErrInvalidVideoID = NewDomainError("VG-VID-4000", "Invalid video id")
)

// System errors.
var (
	// ErrBadRequest indicates an unparseable request body.
	ErrBadRequest = NewDomainError("VG-SYS-4000", "Bad request")

	// ErrRateLimited indicates too many requests from one client.
	ErrRateLimited = NewDomainError("VG-SYS-4290", "Too many requests")

	// ErrInternal is the generic server-side failure.
	ErrInternal = NewDomainError("VG-SYS-5000", "Internal server error")

	// ErrStorage indicates a storage layer failure.
	ErrStorage = NewDomainError("VG-SYS-5001", "Internal server error")
)
