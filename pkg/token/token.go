// Package token provides random identifier generation.
package token

import (
	"crypto/rand"
	"encoding/base64"
)

// DefaultLength is the default number of random bytes.
const DefaultLength = 32

// Generate returns a cryptographically random identifier,
// Base64 RawURL encoded.
func Generate() (string, error) {
	return GenerateWithLength(DefaultLength)
}

// GenerateWithLength returns an identifier built from length random bytes.
func GenerateWithLength(length int) (string, error) {
	b, err := GenerateBytes(length)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GenerateBytes returns length cryptographically random bytes.
func GenerateBytes(length int) ([]byte, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
