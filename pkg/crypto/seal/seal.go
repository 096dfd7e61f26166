// Package seal provides authenticated encryption for small secrets.
//
// The cipher is selected once per process based on hardware support:
// AES-GCM where AES instructions are available (amd64, arm64) and
// ChaCha20-Poly1305 elsewhere. The nonce is generated per call and
// prepended to the ciphertext, so a sealed blob is self-contained.
package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
	"runtime"

	"golang.org/x/crypto/chacha20poly1305"
)

// KeySize is the required key length in bytes.
const KeySize = 32

// ErrInvalidKey is returned when the key is not KeySize bytes.
var ErrInvalidKey = errors.New("seal: key must be 32 bytes")

// ErrMalformed is returned when a sealed blob is too short or fails
// authentication.
var ErrMalformed = errors.New("seal: malformed or tampered ciphertext")

// Sealer seals and opens small secrets.
type Sealer struct {
	aead cipher.AEAD
	alg  string
}

// New creates a Sealer for the given 32-byte key.
func New(key []byte) (*Sealer, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	if hasAESSupport() {
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		aead, err := cipher.NewGCM(block)
		if err != nil {
			return nil, err
		}
		return &Sealer{aead: aead, alg: "aes-gcm"}, nil
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return &Sealer{aead: aead, alg: "chacha20-poly1305"}, nil
}

// Algorithm returns the selected cipher name.
func (s *Sealer) Algorithm() string {
	return s.alg
}

// Seal encrypts plaintext and returns nonce||ciphertext.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return s.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a blob produced by Seal.
func (s *Sealer) Open(blob []byte) ([]byte, error) {
	if len(blob) < s.aead.NonceSize() {
		return nil, ErrMalformed
	}
	nonce, ciphertext := blob[:s.aead.NonceSize()], blob[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrMalformed
	}
	return plaintext, nil
}

// hasAESSupport reports whether the platform has hardware AES.
// Go's crypto/aes uses AES-NI on amd64 and the ARM crypto extensions
// on arm64.
func hasAESSupport() bool {
	switch runtime.GOARCH {
	case "amd64", "arm64":
		return true
	default:
		return false
	}
}
