// Package credential persists the CLI's single access token between
// invocations.
//
// The store holds at most one token. It prefers an encrypted file
// backing, sealing the token with a locally generated key, and falls
// back to a plain file with restrictive permissions when the secure
// backing cannot be initialized. Every operation is best effort: a
// broken credential file reads as signed out, and failed writes are
// logged but never surfaced to the caller.
package credential

import (
	"crypto/rand"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/vidgate/vidgate-go/pkg/crypto/seal"
)

const (
	keyFileName    = "credential.key"
	sealedFileName = "credential"
	plainFileName  = "token"
)

// Store is the on-disk token store.
type Store struct {
	mu     sync.Mutex
	dir    string
	logger *slog.Logger

	probed bool
	sealer *seal.Sealer
}

// NewStore creates a store rooted at dir. The directory is created on
// first write.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// DefaultDir returns the standard store location, ~/.vidgate.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vidgate"
	}
	return filepath.Join(home, ".vidgate")
}

// Get returns the stored token. The second return is false when no
// usable token exists, including when the credential file is corrupt.
func (s *Store) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.probe() {
		ciphertext, err := os.ReadFile(filepath.Join(s.dir, sealedFileName))
		if err != nil {
			return "", false
		}
		plaintext, err := s.sealer.Open(ciphertext)
		if err != nil {
			s.logger.Debug("credential file unreadable, treating as signed out", "error", err)
			return "", false
		}
		return string(plaintext), true
	}

	data, err := os.ReadFile(filepath.Join(s.dir, plainFileName))
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

// Set replaces the stored token. Failures are swallowed: the session
// continues in memory even when persistence is unavailable.
func (s *Store) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		s.logger.Debug("credential dir unavailable", "error", err)
		return
	}

	if s.probe() {
		sealed, err := s.sealer.Seal([]byte(token))
		if err == nil {
			err = writeFileAtomic(filepath.Join(s.dir, sealedFileName), sealed)
		}
		if err == nil {
			return
		}
		s.logger.Debug("write sealed credential failed, using plain backing", "error", err)
	}

	if err := writeFileAtomic(filepath.Join(s.dir, plainFileName), []byte(token)); err != nil {
		s.logger.Debug("write credential", "error", err)
	}
}

// Clear removes any stored token. Missing files are not an error.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{sealedFileName, plainFileName} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			s.logger.Debug("remove credential file", "file", name, "error", err)
		}
	}
}

// probe initializes the secure backing once. It loads or creates the
// sealing key; any failure selects the plain file fallback for the
// lifetime of the store.
func (s *Store) probe() bool {
	if s.probed {
		return s.sealer != nil
	}
	s.probed = true

	keyPath := filepath.Join(s.dir, keyFileName)
	key, err := os.ReadFile(keyPath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Debug("sealing key unreadable, using plain backing", "error", err)
			return false
		}
		key = make([]byte, seal.KeySize)
		if _, err := rand.Read(key); err != nil {
			return false
		}
		if err := os.MkdirAll(s.dir, 0o700); err != nil {
			return false
		}
		if err := writeFileAtomic(keyPath, key); err != nil {
			s.logger.Debug("persist sealing key failed, using plain backing", "error", err)
			return false
		}
	}

	sealer, err := seal.New(key)
	if err != nil {
		s.logger.Debug("sealing key invalid, using plain backing", "error", err)
		return false
	}
	s.sealer = sealer
	return true
}

// writeFileAtomic writes via a temp file and rename so a crash never
// leaves a half-written credential.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
