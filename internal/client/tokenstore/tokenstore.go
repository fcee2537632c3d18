// Package tokenstore persists the opaque bearer credential across client
// restarts. The token is treated as an opaque string: it is never parsed,
// validated or inspected here.
package tokenstore

import (
	"os"
	"path/filepath"
	"strings"
)

// Store keeps a single credential in one file. All operations are
// synchronous and idempotent. At most one credential is active at a time;
// Save overwrites any previous one.
type Store struct {
	path string
}

// New returns a Store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Save writes the token, replacing any stored credential. The parent
// directory is created if needed. File mode 0600: the credential grants
// account access.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Load returns the stored token, or "" with a nil error when no credential
// is stored.
func (s *Store) Load() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// Clear removes the stored credential. Clearing an already-empty store is
// not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Token implements the gateway's TokenSource: it reads the credential from
// disk at call time so a just-saved or just-cleared token is always
// current. Read errors degrade to "no credential".
func (s *Store) Token() string {
	t, err := s.Load()
	if err != nil {
		return ""
	}
	return t
}
