// Package auth keeps the client's bearer token and drives login/logout.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"financebook/internal/logger"
)

// TokenKey is the fixed key the token is stored under.
const TokenKey = "financebook_token"

// Store holds the bearer token. A remembered token is written to a file
// readable only by the owner; a session token lives in memory. The token
// is re-read on every call, and one whose JWT exp has passed is treated
// as absent.
type Store struct {
	mu      sync.Mutex
	path    string
	session string
	now     func() time.Time
	log     *zap.SugaredLogger
}

// NewStore creates a store persisting remembered tokens at path. An empty
// path disables persistence.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now, log: logger.Named("auth")}
}

// Token returns the current token.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := s.session
	if token == "" {
		token = s.readFile()
	}
	if token == "" {
		return "", false
	}
	if s.expired(token) {
		if err := s.clearLocked(); err != nil {
			s.log.Warnw("dropping expired token", "path", s.path, "error", err)
		}
		return "", false
	}
	return token, true
}

// Save stores token, on disk when remember is set and in memory otherwise.
// Saving always replaces whatever was stored before.
func (s *Store) Save(token string, remember bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.clearLocked(); err != nil {
		return err
	}
	if !remember || s.path == "" {
		s.session = token
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}
	data, err := json.Marshal(map[string]string{TokenKey: token})
	if err != nil {
		return fmt.Errorf("encoding token file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}

// Clear removes the token from memory and disk.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

// Remembered reports whether a token is persisted on disk.
func (s *Store) Remembered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readFile() != ""
}

func (s *Store) clearLocked() error {
	s.session = ""
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing token file: %w", err)
	}
	return nil
}

func (s *Store) readFile() string {
	if s.path == "" {
		return ""
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	var stored map[string]string
	if err := json.Unmarshal(data, &stored); err != nil {
		return ""
	}
	return stored[TokenKey]
}

// expired reports whether token is a JWT whose exp lies in the past.
// Tokens that are not JWTs are left to the server to judge.
func (s *Store) expired(token string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && !claims.ExpiresAt.After(s.now())
}
