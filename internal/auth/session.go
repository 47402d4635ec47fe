package auth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"financebook/internal/logger"
	"financebook/internal/models"
)

// API is the part of the HTTP client used for authentication.
type API interface {
	Login(ctx context.Context, username, password string) (*models.TokenResponse, error)
	Me(ctx context.Context) (*models.User, error)
}

// Session logs a user in and out.
type Session struct {
	api      API
	store    *Store
	onLogout func()
	log      *zap.SugaredLogger
}

// NewSession creates a session. onLogout runs after the token is cleared,
// typically to drop cached query results.
func NewSession(api API, store *Store, onLogout func()) *Session {
	return &Session{api: api, store: store, onLogout: onLogout, log: logger.Named("auth")}
}

// Login obtains a token and validates it with /auth/me. A token the server
// does not accept is never kept.
func (s *Session) Login(ctx context.Context, username, password string, remember bool) (*models.User, error) {
	tok, err := s.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(tok.AccessToken, remember); err != nil {
		return nil, fmt.Errorf("saving token: %w", err)
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		_ = s.store.Clear()
		return nil, err
	}
	s.log.Infow("logged in", "username", user.Username, "remember", remember)
	return user, nil
}

// Me returns the logged-in user.
func (s *Session) Me(ctx context.Context) (*models.User, error) {
	return s.api.Me(ctx)
}

// LoggedIn reports whether a usable token is stored.
func (s *Session) LoggedIn() bool {
	_, ok := s.store.Token()
	return ok
}

// Logout clears the token and runs the logout hook.
func (s *Session) Logout() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	if s.onLogout != nil {
		s.onLogout()
	}
	return nil
}
