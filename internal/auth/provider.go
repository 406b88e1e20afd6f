package auth

import (
	"context"
	"sync"

	"github.com/SahilSawant11/mizu/internal/common"
)

// Provider resolves the current authenticated principal. Record-store
// operations that require an owner call it first and fail with
// common.ErrUnauthorized when no identity can be resolved.
type Provider interface {
	CurrentUserID(ctx context.Context) (string, error)
}

// SingleUser is the unscoped (admin/single-user) provider used with the
// embedded store: every record belongs to the one local user.
type SingleUser struct{}

func (SingleUser) CurrentUserID(ctx context.Context) (string, error) {
	return "", nil
}

// TokenSession resolves the owner from an access token supplied at login.
// It holds the most recent token only; refresh and rotation belong to the
// identity provider, not to this client.
type TokenSession struct {
	mu        sync.RWMutex
	secretKey []byte
	userID    string
}

// NewTokenSession creates a logged-out session that verifies tokens with
// secretKey.
func NewTokenSession(secretKey []byte) *TokenSession {
	return &TokenSession{secretKey: secretKey}
}

// Login verifies the token and remembers the embedded user id.
func (s *TokenSession) Login(token string) error {
	userID, err := GetUserIDFromToken(token, s.secretKey)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.userID = userID
	s.mu.Unlock()
	return nil
}

// Logout forgets the current identity.
func (s *TokenSession) Logout() {
	s.mu.Lock()
	s.userID = ""
	s.mu.Unlock()
}

// CurrentUserID returns the logged-in user id or common.ErrUnauthorized.
func (s *TokenSession) CurrentUserID(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.userID == "" {
		return "", common.ErrUnauthorized
	}
	return s.userID, nil
}
