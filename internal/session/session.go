// Package session holds the server-side session: an opaque storefront
// token the browser carries as its bearer credential, mapped to the
// upstream bearer token and a cached profile. The manager is the single
// writer (login/logout); middleware and handlers only read.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/domain"
	"github.com/santhe/storefront/internal/upstream"
	"github.com/santhe/storefront/pkg/httperr"
)

// ErrNotFound is returned by a Store when no session exists for a token.
var ErrNotFound = errors.New("session not found")

// Session binds a storefront token to an upstream credential.
type Session struct {
	Token       string             `json:"token"`
	BearerToken string             `json:"bearer_token"`
	Profile     domain.UserProfile `json:"profile"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Store persists sessions keyed by token.
type Store interface {
	Put(ctx context.Context, sess *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// Manager owns the session lifecycle.
type Manager struct {
	store  Store
	users  *upstream.UserClient
	logger *zap.Logger
}

// NewManager creates a session manager.
func NewManager(store Store, users *upstream.UserClient, logger *zap.Logger) *Manager {
	return &Manager{
		store:  store,
		users:  users,
		logger: logger,
	}
}

// Begin logs a user in: exchanges credentials with the user service,
// fetches the profile behind the new bearer token, and stores the session.
func (m *Manager) Begin(ctx context.Context, username, password string) (*Session, error) {
	token, err := m.users.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	profile, err := m.users.Me(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		Token:       uuid.NewString(),
		BearerToken: token.AccessToken,
		Profile:     *profile,
		CreatedAt:   time.Now(),
	}

	if err := m.store.Put(ctx, sess); err != nil {
		return nil, err
	}

	m.logger.Info("session started",
		zap.String("username", profile.Username),
		zap.String("role", string(profile.Role)),
	)

	return sess, nil
}

// Resolve looks up the session for a storefront token. An unknown or
// expired token is an AuthError, which the middleware turns into the
// redirect-to-login signal.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, &httperr.AuthError{Service: "storefront"}
	}
	sess, err := m.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &httperr.AuthError{Service: "storefront"}
		}
		return nil, err
	}
	return sess, nil
}

// End logs a user out by discarding the session. Any in-flight request
// that already resolved the session keeps its credential copy; that race
// is accepted.
func (m *Manager) End(ctx context.Context, token string) error {
	return m.store.Delete(ctx, token)
}

// Invalidate drops a session whose upstream credential was rejected.
func (m *Manager) Invalidate(ctx context.Context, token string) {
	if err := m.store.Delete(ctx, token); err != nil && !errors.Is(err, ErrNotFound) {
		m.logger.Warn("failed to drop rejected session", zap.Error(err))
	}
}
