package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/upstream"
	"github.com/santhe/storefront/pkg/httperr"
)

func fakeUserService(t *testing.T) *upstream.UserClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			w.Write([]byte(`{"access_token": "jwt-xyz", "token_type": "bearer"}`))
		case "/api/users/me":
			if r.Header.Get("Authorization") != "Bearer jwt-xyz" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"id": 42, "username": "ravi", "email": "ravi@example.com", "role": "consumer"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return upstream.NewUserClient(srv.URL, zap.NewNop())
}

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	sess := &Session{Token: "tok-1", BearerToken: "jwt", CreatedAt: time.Now()}
	require.NoError(t, store.Put(ctx, sess))

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "jwt", got.BearerToken)

	require.NoError(t, store.Delete(ctx, "tok-1"))
	_, err = store.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	sess := &Session{Token: "tok-1", CreatedAt: time.Now().Add(-time.Second)}
	require.NoError(t, store.Put(ctx, sess))

	_, err := store.Get(ctx, "tok-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManagerBeginStoresSessionWithProfile(t *testing.T) {
	store := NewMemoryStore(0)
	mgr := NewManager(store, fakeUserService(t), zap.NewNop())

	sess, err := mgr.Begin(context.Background(), "ravi", "secret")
	require.NoError(t, err)

	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "jwt-xyz", sess.BearerToken)
	assert.Equal(t, "ravi", sess.Profile.Username)

	resolved, err := mgr.Resolve(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.BearerToken, resolved.BearerToken)
}

func TestManagerResolveUnknownTokenIsAuthError(t *testing.T) {
	mgr := NewManager(NewMemoryStore(0), fakeUserService(t), zap.NewNop())

	var authErr *httperr.AuthError
	_, err := mgr.Resolve(context.Background(), "nope")
	require.ErrorAs(t, err, &authErr)

	_, err = mgr.Resolve(context.Background(), "")
	require.ErrorAs(t, err, &authErr)
}

func TestManagerEndDropsSession(t *testing.T) {
	mgr := NewManager(NewMemoryStore(0), fakeUserService(t), zap.NewNop())

	sess, err := mgr.Begin(context.Background(), "ravi", "secret")
	require.NoError(t, err)

	require.NoError(t, mgr.End(context.Background(), sess.Token))

	var authErr *httperr.AuthError
	_, err = mgr.Resolve(context.Background(), sess.Token)
	assert.ErrorAs(t, err, &authErr)
}
