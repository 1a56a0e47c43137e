package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/session"
)

func protectedRouter(t *testing.T) (*gin.Engine, *session.Manager, session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore(0)
	mgr := session.NewManager(store, nil, zap.NewNop())

	router := gin.New()
	router.GET("/api/users/me", Auth(mgr, zap.NewNop()), func(c *gin.Context) {
		sess, ok := SessionFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"bearer": sess.BearerToken})
	})
	return router, mgr, store
}

func TestAuthMissingTokenRedirectsToLogin(t *testing.T) {
	router, _, _ := protectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"/login"`)
}

func TestAuthUnknownTokenRejected(t *testing.T) {
	router, _, _ := protectedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer nope")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthResolvesStoredSession(t *testing.T) {
	router, _, store := protectedRouter(t)

	sess := &session.Session{Token: "tok-1", BearerToken: "jwt-xyz", CreatedAt: time.Now()}
	require.NoError(t, store.Put(context.Background(), sess))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jwt-xyz")
}
