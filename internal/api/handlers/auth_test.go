package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/upstream"
)

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func registerRouter(t *testing.T, upstreamCalls *int32) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(upstreamCalls, 1)
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)

	router := gin.New()
	router.POST("/api/auth/register", HandleRegister(upstream.NewUserClient(srv.URL, zap.NewNop()), zap.NewNop()))
	return router
}

func TestRegisterPasswordMismatchNeverReachesUpstream(t *testing.T) {
	var calls int32
	router := registerRouter(t, &calls)

	w := postJSON(router, "/api/auth/register", `{
		"username": "ravi",
		"email": "ravi@example.com",
		"password": "Password123!",
		"confirm_password": "DifferentPassword",
		"role": "consumer"
	}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "passwords do not match")
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "validation must reject before any network call")
}

func TestRegisterForwardsWhenValid(t *testing.T) {
	var calls int32
	router := registerRouter(t, &calls)

	w := postJSON(router, "/api/auth/register", `{
		"username": "ravi",
		"email": "ravi@example.com",
		"password": "Password123!",
		"confirm_password": "Password123!",
		"role": "consumer",
		"first_name": "Ravi",
		"last_name": "Kumar"
	}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRegisterMissingFieldsRejected(t *testing.T) {
	var calls int32
	router := registerRouter(t, &calls)

	w := postJSON(router, "/api/auth/register", `{"username": "ravi"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}
