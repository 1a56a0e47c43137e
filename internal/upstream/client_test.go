package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/santhe/storefront/pkg/httperr"
)

func TestClientAttachesBearerWhenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient("test", srv.URL+"/", zap.NewNop())

	require.NoError(t, c.do(context.Background(), http.MethodGet, "/x", "jwt-xyz", nil, nil))
	assert.Equal(t, "Bearer jwt-xyz", gotAuth)

	require.NoError(t, c.do(context.Background(), http.MethodGet, "/x", "", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestClientMapsStatusToErrorTaxonomy(t *testing.T) {
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()

	c := NewClient("test", srv.URL, zap.NewNop())
	ctx := context.Background()

	status = http.StatusUnauthorized
	var authErr *httperr.AuthError
	require.ErrorAs(t, c.do(ctx, http.MethodGet, "/x", "", nil, nil), &authErr)

	status = http.StatusNotFound
	var svcErr *httperr.ServiceError
	err := c.do(ctx, http.MethodGet, "/x", "", nil, nil)
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.Status)
}

func TestClientReportsNetworkErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := NewClient("test", srv.URL, zap.NewNop())

	var netErr *httperr.NetworkError
	require.ErrorAs(t, c.do(context.Background(), http.MethodGet, "/x", "", nil, nil), &netErr)
	assert.Equal(t, "test", netErr.Service)
}
