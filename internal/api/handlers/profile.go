package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/api/middleware"
	"github.com/santhe/storefront/internal/session"
	"github.com/santhe/storefront/internal/upstream"
	"github.com/santhe/storefront/pkg/httperr"
)

// HandleGetProfile re-reads the profile from the user service on every
// request rather than serving the login-time copy. An upstream 401 means
// the bearer credential expired; the session is dropped so the next
// request redirects to login.
func HandleGetProfile(users *upstream.UserClient, sessions *session.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		profile, err := users.Me(c.Request.Context(), sess.BearerToken)
		if err != nil {
			var authErr *httperr.AuthError
			if errors.As(err, &authErr) {
				sessions.Invalidate(c.Request.Context(), sess.Token)
			}
			respondUpstreamError(c, logger, "load profile", err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}
