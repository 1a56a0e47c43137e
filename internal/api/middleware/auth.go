package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/session"
)

const sessionContextKey = "storefront_session"

// Auth resolves the storefront session behind the Authorization header.
// Requests without a valid session get a 401 carrying the login redirect
// target, never an upstream call.
func Auth(sessions *session.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		sess, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "unauthorized",
				"redirect": "/login",
			})
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// SessionFromContext retrieves the session stored by Auth.
func SessionFromContext(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}
