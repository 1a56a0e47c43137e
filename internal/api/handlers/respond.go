package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/santhe/storefront/pkg/httperr"
)

// respondUpstreamError maps an upstream call failure onto a storefront
// response. A rejected credential clears nothing here; the caller decides
// whether to invalidate the session.
func respondUpstreamError(c *gin.Context, logger *zap.Logger, what string, err error) {
	var authErr *httperr.AuthError
	var svcErr *httperr.ServiceError
	var netErr *httperr.NetworkError

	switch {
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "unauthorized",
			"redirect": "/login",
		})
	case errors.As(err, &svcErr):
		logger.Error(what+" failed", zap.Int("status", svcErr.Status), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to " + what})
	case errors.As(err, &netErr):
		logger.Error(what+" unreachable", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to connect to " + netErr.Service + " service"})
	default:
		logger.Error(what+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
