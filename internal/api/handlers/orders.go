package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/api/middleware"
	"github.com/santhe/storefront/internal/upstream"
)

func HandleListOrders(orders *upstream.OrderClient, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		list, err := orders.List(c.Request.Context(), sess.BearerToken)
		if err != nil {
			respondUpstreamError(c, logger, "load orders", err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}
