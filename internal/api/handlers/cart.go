package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/api/middleware"
	"github.com/santhe/storefront/internal/service"
)

func HandleGetCart(carts *service.CartService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		view, err := carts.FetchCart(c.Request.Context(), sess)
		if err != nil {
			respondUpstreamError(c, logger, "load cart", err)
			return
		}

		c.JSON(http.StatusOK, view)
	}
}

// UpdateCartItemRequest sets a line's quantity. Quantity is a pointer so
// an explicit zero (meaning: remove the line) survives binding.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func HandleUpdateCartItem(carts *service.CartService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		lineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid cart item id"})
			return
		}

		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		view, err := carts.UpdateQuantity(c.Request.Context(), sess, lineID, *req.Quantity)
		if err != nil {
			respondUpstreamError(c, logger, "update cart", err)
			return
		}

		c.JSON(http.StatusOK, view)
	}
}

func HandleRemoveCartItem(carts *service.CartService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		lineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid cart item id"})
			return
		}

		view, err := carts.RemoveLine(c.Request.Context(), sess, lineID)
		if err != nil {
			respondUpstreamError(c, logger, "update cart", err)
			return
		}

		c.JSON(http.StatusOK, view)
	}
}
