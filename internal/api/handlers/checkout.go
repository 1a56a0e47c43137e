package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/api/middleware"
	"github.com/santhe/storefront/internal/domain"
	"github.com/santhe/storefront/internal/service"
	"github.com/santhe/storefront/internal/upstream"
)

// CheckoutRequest starts a checkout. The payment method is a UI choice;
// the payment service charges the stored payment token regardless.
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=upi card"`
}

func HandleCheckout(checkout *service.CheckoutService, carts *service.CartService, users *upstream.UserClient, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		// Fresh profile and cart: the checkout charges what the backend
		// currently holds, not what any earlier page render showed.
		buyer, err := users.Me(c.Request.Context(), sess.BearerToken)
		if err != nil {
			respondUpstreamError(c, logger, "load profile", err)
			return
		}

		view, err := carts.FetchCart(c.Request.Context(), sess)
		if err != nil {
			respondUpstreamError(c, logger, "load cart", err)
			return
		}

		result, err := checkout.PlaceOrder(c.Request.Context(), sess, buyer, view)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrEmptyCart):
				c.JSON(http.StatusConflict, gin.H{
					"error":    "cart is empty",
					"redirect": "/cart",
				})
			case errors.Is(err, service.ErrCheckoutInProgress):
				c.JSON(http.StatusConflict, gin.H{"error": "checkout already in progress"})
			default:
				logger.Error("checkout failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}

		if result.State == domain.CheckoutFailed {
			c.JSON(http.StatusBadGateway, result)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
