package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/api/handlers"
	"github.com/santhe/storefront/internal/api/middleware"
	"github.com/santhe/storefront/internal/config"
	"github.com/santhe/storefront/internal/service"
	"github.com/santhe/storefront/internal/session"
	"github.com/santhe/storefront/internal/upstream"
)

// Services bundles what the router wires into handlers.
type Services struct {
	Sessions *session.Manager
	Catalog  *service.CatalogService
	Cart     *service.CartService
	Checkout *service.CheckoutService
	Clients  *upstream.Clients
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, svcs *Services, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		// Public routes
		api.POST("/auth/login", handlers.HandleLogin(svcs.Sessions, logger))
		api.POST("/auth/register", handlers.HandleRegister(svcs.Clients.Users, logger))
		api.GET("/products", handlers.HandleListProducts(svcs.Catalog, logger))

		// Authenticated routes
		authed := api.Group("")
		authed.Use(middleware.Auth(svcs.Sessions, logger))
		{
			authed.POST("/auth/logout", handlers.HandleLogout(svcs.Sessions, logger))
			authed.GET("/users/me", handlers.HandleGetProfile(svcs.Clients.Users, svcs.Sessions, logger))
			authed.GET("/cart", handlers.HandleGetCart(svcs.Cart, logger))
			authed.PUT("/cart/items/:id", handlers.HandleUpdateCartItem(svcs.Cart, logger))
			authed.PATCH("/cart/items/:id", handlers.HandleUpdateCartItem(svcs.Cart, logger))
			authed.DELETE("/cart/items/:id", handlers.HandleRemoveCartItem(svcs.Cart, logger))
			authed.POST("/checkout", handlers.HandleCheckout(svcs.Checkout, svcs.Cart, svcs.Clients.Users, logger))
			authed.GET("/orders", handlers.HandleListOrders(svcs.Clients.Orders, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests with a per-request id
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
