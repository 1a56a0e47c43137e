package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/service"
)

func HandleListProducts(catalog *service.CatalogService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListProducts(c.Request.Context())
		if err != nil {
			respondUpstreamError(c, logger, "load products", err)
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
