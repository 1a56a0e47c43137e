package upstream

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/domain"
)

// ProductClient talks to the product catalog service. The catalog is
// public; no bearer credential is attached.
type ProductClient struct {
	c *Client
}

func NewProductClient(baseURL string, logger *zap.Logger) *ProductClient {
	return &ProductClient{c: NewClient("product", baseURL, logger)}
}

// List fetches the full catalog. There is no batch-by-id endpoint, so
// callers needing specific products fetch everything and filter.
func (p *ProductClient) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := p.c.do(ctx, http.MethodGet, "/api/products/search", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
