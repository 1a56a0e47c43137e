package upstream

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/domain"
)

// OrderClient talks to the order management service.
type OrderClient struct {
	c *Client
}

func NewOrderClient(baseURL string, logger *zap.Logger) *OrderClient {
	return &OrderClient{c: NewClient("order", baseURL, logger)}
}

// Create places one single-product order.
func (o *OrderClient) Create(ctx context.Context, bearer string, req domain.OrderRequest) (*domain.Order, error) {
	var order domain.Order
	if err := o.c.do(ctx, http.MethodPost, "/api/orders", bearer, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// List fetches the current user's orders.
func (o *OrderClient) List(ctx context.Context, bearer string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := o.c.do(ctx, http.MethodGet, "/api/orders", bearer, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
