package upstream

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/domain"
)

// CartClient talks to the cart management service.
type CartClient struct {
	c *Client
}

func NewCartClient(baseURL string, logger *zap.Logger) *CartClient {
	return &CartClient{c: NewClient("cart", baseURL, logger)}
}

// Get fetches the current user's cart. A 404 (no cart created yet)
// surfaces as a ServiceError with status 404; the cart service treats a
// never-created cart and an emptied cart differently, the storefront does
// not.
func (cc *CartClient) Get(ctx context.Context, bearer string) (*domain.Cart, error) {
	var cart domain.Cart
	if err := cc.c.do(ctx, http.MethodGet, "/api/cart", bearer, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem sets the quantity of one cart line.
func (cc *CartClient) UpdateItem(ctx context.Context, bearer string, itemID int64, quantity int) error {
	path := fmt.Sprintf("/api/cart/items/%d", itemID)
	return cc.c.do(ctx, http.MethodPut, path, bearer, updateItemRequest{Quantity: quantity}, nil)
}

// DeleteItem removes one cart line.
func (cc *CartClient) DeleteItem(ctx context.Context, bearer string, itemID int64) error {
	path := fmt.Sprintf("/api/cart/items/%d", itemID)
	return cc.c.do(ctx, http.MethodDelete, path, bearer, nil, nil)
}
