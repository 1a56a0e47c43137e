package upstream

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/domain"
)

// PaymentClient talks to the payment service.
type PaymentClient struct {
	c *Client
}

func NewPaymentClient(baseURL string, logger *zap.Logger) *PaymentClient {
	return &PaymentClient{c: NewClient("payment", baseURL, logger)}
}

// Charge processes one payment for the given user and amount.
func (p *PaymentClient) Charge(ctx context.Context, bearer string, req domain.PaymentRequest) (*domain.Payment, error) {
	var payment domain.Payment
	if err := p.c.do(ctx, http.MethodPost, "/api/payments", bearer, req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
