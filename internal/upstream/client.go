// Package upstream holds the typed HTTP clients for the backend
// microservices (user, product, cart, order, payment). Every client shares
// one base client that speaks JSON and attaches the bearer credential when
// one is present. No call is retried; failures surface to the caller.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/santhe/storefront/pkg/httperr"
)

type Client struct {
	service    string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for one upstream service. baseURL is
// normalized by stripping any trailing slash.
func NewClient(service, baseURL string, logger *zap.Logger) *Client {
	return &Client{
		service: service,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// do executes one JSON round trip. bearer is attached as an Authorization
// header when non-empty. out, when non-nil, receives the decoded response
// body. Non-2xx responses become httperr.ServiceError, 401 becomes
// httperr.AuthError, transport failures become httperr.NetworkError.
func (c *Client) do(ctx context.Context, method, path, bearer string, in, out interface{}) error {
	var reqBody io.Reader
	if in != nil {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &httperr.NetworkError{Service: c.service, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &httperr.NetworkError{Service: c.service, Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return &httperr.AuthError{Service: c.service}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("upstream call failed",
			zap.String("service", c.service),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return &httperr.ServiceError{Service: c.service, Status: resp.StatusCode, Body: string(body)}
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to unmarshal %s response: %w", c.service, err)
		}
	}

	return nil
}

// Clients bundles the typed upstream clients the storefront depends on.
type Clients struct {
	Users    *UserClient
	Products *ProductClient
	Cart     *CartClient
	Orders   *OrderClient
	Payments *PaymentClient
}

// URLs configures where each upstream service lives.
type URLs struct {
	User    string
	Product string
	Cart    string
	Order   string
	Payment string
}

// NewClients creates the full client bundle.
func NewClients(urls URLs, logger *zap.Logger) *Clients {
	return &Clients{
		Users:    NewUserClient(urls.User, logger),
		Products: NewProductClient(urls.Product, logger),
		Cart:     NewCartClient(urls.Cart, logger),
		Orders:   NewOrderClient(urls.Order, logger),
		Payments: NewPaymentClient(urls.Payment, logger),
	}
}
