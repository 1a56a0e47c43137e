package upstream

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/domain"
)

// UserClient talks to the user service for authentication, registration
// and profile reads.
type UserClient struct {
	c *Client
}

func NewUserClient(baseURL string, logger *zap.Logger) *UserClient {
	return &UserClient{c: NewClient("user", baseURL, logger)}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the user service's login payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token.
func (u *UserClient) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	var token TokenResponse
	err := u.c.do(ctx, http.MethodPost, "/api/auth/login", "", loginRequest{
		Username: username,
		Password: password,
	}, &token)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// RegisterRequest is the user service's registration payload.
type RegisterRequest struct {
	Username           string `json:"username"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	Role               string `json:"role"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	PhoneNumber        string `json:"phone_number"`
	Address            string `json:"address"`
	DateOfBirth        string `json:"date_of_birth"`
	PaymentMethodToken string `json:"payment_method_token"`
}

// Register creates a new user account.
func (u *UserClient) Register(ctx context.Context, req RegisterRequest) error {
	return u.c.do(ctx, http.MethodPost, "/api/users/register", "", req, nil)
}

// Me fetches the profile behind the bearer token.
func (u *UserClient) Me(ctx context.Context, bearer string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := u.c.do(ctx, http.MethodGet, "/api/users/me", bearer, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
