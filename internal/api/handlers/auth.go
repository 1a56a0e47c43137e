package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/api/middleware"
	"github.com/santhe/storefront/internal/domain"
	"github.com/santhe/storefront/internal/session"
	"github.com/santhe/storefront/internal/upstream"
	"github.com/santhe/storefront/pkg/httperr"
)

// LoginRequest is the storefront login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the storefront session token and profile
type LoginResponse struct {
	Token string             `json:"token"`
	User  domain.UserProfile `json:"user"`
}

func HandleLogin(sessions *session.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		sess, err := sessions.Begin(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			var authErr *httperr.AuthError
			var svcErr *httperr.ServiceError
			switch {
			case errors.As(err, &authErr):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			case errors.As(err, &svcErr):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			default:
				logger.Error("login failed", zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": "login service unavailable"})
			}
			return
		}

		c.JSON(http.StatusOK, LoginResponse{
			Token: sess.Token,
			User:  sess.Profile,
		})
	}
}

// RegisterRequest is the storefront registration payload. The password
// confirmation is checked here, before anything reaches the user service.
type RegisterRequest struct {
	Username           string `json:"username" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required"`
	ConfirmPassword    string `json:"confirm_password" binding:"required"`
	Role               string `json:"role" binding:"required"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	PhoneNumber        string `json:"phone_number"`
	Address            string `json:"address"`
	DateOfBirth        string `json:"date_of_birth"`
	PaymentMethodToken string `json:"payment_method_token"`
}

func HandleRegister(users *upstream.UserClient, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if req.Password != req.ConfirmPassword {
			verr := &httperr.ValidationError{Field: "confirm_password", Message: "passwords do not match"}
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error()})
			return
		}

		err := users.Register(c.Request.Context(), upstream.RegisterRequest{
			Username:           req.Username,
			Email:              req.Email,
			Password:           req.Password,
			Role:               req.Role,
			FirstName:          req.FirstName,
			LastName:           req.LastName,
			PhoneNumber:        req.PhoneNumber,
			Address:            req.Address,
			DateOfBirth:        req.DateOfBirth,
			PaymentMethodToken: req.PaymentMethodToken,
		})
		if err != nil {
			var svcErr *httperr.ServiceError
			if errors.As(err, &svcErr) && svcErr.Status < http.StatusInternalServerError {
				c.JSON(svcErr.Status, gin.H{"error": "registration rejected"})
				return
			}
			logger.Error("registration failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "registration service unavailable"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": "registered"})
	}
}

func HandleLogout(sessions *session.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.SessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if err := sessions.End(c.Request.Context(), sess.Token); err != nil {
			logger.Warn("logout failed to drop session", zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{"redirect": "/login"})
	}
}
