// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finledger/backend/internal/application/adapter"
	"github.com/finledger/backend/internal/application/usecase/auth"
	domainerror "github.com/finledger/backend/internal/domain/error"
	"github.com/finledger/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the authenticated user's ID.
	UserIDKey ContextKey = "user_id"
	// UserEmailKey is the context key for the authenticated user's email.
	UserEmailKey ContextKey = "user_email"
)

// AuthMiddleware provides JWT authentication middleware. Beyond verifying
// the token it re-resolves the principal's user record, so a token issued
// for a since-deleted account stops working immediately.
type AuthMiddleware struct {
	tokenService       adapter.TokenService
	currentUserUseCase *auth.CurrentUserUseCase
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService, currentUserUseCase *auth.CurrentUserUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService:       tokenService,
		currentUserUseCase: currentUserUseCase,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.Verify(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		output, err := m.currentUserUseCase.Execute(c.Request.Context(), auth.CurrentUserInput{
			PrincipalEmail: claims.Email,
		})
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User no longer exists",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
			c.Abort()
			return
		}

		c.Set(string(UserIDKey), output.User.ID)
		c.Set(string(UserEmailKey), output.User.Email)

		c.Next()
	}
}

// UserIDFromContext extracts the authenticated user's ID set by Authenticate.
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// UserEmailFromContext extracts the authenticated user's email.
func UserEmailFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(string(UserEmailKey))
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}
