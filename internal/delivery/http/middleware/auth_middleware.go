package middleware

import (
	"strings"

	"gradebook/internal/delivery/http/response"
	"gradebook/internal/domain/entity"
	"gradebook/internal/domain/repository"
	"gradebook/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUsername  = "username"
	ContextKeyPrincipal = "principal"
)

// AuthMiddleware provides middleware for bearer-token authentication.
// It resolves the token subject back to a stored user on every request.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	users    repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, users: users}
}

// Authenticate is the core middleware function that validates the bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Authorization header must carry a Bearer token")
		}

		subject, err := m.tokenSvc.ExtractSubject(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		user, err := m.users.FindByUsername(c.Request().Context(), subject)
		if err != nil {
			return response.Unauthorized(c, "UNKNOWN_SUBJECT", "Token subject is not a known user")
		}

		principal := entity.NewUserPrincipal(user)
		ok, err := m.tokenSvc.Validate(tokenString, principal)
		if err != nil || !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUsername, subject)
		c.Set(ContextKeyPrincipal, principal)

		return next(c)
	}
}
