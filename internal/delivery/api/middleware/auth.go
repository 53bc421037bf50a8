package middleware

import (
	"strings"

	deliverycontext "kurvalgom/internal/delivery/context"
	domainerrors "kurvalgom/internal/domain/errors"
	"kurvalgom/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves bearer tokens into identities.
type AuthMiddleware struct {
	tokens service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := BearerToken(c)
		if token == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("bearer token is missing")
		}

		identity, ok := m.tokens.Validate(token)
		if !ok {
			return domainerrors.ErrUnauthenticated.WrapMessage("token is invalid or expired")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// OptionalAuthenticate attaches the identity when a valid token is present and lets the request through otherwise.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := BearerToken(c); token != "" {
			if identity, ok := m.tokens.Validate(token); ok {
				deliverycontext.SetIdentity(c, identity)
			}
		}

		return next(c)
	}
}

// BearerToken extracts the token from the Authorization header, or "" when absent.
func BearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return ""
	}

	return strings.TrimSpace(token)
}
