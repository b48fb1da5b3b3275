// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"strings"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/delivery/http/response"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware is the request gate for protected routes. Every branch is
// terminal within one request: 403 when the Authorization header is absent,
// 401 when it carries no bearer segment, 400 when the token fails
// verification; only a verified token reaches the handler.
type AuthMiddleware struct {
	tokenService service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate validates the bearer token and attaches the resolved account
// identity to the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return rejected(c, domainerrors.ErrNoToken)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) < 2 || parts[1] == "" {
			return rejected(c, domainerrors.ErrMalformedAuthHeader)
		}

		accountID, err := m.tokenService.Verify(parts[1])
		if err != nil {
			return rejected(c, domainerrors.ErrInvalidToken)
		}

		deliverycontext.SetAccountID(c, accountID)

		return next(c)
	}
}

func rejected(c echo.Context, gateErr domainerrors.AppError) error {
	return response.JSONError(c, gateErr.HTTPCode(), gateErr.Message())
}
