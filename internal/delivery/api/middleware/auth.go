package middleware

import (
	"strings"

	"sweets/internal/delivery/api/response"
	deliverycontext "sweets/internal/delivery/context"
	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/service"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
	Gate     usecase.AccessGate
}

// AuthMiddleware authenticates access tokens and guards the admin routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	gate     usecase.AccessGate
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenSvc, gate: params.Gate}
}

// Authenticate validates the bearer access token and stores the caller.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Authorization must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil || claims.UserID == uuid.Nil {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), domainerrors.ErrInvalidToken.Message())
		}

		deliverycontext.SetPrincipal(c, entity.Principal{
			UserID:   claims.UserID,
			Username: claims.Username,
		})

		return next(c)
	}
}

// RequireAdmin passes only callers the access gate accepts. It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := deliverycontext.GetPrincipal(c)
		if !ok {
			return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), domainerrors.ErrInvalidToken.Message())
		}

		if err := m.gate.RequireAdmin(c.Request().Context(), principal); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}

// GetPrincipal returns the caller stored by Authenticate.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	return deliverycontext.GetPrincipal(c)
}

// GetUserID returns the ID of the caller stored by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	principal, ok := deliverycontext.GetPrincipal(c)

	return principal.UserID, ok
}
