package handler

import (
	"sweets/internal/delivery/api/middleware"
	"sweets/internal/delivery/api/response"
	domainerrors "sweets/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware echoes the caller resolved from the bearer token.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	caller, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidToken)
	}

	return response.OK(c, map[string]any{
		"message":  "Authentication middleware test successful",
		"user_id":  caller.UserID,
		"username": caller.Username,
		"status":   "authenticated",
	})
}

// TestAdminMiddleware is reachable only through the admin gate.
func (h *TestHandler) TestAdminMiddleware(c echo.Context) error {
	return response.OK(c, map[string]any{
		"message": "Admin gate test successful",
		"status":  "admin",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.OK(c, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}
