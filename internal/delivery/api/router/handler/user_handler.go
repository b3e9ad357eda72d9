// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"log/slog"
	"time"

	"sweets/internal/delivery/api/response"
	"sweets/internal/domain/entity"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves registration, sessions and the caller's profile.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest is the body of POST /auth/refresh and /auth/logout.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LoginResponse carries the issued token pair.
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// ProfileResponse is the caller's account.
type ProfileResponse struct {
	User    *entity.User `json:"user"`
	IsAdmin bool         `json:"is_admin"`
}

// SessionResponse is one active refresh token, without its secret.
type SessionResponse struct {
	ID         uuid.UUID `json:"id"`
	DeviceInfo string    `json:"device_info"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// Register creates a customer account.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, output.User)
}

// Login exchanges credentials for a token pair.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username:   req.Username,
		Password:   req.Password,
		DeviceInfo: c.Request().UserAgent(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, LoginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         output.User,
	})
}

// RefreshToken issues a new access token.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"access_token": output.AccessToken})
}

// Logout revokes one refresh token.
func (h *UserHandler) Logout(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Sessão terminada")
}

// GetProfile returns the caller's account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.userUC.GetProfile(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ProfileResponse{User: output.User, IsAdmin: output.IsAdmin})
}

// ListSessions returns the caller's active sessions.
func (h *UserHandler) ListSessions(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sessions, err := h.userUC.GetActiveSessions(c.Request().Context(), caller.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, SessionResponse{
			ID:         session.ID,
			DeviceInfo: session.DeviceInfo,
			ExpiresAt:  session.ExpiresAt,
			CreatedAt:  session.CreatedAt,
		})
	}

	return response.OK(c, out)
}

// RevokeSession ends one of the caller's sessions.
func (h *UserHandler) RevokeSession(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	sessionID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.RevokeSession(c.Request().Context(), caller.UserID, sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Sessão revogada")
}

// LogoutAll ends every session of the caller.
func (h *UserHandler) LogoutAll(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.LogoutAllDevices(c.Request().Context(), caller.UserID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Todas as sessões foram terminadas")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
