package handler

import (
	"log/slog"

	"sweets/internal/delivery/api/response"
	"sweets/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the console overview pages.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	stats, err := h.adminUC.Dashboard(c.Request().Context(), admin)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stats)
}

func (h *AdminHandler) Customers(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customers, err := h.adminUC.Customers(c.Request().Context(), admin)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, customers)
}
