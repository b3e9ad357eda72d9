package handler

import (
	"log/slog"
	"net/http"
	"time"

	"sweets/config"
	"sweets/internal/delivery/api/response"
	"sweets/internal/domain/entity"
	"sweets/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SecureLinkHandlerParams holds dependencies for SecureLinkHandler, injected by Fx.
type SecureLinkHandlerParams struct {
	fx.In

	SecureLinkUC usecase.SecureLinkUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// SecureLinkHandler issues share links and resolves them for anonymous holders.
type SecureLinkHandler struct {
	secureLinkUC usecase.SecureLinkUsecase
	defaultTTL   time.Duration
	logger       *slog.Logger
}

// NewSecureLinkHandler is the constructor for SecureLinkHandler.
func NewSecureLinkHandler(params SecureLinkHandlerParams) *SecureLinkHandler {
	h := &SecureLinkHandler{
		secureLinkUC: params.SecureLinkUC,
		logger:       params.Logger,
	}
	if params.Config != nil && params.Config.SecureLink != nil {
		h.defaultTTL = params.Config.SecureLink.DefaultTTL
	}

	return h
}

// IssueLinkRequest is the optional body of POST /admin/orders/:id/secure-link.
// A missing ttl_hours uses the configured default; 0 issues a link that never expires.
type IssueLinkRequest struct {
	TTLHours *int `json:"ttl_hours" validate:"omitempty,min=0,max=87600"`
}

// SecureLinkResponse is the stored link and the URL to share.
type SecureLinkResponse struct {
	Link     *entity.SecureLink `json:"link"`
	ShareURL string             `json:"share_url"`
}

func (h *SecureLinkHandler) Issue(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req IssueLinkRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ttl, err := h.ttl(req.TTLHours)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.secureLinkUC.IssueOrRefresh(c.Request().Context(), admin, orderID, ttl)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, SecureLinkResponse{Link: output.Link, ShareURL: output.ShareURL})
}

func (h *SecureLinkHandler) ttl(hours *int) (*time.Duration, error) {
	if hours == nil {
		if h.defaultTTL <= 0 {
			return nil, nil
		}
		ttl := h.defaultTTL

		return &ttl, nil
	}

	return entity.TTLFromHours(hours)
}

// ShareQR renders the order's share URL as a PNG.
func (h *SecureLinkHandler) ShareQR(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.secureLinkUC.ShareQR(c.Request().Context(), admin, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Resolve shows the order behind a link. Unknown and expired tokens look the same.
func (h *SecureLinkHandler) Resolve(c echo.Context) error {
	view, err := h.secureLinkUC.Resolve(c.Request().Context(), c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, view)
}
