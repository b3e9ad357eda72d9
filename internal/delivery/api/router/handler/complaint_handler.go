package handler

import (
	"log/slog"
	"strings"

	"sweets/internal/delivery/api/response"
	"sweets/internal/domain/entity"
	"sweets/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ComplaintHandlerParams holds dependencies for ComplaintHandler, injected by Fx.
type ComplaintHandlerParams struct {
	fx.In

	ComplaintUC usecase.ComplaintUsecase
	Logger      *slog.Logger
}

type ComplaintHandler struct {
	complaintUC usecase.ComplaintUsecase
	logger      *slog.Logger
}

// NewComplaintHandler is the constructor for ComplaintHandler.
func NewComplaintHandler(params ComplaintHandlerParams) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUC: params.ComplaintUC,
		logger:      params.Logger,
	}
}

// ComplaintRequest is the body of POST /complaints.
type ComplaintRequest struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// RespondRequest is the body of POST /admin/complaints/:id/respond.
type RespondRequest struct {
	Response string `json:"response" validate:"required,max=5000"`
}

func (h *ComplaintHandler) Submit(c echo.Context) error {
	customer, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req ComplaintRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	complaint, err := h.complaintUC.Submit(c.Request().Context(), customer.UserID, req.Subject, req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, complaint)
}

func (h *ComplaintHandler) ListMine(c echo.Context) error {
	customer, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	complaints, err := h.complaintUC.ListMine(c.Request().Context(), customer.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, complaints)
}

// ListAll lists every complaint, optionally filtered by ?status=.
func (h *ComplaintHandler) ListAll(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var status *entity.ComplaintStatus
	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		parsed := entity.ComplaintStatus(raw)
		status = &parsed
	}

	complaints, err := h.complaintUC.ListAll(c.Request().Context(), admin, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, complaints)
}

// Get opens a complaint, marking it read.
func (h *ComplaintHandler) Get(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	complaintID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	complaint, err := h.complaintUC.Get(c.Request().Context(), admin, complaintID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, complaint)
}

func (h *ComplaintHandler) Respond(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	complaintID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req RespondRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	complaint, err := h.complaintUC.Respond(c.Request().Context(), admin, complaintID, req.Response)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, complaint)
}

func (h *ComplaintHandler) Resolve(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	complaintID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	complaint, err := h.complaintUC.Resolve(c.Request().Context(), admin, complaintID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, complaint)
}
