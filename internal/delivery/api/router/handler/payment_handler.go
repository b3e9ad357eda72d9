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

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves payment proof submission and review.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// DecisionRequest is the body of POST /admin/payments/:id/decision.
type DecisionRequest struct {
	Outcome entity.PaymentStatus `json:"outcome" validate:"required"`
	Reason  string               `json:"reason" validate:"max=500"`
}

// Submit attaches a proof to one of the caller's orders. The multipart form
// has method, reference_number, notes and the evidence file.
func (h *PaymentHandler) Submit(c echo.Context) error {
	customer, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	files := newFormFiles(c)
	defer files.close()

	evidence, err := files.get("evidence")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	proof, err := h.paymentUC.Submit(c.Request().Context(), customer.UserID, orderID, &usecase.PaymentInput{
		Method:          entity.PaymentMethod(strings.TrimSpace(c.FormValue("method"))),
		ReferenceNumber: c.FormValue("reference_number"),
		Evidence:        evidence,
		Notes:           c.FormValue("notes"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, proof)
}

func (h *PaymentHandler) ListOrderProofs(c echo.Context) error {
	customer, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	proofs, err := h.paymentUC.ListOrderProofs(c.Request().Context(), customer.UserID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, proofs)
}

// ListProofs lists proofs for review, optionally filtered by ?status=.
func (h *PaymentHandler) ListProofs(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var status *entity.PaymentStatus
	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		parsed := entity.PaymentStatus(raw)
		status = &parsed
	}

	proofs, err := h.paymentUC.ListProofs(c.Request().Context(), admin, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, proofs)
}

// Decide approves or rejects a pending proof.
func (h *PaymentHandler) Decide(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	proofID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req DecisionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	proof, err := h.paymentUC.Decide(c.Request().Context(), admin, proofID, req.Outcome, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, proof)
}
