package handler

import (
	"log/slog"
	"strings"
	"time"

	"sweets/internal/delivery/api/response"
	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// receiptDateLayout is the format of the checkout receipt_date field.
const receiptDateLayout = "2006-01-02"

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout and the order workflow.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// StatusRequest is the body of PUT /admin/orders/:id/status.
type StatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// OverrideStatusRequest is the body of POST /admin/orders/:id/status/override.
type OverrideStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
	Reason string             `json:"reason" validate:"required,max=500"`
}

// CheckoutResponse is the placed order and the proof submitted with it, if any.
type CheckoutResponse struct {
	Order *entity.Order        `json:"order"`
	Proof *entity.PaymentProof `json:"payment_proof,omitempty"`
}

// OrderDetailsResponse is an order with its payment history and share link.
type OrderDetailsResponse struct {
	Order       *entity.Order          `json:"order"`
	Proofs      []*entity.PaymentProof `json:"payment_proofs"`
	ActiveProof *entity.PaymentProof   `json:"active_payment_proof,omitempty"`
	SecureLink  *entity.SecureLink     `json:"secure_link,omitempty"`
}

func newOrderDetailsResponse(details *usecase.OrderDetails) OrderDetailsResponse {
	return OrderDetailsResponse{
		Order:       details.Order,
		Proofs:      details.Proofs,
		ActiveProof: details.ActiveProof,
		SecureLink:  details.SecureLink,
	}
}

// Checkout turns the open cart into an order. The multipart form may carry a
// description, a receipt_date, two reference images and an inline payment
// (payment_method, payment_reference, payment_evidence, payment_notes). An
// incomplete inline payment places the order without a proof.
func (h *OrderHandler) Checkout(c echo.Context) error {
	customer, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	files := newFormFiles(c)
	defer files.close()

	input, err := checkoutInput(c, files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.orderUC.Checkout(c.Request().Context(), customer.UserID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, CheckoutResponse{Order: output.Order, Proof: output.Proof})
}

func checkoutInput(c echo.Context, files *formFiles) (*usecase.CheckoutInput, error) {
	input := &usecase.CheckoutInput{Description: c.FormValue("description")}

	if raw := strings.TrimSpace(c.FormValue("receipt_date")); raw != "" {
		receiptDate, err := time.Parse(receiptDateLayout, raw)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "receipt_date must be YYYY-MM-DD")
		}
		input.ReceiptDate = &receiptDate
	}

	var err error
	if input.ReferenceImage1, err = files.get("reference_image_1"); err != nil {
		return nil, err
	}
	if input.ReferenceImage2, err = files.get("reference_image_2"); err != nil {
		return nil, err
	}

	evidence, err := files.get("payment_evidence")
	if err != nil {
		return nil, err
	}
	method := strings.TrimSpace(c.FormValue("payment_method"))
	reference := c.FormValue("payment_reference")
	if method != "" || strings.TrimSpace(reference) != "" || evidence != nil {
		input.Payment = &usecase.PaymentInput{
			Method:          entity.PaymentMethod(method),
			ReferenceNumber: reference,
			Evidence:        evidence,
			Notes:           c.FormValue("payment_notes"),
		}
	}

	return input, nil
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	customer, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListMyOrders(c.Request().Context(), customer.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}

func (h *OrderHandler) GetMyOrder(c echo.Context) error {
	customer, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	details, err := h.orderUC.GetMyOrder(c.Request().Context(), customer.UserID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newOrderDetailsResponse(details))
}

// ListOrders lists every order, optionally filtered by ?status=.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var status *entity.OrderStatus
	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		parsed := entity.OrderStatus(raw)
		status = &parsed
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), admin, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	details, err := h.orderUC.GetOrder(c.Request().Context(), admin, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newOrderDetailsResponse(details))
}

// AdvanceStatus moves the order forward along the status table.
func (h *OrderHandler) AdvanceStatus(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req StatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.AdvanceStatus(c.Request().Context(), admin, orderID, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// OverrideStatus sets any status regardless of the table. A reason is required.
func (h *OrderHandler) OverrideStatus(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req OverrideStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.OverrideStatus(c.Request().Context(), admin, orderID, req.Status, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

func (h *OrderHandler) MarkDelivered(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.MarkDelivered(c.Request().Context(), admin, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}
