package handler

import (
	"io"
	"net/http"
	"testing"
	"time"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	mockUsecase "sweets/internal/mocks/usecase"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderHandlerForTest(t *testing.T) (*OrderHandler, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()}), orderUC
}

func TestOrderHandler_Checkout(t *testing.T) {
	t.Run("inline payment and reference image", func(t *testing.T) {
		h, orderUC := newOrderHandlerForTest(t)
		caller := customerPrincipal()
		e := newTestEcho()
		e.POST("/orders/checkout", h.Checkout, asCaller(caller))

		order := &entity.Order{ID: uuid.New(), OwnerID: caller.UserID, Status: entity.OrderStatusPending}
		proof := &entity.PaymentProof{ID: uuid.New(), OrderID: order.ID, Method: entity.PaymentMethodMpesa}

		var evidence []byte
		orderUC.EXPECT().
			Checkout(mock.Anything, caller.UserID, mock.MatchedBy(func(input *usecase.CheckoutInput) bool {
				if input.Payment == nil || input.Payment.Evidence == nil || input.ReferenceImage1 == nil {
					return false
				}
				if evidence == nil {
					evidence, _ = io.ReadAll(input.Payment.Evidence.Content)
				}

				return input.Description == "Bolo para 20 pessoas" &&
					input.ReceiptDate != nil &&
					input.ReceiptDate.Equal(time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)) &&
					input.ReferenceImage2 == nil &&
					input.Payment.Method == entity.PaymentMethodMpesa &&
					input.Payment.ReferenceNumber == "MP-123" &&
					input.Payment.Notes == "pago pela tia"
			})).
			Return(&usecase.CheckoutOutput{Order: order, Proof: proof}, nil)

		req := newMultipartRequest(t, http.MethodPost, "/orders/checkout",
			map[string]string{
				"description":       "Bolo para 20 pessoas",
				"receipt_date":      "2024-05-03",
				"payment_method":    "mpesa",
				"payment_reference": "MP-123",
				"payment_notes":     "pago pela tia",
			},
			map[string][]byte{
				"reference_image_1": tinyPNG,
				"payment_evidence":  tinyPNG,
			},
		)
		rec := serve(e, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, tinyPNG, evidence)
		var got CheckoutResponse
		decodeData(t, rec, &got)
		assert.Equal(t, order.ID, got.Order.ID)
		require.NotNil(t, got.Proof)
		assert.Equal(t, proof.ID, got.Proof.ID)
	})

	t.Run("without payment fields no payment is submitted", func(t *testing.T) {
		h, orderUC := newOrderHandlerForTest(t)
		caller := customerPrincipal()
		e := newTestEcho()
		e.POST("/orders/checkout", h.Checkout, asCaller(caller))

		order := &entity.Order{ID: uuid.New(), OwnerID: caller.UserID, Status: entity.OrderStatusPending}
		orderUC.EXPECT().
			Checkout(mock.Anything, caller.UserID, mock.MatchedBy(func(input *usecase.CheckoutInput) bool {
				return input.Payment == nil && input.ReceiptDate == nil && input.ReferenceImage1 == nil
			})).
			Return(&usecase.CheckoutOutput{Order: order}, nil)

		rec := serve(e, newMultipartRequest(t, http.MethodPost, "/orders/checkout", map[string]string{"description": "Sem pressa"}, nil))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "payment_proof")
	})

	t.Run("receipt date must be a calendar date", func(t *testing.T) {
		h, _ := newOrderHandlerForTest(t)
		e := newTestEcho()
		e.POST("/orders/checkout", h.Checkout, asCaller(customerPrincipal()))

		rec := serve(e, newMultipartRequest(t, http.MethodPost, "/orders/checkout", map[string]string{"receipt_date": "03/05/2024"}, nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "receipt_date")
	})

	t.Run("empty cart", func(t *testing.T) {
		h, orderUC := newOrderHandlerForTest(t)
		caller := customerPrincipal()
		e := newTestEcho()
		e.POST("/orders/checkout", h.Checkout, asCaller(caller))

		orderUC.EXPECT().Checkout(mock.Anything, caller.UserID, mock.Anything).Return(nil, domainerrors.ErrEmptyCart)

		rec := serve(e, newJSONRequest(t, http.MethodPost, "/orders/checkout", nil))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "EMPTY_CART", errorCode(t, rec))
	})
}

func TestOrderHandler_AdvanceStatus(t *testing.T) {
	t.Run("illegal transition", func(t *testing.T) {
		h, orderUC := newOrderHandlerForTest(t)
		admin := adminPrincipal()
		orderID := uuid.New()
		e := newTestEcho()
		e.PUT("/admin/orders/:id/status", h.AdvanceStatus, asCaller(admin))

		orderUC.EXPECT().AdvanceStatus(mock.Anything, admin, orderID, entity.OrderStatusDelivered).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidTransition, "pending -> entregue"))

		rec := serve(e, newJSONRequest(t, http.MethodPut, "/admin/orders/"+orderID.String()+"/status", StatusRequest{Status: entity.OrderStatusDelivered}))

		require.Equal(t, http.StatusConflict, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_TRANSITION", env.Error.Code)
		assert.Contains(t, env.Error.Details, "pending -> entregue")
	})

	t.Run("status is required", func(t *testing.T) {
		h, _ := newOrderHandlerForTest(t)
		e := newTestEcho()
		e.PUT("/admin/orders/:id/status", h.AdvanceStatus, asCaller(adminPrincipal()))

		rec := serve(e, newJSONRequest(t, http.MethodPut, "/admin/orders/"+uuid.NewString()+"/status", map[string]string{}))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})
}

func TestOrderHandler_OverrideStatus_RequiresReason(t *testing.T) {
	h, _ := newOrderHandlerForTest(t)
	e := newTestEcho()
	e.POST("/admin/orders/:id/status/override", h.OverrideStatus, asCaller(adminPrincipal()))

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/admin/orders/"+uuid.NewString()+"/status/override",
		OverrideStatusRequest{Status: entity.OrderStatusPending}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestOrderHandler_ListOrders_StatusFilter(t *testing.T) {
	h, orderUC := newOrderHandlerForTest(t)
	admin := adminPrincipal()
	e := newTestEcho()
	e.GET("/admin/orders", h.ListOrders, asCaller(admin))

	orderUC.EXPECT().
		ListOrders(mock.Anything, admin, mock.MatchedBy(func(status *entity.OrderStatus) bool {
			return status != nil && *status == entity.OrderStatusReady
		})).
		Return([]*entity.Order{{ID: uuid.New(), Status: entity.OrderStatusReady}}, nil)

	rec := serve(e, newJSONRequest(t, http.MethodGet, "/admin/orders?status=pronta", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []entity.Order
	decodeData(t, rec, &got)
	assert.Len(t, got, 1)
}
