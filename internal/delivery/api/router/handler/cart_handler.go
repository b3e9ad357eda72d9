package handler

import (
	"log/slog"

	"sweets/internal/delivery/api/response"
	"sweets/internal/domain/entity"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the caller's open cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest is the body of POST /cart/items. A zero quantity adds one.
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
}

// UpdateQuantityRequest is the body of PUT /cart/items/:id. Zero removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// CartResponse adds the live total to the cart.
type CartResponse struct {
	*entity.Cart
	Total decimal.Decimal `json:"total"`
}

func newCartResponse(cart *entity.Cart) CartResponse {
	return CartResponse{Cart: cart, Total: cart.Total()}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	customer, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.GetOrCreateOpenCart(c.Request().Context(), customer.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newCartResponse(cart))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	customer, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req AddItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), customer.UserID, req.ProductID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newCartResponse(cart))
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	customer, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	itemID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req UpdateQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), customer.UserID, itemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newCartResponse(cart))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	customer, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	itemID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), customer.UserID, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newCartResponse(cart))
}
