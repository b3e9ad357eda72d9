package handler

import (
	"log/slog"

	"sweets/internal/delivery/api/response"
	"sweets/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// ReviewRequest is the body of POST /products/:id/reviews. The star range is
// enforced by the review subsystem.
type ReviewRequest struct {
	Stars   int    `json:"stars"`
	Comment string `json:"comment" validate:"max=2000"`
}

// Submit creates or replaces the caller's review of a product.
func (h *ReviewHandler) Submit(c echo.Context) error {
	customer, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.reviewUC.Submit(c.Request().Context(), customer.UserID, productID, req.Stars, req.Comment)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, review)
}

func (h *ReviewHandler) ListForProduct(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.reviewUC.ListForProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, reviews)
}

func (h *ReviewHandler) ListAll(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.reviewUC.ListAll(c.Request().Context(), admin)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, reviews)
}
