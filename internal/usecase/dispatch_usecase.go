package usecase

import (
	"context"

	"sweets/internal/domain/service"
)

// DispatchResult summarises one fan-out.
type DispatchResult struct {
	Sent          int
	Failed        int
	InvalidTokens int
}

// DispatchUsecase delivers storefront events to the recipient's devices.
type DispatchUsecase interface {
	// Dispatch returns a wrapped ErrValidationFailed for events that can never be delivered.
	Dispatch(ctx context.Context, event *service.StorefrontEvent) (*DispatchResult, error)
}
