package usecase

import (
	"context"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentUsecase covers payment proof submission and review.
type PaymentUsecase interface {
	Submit(ctx context.Context, customerID uuid.UUID, orderID uuid.UUID, input *PaymentInput) (*entity.PaymentProof, error)
	Decide(ctx context.Context, admin entity.Principal, proofID uuid.UUID, outcome entity.PaymentStatus, reason string) (*entity.PaymentProof, error)
	ListProofs(ctx context.Context, admin entity.Principal, status *entity.PaymentStatus) ([]*entity.PaymentProof, error)

	// ListOrderProofs returns the proofs of one of the customer's orders.
	ListOrderProofs(ctx context.Context, customerID uuid.UUID, orderID uuid.UUID) ([]*entity.PaymentProof, error)

	// ActiveProof returns the proof an order is currently judged by.
	ActiveProof(ctx context.Context, orderID uuid.UUID) (*entity.PaymentProof, error)
}
