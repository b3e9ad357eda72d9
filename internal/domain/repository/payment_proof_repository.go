package repository

import (
	"context"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPaymentProofNotFound is returned when a payment proof is not found.
var ErrPaymentProofNotFound = errors.New("payment proof not found")

// PaymentProofRepository persists payment proofs.
type PaymentProofRepository interface {
	Create(ctx context.Context, proof *entity.PaymentProof) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentProof, error)

	// LockByID returns the proof and holds a row lock until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.PaymentProof, error)

	// UpdateDecision writes status, processed_by, processed_at and rejection reason.
	UpdateDecision(ctx context.Context, proof *entity.PaymentProof) error

	// ListByOrder returns the proofs of an order, oldest first.
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.PaymentProof, error)

	// List returns proofs newest first, optionally filtered by status.
	List(ctx context.Context, status *entity.PaymentStatus) ([]*entity.PaymentProof, error)

	CountByStatus(ctx context.Context, status entity.PaymentStatus) (int64, error)
}
