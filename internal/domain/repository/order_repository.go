package repository

import (
	"context"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders together with their frozen items.
type OrderRepository interface {
	// Create persists the order and its item snapshot.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID returns the order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// LockByID returns the order with its items and holds a row lock until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateState writes the status and payment fields. Items are never rewritten.
	UpdateState(ctx context.Context, order *entity.Order) error

	// List returns orders matching filter, newest first, without items.
	List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error)

	Count(ctx context.Context) (int64, error)
}
