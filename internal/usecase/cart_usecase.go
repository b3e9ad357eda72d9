package usecase

import (
	"context"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages a customer's single open cart. Every method returns the
// cart as it stands after the call.
type CartUsecase interface {
	GetOrCreateOpenCart(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error)
	AddItem(ctx context.Context, customerID uuid.UUID, productID uuid.UUID, quantity int) (*entity.Cart, error)

	// UpdateQuantity overwrites the quantity; zero or less removes the item.
	UpdateQuantity(ctx context.Context, customerID uuid.UUID, itemID uuid.UUID, quantity int) (*entity.Cart, error)

	RemoveItem(ctx context.Context, customerID uuid.UUID, itemID uuid.UUID) (*entity.Cart, error)
}
