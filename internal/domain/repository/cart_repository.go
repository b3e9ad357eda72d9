package repository

import (
	"context"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrCartNotFound is returned when no matching cart exists.
	ErrCartNotFound = errors.New("cart not found")
	// ErrDuplicateOpenCart is returned when a second open cart would be created for a customer.
	ErrDuplicateOpenCart = errors.New("customer already has an open cart")
	// ErrCartItemNotFound is returned when a cart item is not found.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository persists carts and their items. Carts are returned with
// their items and each item's product loaded.
type CartRepository interface {
	// FindOpenCartByOwner returns the customer's cart with ordered=false.
	FindOpenCartByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error)

	// LockCartByID reads the cart with a row lock held until the transaction ends.
	LockCartByID(ctx context.Context, cartID uuid.UUID) (*entity.Cart, error)

	// CreateCart persists an empty open cart. It returns ErrDuplicateOpenCart on a concurrent create.
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// MarkOrdered flips the cart's ordered flag.
	MarkOrdered(ctx context.Context, cartID uuid.UUID) error

	CreateItem(ctx context.Context, item *entity.CartItem) error
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}
