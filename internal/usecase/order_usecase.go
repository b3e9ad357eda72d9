package usecase

import (
	"context"
	"time"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentInput is the customer side of a payment proof.
type PaymentInput struct {
	Method          entity.PaymentMethod
	ReferenceNumber string
	Evidence        *FileUpload
	Notes           string
}

// CheckoutInput defines the optional checkout fields.
type CheckoutInput struct {
	Description     string
	ReferenceImage1 *FileUpload
	ReferenceImage2 *FileUpload
	ReceiptDate     *time.Time

	// Payment is submitted together with the order when set.
	Payment *PaymentInput
}

// CheckoutOutput is the placed order and the inline proof, if any.
type CheckoutOutput struct {
	Order *entity.Order
	Proof *entity.PaymentProof
}

// OrderDetails is the full order view.
type OrderDetails struct {
	Order       *entity.Order
	Proofs      []*entity.PaymentProof
	ActiveProof *entity.PaymentProof
	SecureLink  *entity.SecureLink
}

// OrderUsecase covers checkout and the order lifecycle.
type OrderUsecase interface {
	Checkout(ctx context.Context, customerID uuid.UUID, input *CheckoutInput) (*CheckoutOutput, error)
	ListMyOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
	GetMyOrder(ctx context.Context, customerID uuid.UUID, orderID uuid.UUID) (*OrderDetails, error)

	ListOrders(ctx context.Context, admin entity.Principal, status *entity.OrderStatus) ([]*entity.Order, error)
	GetOrder(ctx context.Context, admin entity.Principal, orderID uuid.UUID) (*OrderDetails, error)
	AdvanceStatus(ctx context.Context, admin entity.Principal, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// OverrideStatus sets any known status, ignoring the transition table.
	OverrideStatus(ctx context.Context, admin entity.Principal, orderID uuid.UUID, status entity.OrderStatus, reason string) (*entity.Order, error)

	MarkDelivered(ctx context.Context, admin entity.Principal, orderID uuid.UUID) (*entity.Order, error)
}
