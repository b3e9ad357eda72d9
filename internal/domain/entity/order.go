package entity

import (
	"slices"
	"time"

	domainerrors "sweets/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order. The values are persisted as-is.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmada"
	OrderStatusPreparing OrderStatus = "em_preparo"
	OrderStatusReady     OrderStatus = "pronta"
	OrderStatusDelivered OrderStatus = "entregue"
	OrderStatusCancelled OrderStatus = "cancelada"
)

// orderTransitions lists, for each non-terminal status, the statuses it may move to.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusDelivered, OrderStatusCancelled},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether s belongs to the closed status set.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the transition table allows s -> next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderTransitions[s], next)
}

// rank orders the happy path so payment approval never moves an order backwards.
func (s OrderStatus) rank() int {
	switch s {
	case OrderStatusPending:
		return 0
	case OrderStatusConfirmed:
		return 1
	case OrderStatusPreparing:
		return 2
	case OrderStatusReady:
		return 3
	case OrderStatusDelivered:
		return 4
	default:
		return -1
	}
}

// Order is the immutable snapshot of a checked-out cart plus its lifecycle state.
type Order struct {
	ID                 uuid.UUID       `json:"id"`
	OwnerID            uuid.UUID       `json:"owner_id"`
	CartID             uuid.UUID       `json:"cart_id"`
	Status             OrderStatus     `json:"status"`
	Total              decimal.Decimal `json:"total"`
	Paid               bool            `json:"paid"`
	PaidAt             *time.Time      `json:"paid_at,omitempty"`
	Description        string          `json:"description,omitempty"`
	ReferenceImage1Key string          `json:"reference_image_1,omitempty"`
	ReferenceImage2Key string          `json:"reference_image_2,omitempty"`
	ReceiptDate        *time.Time      `json:"receipt_date,omitempty"`
	Items              []*OrderItem    `json:"items"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// OrderItem is a frozen copy of a cart line at checkout time. CartItemID keeps
// the reference to the originating line; the copied fields never change.
type OrderItem struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	CartItemID  uuid.UUID       `json:"cart_item_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// Subtotal is quantity times the frozen unit price.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderDetails carries the optional checkout fields.
type OrderDetails struct {
	Description        string
	ReferenceImage1Key string
	ReferenceImage2Key string
	ReceiptDate        *time.Time
}

// NewOrderFromCart snapshots the cart into a pending order. The cart items must
// have their products loaded; the total is the cart total at this instant.
func NewOrderFromCart(cart *Cart, details OrderDetails, now time.Time) (*Order, error) {
	if cart.IsEmpty() {
		return nil, errors.Wrap(domainerrors.ErrEmptyCart, "cannot check out an empty cart")
	}

	order := &Order{
		ID:                 uuid.New(),
		OwnerID:            cart.OwnerID,
		CartID:             cart.ID,
		Status:             OrderStatusPending,
		Total:              cart.Total(),
		Description:        details.Description,
		ReferenceImage1Key: details.ReferenceImage1Key,
		ReferenceImage2Key: details.ReferenceImage2Key,
		ReceiptDate:        details.ReceiptDate,
		Items:              make([]*OrderItem, 0, len(cart.Items)),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	for _, item := range cart.Items {
		if item.Product == nil {
			return nil, errors.Errorf("cart item %s has no product loaded", item.ID)
		}
		order.Items = append(order.Items, &OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			CartItemID:  item.ID,
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			UnitPrice:   item.Product.Price,
			Quantity:    item.Quantity,
		})
	}

	return order, nil
}

// TransitionTo moves the order along the transition table.
func (o *Order) TransitionTo(next OrderStatus, now time.Time) error {
	if !next.IsValid() {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "unknown order status %q", next)
	}
	if !o.Status.CanTransitionTo(next) {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "order cannot move from %s to %s", o.Status, next)
	}

	o.Status = next
	o.UpdatedAt = now

	return nil
}

// Override sets any status of the closed set, bypassing the transition table.
func (o *Order) Override(next OrderStatus, now time.Time) error {
	if !next.IsValid() {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "unknown order status %q", next)
	}

	o.Status = next
	o.UpdatedAt = now

	return nil
}

// ApprovePayment records settlement and confirms a pending order. Orders that
// already moved further along keep their status.
func (o *Order) ApprovePayment(now time.Time) error {
	if o.Status == OrderStatusCancelled {
		return errors.Wrap(domainerrors.ErrInvalidState, "cannot approve payment of a cancelled order")
	}

	o.Paid = true
	o.PaidAt = &now
	if o.Status.rank() < OrderStatusConfirmed.rank() {
		o.Status = OrderStatusConfirmed
	}
	o.UpdatedAt = now

	return nil
}

// AcceptsPayment reports whether a customer may still submit a payment proof.
func (o *Order) AcceptsPayment() bool {
	return o.Status == OrderStatusPending && !o.Paid
}

// OrderFilter narrows admin order listings.
type OrderFilter struct {
	OwnerID *uuid.UUID
	Status  *OrderStatus
	Limit   int
}
