package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is a customer's collection of selected products. A customer has at most
// one cart with Ordered=false; checkout flips the flag and the cart is never reused.
type Cart struct {
	ID        uuid.UUID   `json:"id"`
	OwnerID   uuid.UUID   `json:"owner_id"`
	Ordered   bool        `json:"ordered"`
	Items     []*CartItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

// CartItem is one (cart, product) line with quantity >= 1.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	CartID    uuid.UUID `json:"cart_id"`
	ProductID uuid.UUID `json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// Subtotal is quantity times the current product price.
func (i *CartItem) Subtotal() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}

	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Total sums the item subtotals. It is computed on every call and never cached.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// FindItemByProduct returns the line holding productID, if any.
func (c *Cart) FindItemByProduct(productID uuid.UUID) *CartItem {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item
		}
	}

	return nil
}

// FindItem returns the line with the given id, if any.
func (c *Cart) FindItem(itemID uuid.UUID) *CartItem {
	for _, item := range c.Items {
		if item.ID == itemID {
			return item
		}
	}

	return nil
}
