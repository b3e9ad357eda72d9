package entity

import (
	"time"

	domainerrors "sweets/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MaxLinkTTLHours caps a link lifetime at ten years.
const MaxLinkTTLHours = 10 * 365 * 24

// MaxLinkTTL is MaxLinkTTLHours as a duration.
const MaxLinkTTL = MaxLinkTTLHours * time.Hour

// SecureLink grants anonymous read access to one order to whoever holds Token.
type SecureLink struct {
	ID        uuid.UUID  `json:"id"`
	OrderID   *uuid.UUID `json:"order_id,omitempty"`
	Token     string     `json:"token"` // Canonical random UUID, set once at creation.
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"` // Nil means the link never expires.
}

// NewSecureLink creates a link with a fresh random token.
func NewSecureLink(orderID *uuid.UUID, ttl *time.Duration, now time.Time) *SecureLink {
	return &SecureLink{
		ID:        uuid.New(),
		OrderID:   orderID,
		Token:     uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: expiryFrom(ttl, now),
	}
}

// IsValid reports whether the link may be resolved at now. Expiry is exclusive.
func (l *SecureLink) IsValid(now time.Time) bool {
	return l.ExpiresAt == nil || now.Before(*l.ExpiresAt)
}

// Refresh resets the expiry. The token is kept.
func (l *SecureLink) Refresh(ttl *time.Duration, now time.Time) {
	l.ExpiresAt = expiryFrom(ttl, now)
}

// TTLFromHours converts an optional hour count; nil or zero mean no expiry.
// Counts above MaxLinkTTLHours are rejected before they can overflow a duration.
func TTLFromHours(hours *int) (*time.Duration, error) {
	if hours == nil || *hours <= 0 {
		return nil, nil
	}
	if *hours > MaxLinkTTLHours {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "link lifetime must not exceed %d hours", MaxLinkTTLHours)
	}
	ttl := time.Duration(*hours) * time.Hour

	return &ttl, nil
}

func expiryFrom(ttl *time.Duration, now time.Time) *time.Time {
	if ttl == nil {
		return nil
	}
	expiresAt := now.Add(*ttl)

	return &expiresAt
}

// SecureOrderView is what an anonymous link holder sees. It has no customer identity.
type SecureOrderView struct {
	OrderID     uuid.UUID    `json:"order_id"`
	Status      OrderStatus  `json:"status"`
	Total       string       `json:"total"`
	Paid        bool         `json:"paid"`
	Description string       `json:"description,omitempty"`
	ReceiptDate *time.Time   `json:"receipt_date,omitempty"`
	Items       []*OrderItem `json:"items"`
	CreatedAt   time.Time    `json:"created_at"`
	ExpiresAt   *time.Time   `json:"expires_at,omitempty"`
}

// NewSecureOrderView strips identifying fields from order.
func NewSecureOrderView(order *Order, link *SecureLink) *SecureOrderView {
	return &SecureOrderView{
		OrderID:     order.ID,
		Status:      order.Status,
		Total:       order.Total.StringFixed(2),
		Paid:        order.Paid,
		Description: order.Description,
		ReceiptDate: order.ReceiptDate,
		Items:       order.Items,
		CreatedAt:   order.CreatedAt,
		ExpiresAt:   link.ExpiresAt,
	}
}
