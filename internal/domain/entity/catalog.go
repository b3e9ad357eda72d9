package entity

import (
	"strings"
	"time"

	domainerrors "sweets/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Category groups products in the catalog.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Product is a sellable item. Price is per unit.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
	Category    *Category       `json:"category,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	ImageKey    string          `json:"image_key,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate checks the invariants a product must hold before it is persisted.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "product name is required")
	}
	if p.Price.IsNegative() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "product price must not be negative")
	}

	return nil
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	CategoryID    *uuid.UUID
	Search        string
	OnlyAvailable bool
	ExcludeID     *uuid.UUID
	Limit         int
}

// RatingSummary aggregates the reviews of one product.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}
