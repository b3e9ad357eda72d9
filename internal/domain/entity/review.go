package entity

import (
	"strings"
	"time"

	domainerrors "sweets/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	MinReviewStars = 1
	MaxReviewStars = 5
)

// Review is a customer's rating of a product. There is at most one per (product, customer).
type Review struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Username   string    `json:"username,omitempty"` // Filled on reads for display.
	Stars      int       `json:"stars"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewReview validates and builds a review.
func NewReview(productID, customerID uuid.UUID, stars int, comment string, now time.Time) (*Review, error) {
	if stars < MinReviewStars || stars > MaxReviewStars {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "stars must be between %d and %d", MinReviewStars, MaxReviewStars)
	}

	return &Review{
		ID:         uuid.New(),
		ProductID:  productID,
		CustomerID: customerID,
		Stars:      stars,
		Comment:    strings.TrimSpace(comment),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
