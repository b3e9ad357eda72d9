package repository

import (
	"context"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository persists product reviews.
type ReviewRepository interface {
	// Upsert inserts the review or overwrites the stored one for the same
	// (product, customer), then refreshes review with the stored row.
	Upsert(ctx context.Context, review *entity.Review) error

	// ListByProduct returns reviews of a product, newest first.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// List returns every review, newest first.
	List(ctx context.Context) ([]*entity.Review, error)

	Summary(ctx context.Context, productID uuid.UUID) (*entity.RatingSummary, error)
	Count(ctx context.Context) (int64, error)
}
