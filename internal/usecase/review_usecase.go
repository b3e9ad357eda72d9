package usecase

import (
	"context"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase covers product ratings.
type ReviewUsecase interface {
	// Submit creates or replaces the customer's review of the product.
	Submit(ctx context.Context, customerID uuid.UUID, productID uuid.UUID, stars int, comment string) (*entity.Review, error)
	ListForProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
	RatingSummary(ctx context.Context, productID uuid.UUID) (*entity.RatingSummary, error)
	ListAll(ctx context.Context, admin entity.Principal) ([]*entity.Review, error)
}
