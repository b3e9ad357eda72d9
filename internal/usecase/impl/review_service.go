package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "sweets/internal/delivery/context"
	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	catalogRepo repository.CatalogRepository
	gate        usecase.AccessGate
	now         func() time.Time
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	CatalogRepo repository.CatalogRepository
	Gate        usecase.AccessGate
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		catalogRepo: params.CatalogRepo,
		gate:        params.Gate,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// Submit creates the customer's review of product or replaces the previous one.
func (srv *reviewService) Submit(ctx context.Context, customerID uuid.UUID, productID uuid.UUID, stars int, comment string) (*entity.Review, error) {
	review, err := entity.NewReview(productID, customerID, stars, comment, srv.now())
	if err != nil {
		return nil, err
	}

	if _, err := srv.catalogRepo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if err := srv.reviewRepo.Upsert(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to save review")
	}
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Review saved",
		slog.Any("productID", productID),
		slog.Any("customerID", customerID),
		slog.Int("stars", stars),
	)

	return review, nil
}

func (srv *reviewService) ListForProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

func (srv *reviewService) RatingSummary(ctx context.Context, productID uuid.UUID) (*entity.RatingSummary, error) {
	summary, err := srv.reviewRepo.Summary(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarise reviews")
	}

	return summary, nil
}

func (srv *reviewService) ListAll(ctx context.Context, admin entity.Principal) ([]*entity.Review, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
