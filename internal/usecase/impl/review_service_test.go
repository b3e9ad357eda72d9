package impl

import (
	"context"
	"testing"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	mockRepo "sweets/internal/mocks/repository"
	mockUsecase "sweets/internal/mocks/usecase"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	reviewRepo  *mockRepo.MockReviewRepository
	catalogRepo *mockRepo.MockCatalogRepository
	gate        *mockUsecase.MockAccessGate
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	gate := mockUsecase.NewMockAccessGate(t)

	srv := NewReviewService(ReviewServiceParams{
		ReviewRepo:  reviewRepo,
		CatalogRepo: catalogRepo,
		Gate:        gate,
		Logger:      newDiscardLogger(),
	})
	srv.(*reviewService).now = fixedClock

	return reviewServiceFixtures{
		service:     srv,
		reviewRepo:  reviewRepo,
		catalogRepo: catalogRepo,
		gate:        gate,
	}
}

func TestReviewService_Submit_Upserts(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	customerID := uuid.New()
	productID := uuid.New()

	fx.catalogRepo.EXPECT().FindProductByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.reviewRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(review *entity.Review) bool {
			return review.ProductID == productID && review.CustomerID == customerID && review.Stars == 5
		})).
		Return(nil)

	review, err := fx.service.Submit(ctx, customerID, productID, 5, "  Delicioso!  ")
	require.NoError(t, err)
	assert.Equal(t, "Delicioso!", review.Comment)
}

func TestReviewService_Submit_StarsOutOfRange(t *testing.T) {
	for _, stars := range []int{0, 6, -1} {
		fx := createTestReviewService(t)

		_, err := fx.service.Submit(context.Background(), uuid.New(), uuid.New(), stars, "")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "stars=%d", stars)
	}
}

func TestReviewService_Submit_UnknownProduct(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.catalogRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.Submit(ctx, uuid.New(), productID, 4, "")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestReviewService_RatingSummary(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.reviewRepo.EXPECT().Summary(ctx, productID).Return(&entity.RatingSummary{Average: 4, Count: 3}, nil)

	summary, err := fx.service.RatingSummary(ctx, productID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, summary.Average, 0.001)
	assert.Equal(t, int64(3), summary.Count)
}

func TestReviewService_ListAll_RequiresAdmin(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	customer := customerPrincipal()
	fx.gate.EXPECT().RequireAdmin(ctx, customer).Return(domainerrors.ErrAccessDenied)

	_, err := fx.service.ListAll(ctx, customer)
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}
