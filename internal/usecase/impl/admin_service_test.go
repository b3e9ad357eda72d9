package impl

import (
	"context"
	"testing"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	mockRepo "sweets/internal/mocks/repository"
	mockUsecase "sweets/internal/mocks/usecase"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	userRepo    *mockRepo.MockUserRepository
	catalogRepo *mockRepo.MockCatalogRepository
	orderRepo   *mockRepo.MockOrderRepository
	proofRepo   *mockRepo.MockPaymentProofRepository
	reviewRepo  *mockRepo.MockReviewRepository
	gate        *mockUsecase.MockAccessGate
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	fx := adminServiceFixtures{
		userRepo:    mockRepo.NewMockUserRepository(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		proofRepo:   mockRepo.NewMockPaymentProofRepository(t),
		reviewRepo:  mockRepo.NewMockReviewRepository(t),
		gate:        mockUsecase.NewMockAccessGate(t),
	}
	fx.service = NewAdminService(AdminServiceParams{
		UserRepo:    fx.userRepo,
		CatalogRepo: fx.catalogRepo,
		OrderRepo:   fx.orderRepo,
		ProofRepo:   fx.proofRepo,
		ReviewRepo:  fx.reviewRepo,
		Gate:        fx.gate,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestAdminService_Dashboard(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	recent := []*entity.Order{{ID: uuid.New()}}

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	fx.catalogRepo.EXPECT().CountProducts(ctx).Return(int64(12), nil)
	fx.orderRepo.EXPECT().Count(ctx).Return(int64(40), nil)
	fx.userRepo.EXPECT().CountCustomers(ctx, admin.UserID).Return(int64(9), nil)
	fx.proofRepo.EXPECT().CountByStatus(ctx, entity.PaymentStatusPending).Return(int64(2), nil)
	fx.reviewRepo.EXPECT().Count(ctx).Return(int64(17), nil)
	fx.orderRepo.EXPECT().List(ctx, entity.OrderFilter{Limit: recentOrdersLimit}).Return(recent, nil)

	stats, err := fx.service.Dashboard(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardStats{
		Products:      12,
		Orders:        40,
		Customers:     9,
		PendingProofs: 2,
		Reviews:       17,
		RecentOrders:  recent,
	}, stats)
}

func TestAdminService_Dashboard_CountFails(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	admin := adminPrincipal()

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	fx.catalogRepo.EXPECT().CountProducts(ctx).Return(int64(0), errors.New("timeout"))

	_, err := fx.service.Dashboard(ctx, admin)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count products")
}

func TestAdminService_Customers_RequiresAdmin(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	customer := customerPrincipal()
	fx.gate.EXPECT().RequireAdmin(ctx, customer).Return(domainerrors.ErrAccessDenied)

	_, err := fx.service.Customers(ctx, customer)
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}
