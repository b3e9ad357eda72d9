package impl

import (
	"context"
	"testing"
	"time"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	mockRepo "sweets/internal/mocks/repository"
	mockSvc "sweets/internal/mocks/service"
	mockUsecase "sweets/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type secureLinkServiceFixtures struct {
	service        *secureLinkService
	txManager      *mockRepo.MockTransactionManager
	orderRepo      *mockRepo.MockOrderRepository
	secureLinkRepo *mockRepo.MockSecureLinkRepository
	qrCode         *mockSvc.MockQRCodeService
	gate           *mockUsecase.MockAccessGate
	tx             *txRepos
}

func createTestSecureLinkService(t *testing.T) secureLinkServiceFixtures {
	fx := secureLinkServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		orderRepo:      mockRepo.NewMockOrderRepository(t),
		secureLinkRepo: mockRepo.NewMockSecureLinkRepository(t),
		qrCode:         mockSvc.NewMockQRCodeService(t),
		gate:           mockUsecase.NewMockAccessGate(t),
		tx:             newTxRepos(t),
	}

	srv := NewSecureLinkService(SecureLinkServiceParams{
		TxManager:      fx.txManager,
		OrderRepo:      fx.orderRepo,
		SecureLinkRepo: fx.secureLinkRepo,
		QRCode:         fx.qrCode,
		Gate:           fx.gate,
		Config:         newTestConfig(0),
		Logger:         newDiscardLogger(),
	}).(*secureLinkService)
	srv.now = fixedClock
	fx.service = srv

	return fx
}

func TestSecureLinkService_IssueOrRefresh_CreatesLink(t *testing.T) {
	fx := createTestSecureLinkService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	orderID := uuid.New()
	ttl := 48 * time.Hour

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.orders.EXPECT().LockByID(ctx, orderID).Return(&entity.Order{ID: orderID}, nil)
	fx.tx.links.EXPECT().FindByOrderID(ctx, orderID).Return(nil, repository.ErrSecureLinkNotFound)
	fx.tx.links.EXPECT().Create(ctx, mock.AnythingOfType("*entity.SecureLink")).Return(nil)

	output, err := fx.service.IssueOrRefresh(ctx, admin, orderID, &ttl)
	require.NoError(t, err)
	require.NotNil(t, output.Link.ExpiresAt)
	assert.Equal(t, testNow.Add(ttl), *output.Link.ExpiresAt)
	assert.Equal(t, orderID, *output.Link.OrderID)
	assert.Equal(t, "https://doces.example.com/secure-order/"+output.Link.Token, output.ShareURL)

	_, err = uuid.Parse(output.Link.Token)
	assert.NoError(t, err)
}

func TestSecureLinkService_IssueOrRefresh_KeepsToken(t *testing.T) {
	fx := createTestSecureLinkService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	orderID := uuid.New()
	oldExpiry := testNow.Add(-time.Hour)
	existing := &entity.SecureLink{ID: uuid.New(), OrderID: &orderID, Token: uuid.NewString(), ExpiresAt: &oldExpiry}
	token := existing.Token
	ttl := 24 * time.Hour

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.orders.EXPECT().LockByID(ctx, orderID).Return(&entity.Order{ID: orderID}, nil)
	fx.tx.links.EXPECT().FindByOrderID(ctx, orderID).Return(existing, nil)
	fx.tx.links.EXPECT().
		UpdateExpiry(ctx, existing.ID, mock.MatchedBy(func(expiresAt *time.Time) bool {
			return expiresAt != nil && expiresAt.Equal(testNow.Add(ttl))
		})).
		Return(nil)

	output, err := fx.service.IssueOrRefresh(ctx, admin, orderID, &ttl)
	require.NoError(t, err)
	assert.Equal(t, token, output.Link.Token)
}

func TestSecureLinkService_IssueOrRefresh_ZeroTTLNeverExpires(t *testing.T) {
	fx := createTestSecureLinkService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	orderID := uuid.New()
	ttl := time.Duration(0)

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.orders.EXPECT().LockByID(ctx, orderID).Return(&entity.Order{ID: orderID}, nil)
	fx.tx.links.EXPECT().FindByOrderID(ctx, orderID).Return(nil, repository.ErrSecureLinkNotFound)
	fx.tx.links.EXPECT().Create(ctx, mock.Anything).Return(nil)

	output, err := fx.service.IssueOrRefresh(ctx, admin, orderID, &ttl)
	require.NoError(t, err)
	assert.Nil(t, output.Link.ExpiresAt)
}

func TestSecureLinkService_IssueOrRefresh_RejectsTooLongLifetime(t *testing.T) {
	fx := createTestSecureLinkService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	ttl := entity.MaxLinkTTL + time.Hour

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)

	_, err := fx.service.IssueOrRefresh(ctx, admin, uuid.New(), &ttl)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSecureLinkService_IssuedForOneHour_ExpiredTwoHoursLater(t *testing.T) {
	fx := createTestSecureLinkService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	orderID := uuid.New()
	oneHour := 1
	ttl, err := entity.TTLFromHours(&oneHour)
	require.NoError(t, err)

	var stored *entity.SecureLink
	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.orders.EXPECT().LockByID(ctx, orderID).Return(&entity.Order{ID: orderID}, nil)
	fx.tx.links.EXPECT().FindByOrderID(ctx, orderID).Return(nil, repository.ErrSecureLinkNotFound)
	fx.tx.links.EXPECT().Create(ctx, mock.AnythingOfType("*entity.SecureLink")).
		RunAndReturn(func(_ context.Context, link *entity.SecureLink) error {
			stored = link

			return nil
		})

	output, err := fx.service.IssueOrRefresh(ctx, admin, orderID, ttl)
	require.NoError(t, err)
	require.NotNil(t, stored)

	fx.service.now = func() time.Time { return testNow.Add(2 * time.Hour) }
	fx.secureLinkRepo.EXPECT().FindByToken(ctx, output.Link.Token).Return(stored, nil)

	_, err = fx.service.Resolve(ctx, output.Link.Token)
	assert.ErrorIs(t, err, domainerrors.ErrLinkExpired)
}

func TestSecureLinkService_IssueOrRefresh_UnknownOrder(t *testing.T) {
	fx := createTestSecureLinkService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	orderID := uuid.New()

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.orders.EXPECT().LockByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.IssueOrRefresh(ctx, admin, orderID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestSecureLinkService_Issue_WithoutOrder(t *testing.T) {
	fx := createTestSecureLinkService(t)

	ctx := context.Background()
	fx.secureLinkRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(link *entity.SecureLink) bool { return link.OrderID == nil })).
		Return(nil)

	output, err := fx.service.Issue(ctx, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, output.Link.ExpiresAt)
}

func TestSecureLinkService_Resolve_ExpiryIsExclusive(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	expiresAt := testNow
	link := &entity.SecureLink{ID: uuid.New(), OrderID: &orderID, Token: uuid.NewString(), ExpiresAt: &expiresAt}
	order := &entity.Order{
		ID:      orderID,
		OwnerID: uuid.New(),
		Status:  entity.OrderStatusPending,
		Total:   decimal.RequireFromString("25"),
	}

	t.Run("one instant before expiry", func(t *testing.T) {
		fx := createTestSecureLinkService(t)
		fx.service.now = func() time.Time { return testNow.Add(-time.Nanosecond) }
		fx.secureLinkRepo.EXPECT().FindByToken(ctx, link.Token).Return(link, nil)
		fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

		view, err := fx.service.Resolve(ctx, link.Token)
		require.NoError(t, err)
		assert.Equal(t, orderID, view.OrderID)
		assert.Equal(t, "25.00", view.Total)
	})

	t.Run("at expiry", func(t *testing.T) {
		fx := createTestSecureLinkService(t)
		fx.secureLinkRepo.EXPECT().FindByToken(ctx, link.Token).Return(link, nil)

		_, err := fx.service.Resolve(ctx, link.Token)
		assert.ErrorIs(t, err, domainerrors.ErrLinkExpired)
	})
}

func TestSecureLinkService_Resolve_NotFound(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		fx := createTestSecureLinkService(t)

		_, err := fx.service.Resolve(ctx, "  ")
		assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
	})

	t.Run("unknown token", func(t *testing.T) {
		fx := createTestSecureLinkService(t)
		fx.secureLinkRepo.EXPECT().FindByToken(ctx, "nope").Return(nil, repository.ErrSecureLinkNotFound)

		_, err := fx.service.Resolve(ctx, "nope")
		assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
	})

	t.Run("link without order", func(t *testing.T) {
		fx := createTestSecureLinkService(t)
		fx.secureLinkRepo.EXPECT().FindByToken(ctx, "orphan").Return(&entity.SecureLink{Token: "orphan"}, nil)

		_, err := fx.service.Resolve(ctx, "orphan")
		assert.ErrorIs(t, err, domainerrors.ErrLinkNotFound)
	})
}

func TestSecureLinkService_ShareQR(t *testing.T) {
	fx := createTestSecureLinkService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	orderID := uuid.New()
	link := &entity.SecureLink{ID: uuid.New(), OrderID: &orderID, Token: "4b1d6f9e-7a0c-4d8e-9b3f-2c5a1e8d7f60"}

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	fx.secureLinkRepo.EXPECT().FindByOrderID(ctx, orderID).Return(link, nil)
	fx.qrCode.EXPECT().
		GeneratePNG("https://doces.example.com/secure-order/4b1d6f9e-7a0c-4d8e-9b3f-2c5a1e8d7f60").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.ShareQR(ctx, admin, orderID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
