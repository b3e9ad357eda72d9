package impl

import (
	"context"
	"strings"
	"testing"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	"sweets/internal/domain/service"
	mockRepo "sweets/internal/mocks/repository"
	mockSvc "sweets/internal/mocks/service"
	mockUsecase "sweets/internal/mocks/usecase"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceFixtures struct {
	service   usecase.PaymentUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	orderRepo *mockRepo.MockOrderRepository
	proofRepo *mockRepo.MockPaymentProofRepository
	storage   *mockSvc.MockBlobStorage
	publisher *mockSvc.MockEventPublisher
	gate      *mockUsecase.MockAccessGate
	tx        *txRepos
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	fx := paymentServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		orderRepo: mockRepo.NewMockOrderRepository(t),
		proofRepo: mockRepo.NewMockPaymentProofRepository(t),
		storage:   mockSvc.NewMockBlobStorage(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		gate:      mockUsecase.NewMockAccessGate(t),
		tx:        newTxRepos(t),
	}

	srv := NewPaymentService(PaymentServiceParams{
		TxManager: fx.txManager,
		UserRepo:  fx.userRepo,
		OrderRepo: fx.orderRepo,
		ProofRepo: fx.proofRepo,
		Storage:   fx.storage,
		Gate:      fx.gate,
		Publisher: fx.publisher,
		Config:    newTestConfig(0),
		Logger:    newDiscardLogger(),
	})
	srv.(*paymentService).now = fixedClock
	fx.service = srv

	return fx
}

func validPaymentInput() *usecase.PaymentInput {
	return &usecase.PaymentInput{
		Method:          entity.PaymentMethodBIM,
		ReferenceNumber: "BIM-0001",
		Evidence:        &usecase.FileUpload{Filename: "talão.png", Content: strings.NewReader("png")},
	}
}

func TestPaymentService_Submit_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	customerID := uuid.New()
	order := &entity.Order{ID: uuid.New(), OwnerID: customerID, Status: entity.OrderStatusPending, Total: decimal.NewFromInt(25)}
	admin := &entity.User{ID: uuid.New(), Username: testAdminUsername}

	fx.storage.EXPECT().Save(ctx, mock.Anything).Return("payments/p.png", nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.orders.EXPECT().LockByID(ctx, order.ID).Return(order, nil)
	fx.tx.proofs.EXPECT().Create(ctx, mock.AnythingOfType("*entity.PaymentProof")).Return(nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, testAdminUsername).Return(admin, nil)
	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.MatchedBy(func(event *service.StorefrontEvent) bool {
			return event.Type == service.EventPaymentSubmitted && event.RecipientID == admin.ID.String()
		})).
		Return(nil)

	proof, err := fx.service.Submit(ctx, customerID, order.ID, validPaymentInput())
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, proof.Status)
	assert.Equal(t, customerID, proof.OwnerID)
	assert.True(t, proof.Amount.Equal(decimal.NewFromInt(25)))
}

func TestPaymentService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.PaymentInput
	}{
		{name: "no evidence", input: &usecase.PaymentInput{Method: entity.PaymentMethodEmola, ReferenceNumber: "E1"}},
		{name: "unknown method", input: &usecase.PaymentInput{
			Method:          "paypal",
			ReferenceNumber: "X1",
			Evidence:        &usecase.FileUpload{Filename: "a.png", Content: strings.NewReader("")},
		}},
		{name: "blank reference", input: &usecase.PaymentInput{
			Method:   entity.PaymentMethodMpesa,
			Evidence: &usecase.FileUpload{Filename: "a.png", Content: strings.NewReader("")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPaymentService(t)

			_, err := fx.service.Submit(context.Background(), uuid.New(), uuid.New(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestPaymentService_Submit_OrderNoLongerPayable(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	customerID := uuid.New()
	order := &entity.Order{ID: uuid.New(), OwnerID: customerID, Status: entity.OrderStatusConfirmed, Paid: true}

	fx.storage.EXPECT().Save(ctx, mock.Anything).Return("payments/p.png", nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.orders.EXPECT().LockByID(ctx, order.ID).Return(order, nil)
	fx.storage.EXPECT().Delete(ctx, "payments/p.png").Return(nil)

	_, err := fx.service.Submit(ctx, customerID, order.ID, validPaymentInput())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestPaymentService_Submit_ForeignOrder(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), OwnerID: uuid.New(), Status: entity.OrderStatusPending}

	fx.storage.EXPECT().Save(ctx, mock.Anything).Return("payments/p.png", nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.orders.EXPECT().LockByID(ctx, order.ID).Return(order, nil)
	fx.storage.EXPECT().Delete(ctx, "payments/p.png").Return(nil)

	_, err := fx.service.Submit(ctx, uuid.New(), order.ID, validPaymentInput())
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestPaymentService_Decide_ApproveConfirmsOrder(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	order := &entity.Order{ID: uuid.New(), OwnerID: uuid.New(), Status: entity.OrderStatusPending, Total: decimal.NewFromInt(25)}
	proof := &entity.PaymentProof{ID: uuid.New(), OrderID: order.ID, OwnerID: order.OwnerID, Status: entity.PaymentStatusPending}

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.proofs.EXPECT().LockByID(ctx, proof.ID).Return(proof, nil)
	fx.tx.proofs.EXPECT().UpdateDecision(ctx, proof).Return(nil)
	fx.tx.orders.EXPECT().LockByID(ctx, order.ID).Return(order, nil)
	fx.tx.orders.EXPECT().UpdateState(ctx, order).Return(nil)
	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.MatchedBy(func(event *service.StorefrontEvent) bool {
			return event.Type == service.EventPaymentApproved && event.RecipientID == order.OwnerID.String()
		})).
		Return(nil)

	decided, err := fx.service.Decide(ctx, admin, proof.ID, entity.PaymentStatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusApproved, decided.Status)
	require.NotNil(t, decided.ProcessedBy)
	assert.Equal(t, admin.UserID, *decided.ProcessedBy)
	assert.Equal(t, testNow, *decided.ProcessedAt)

	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
	assert.True(t, order.Paid)
	assert.Equal(t, testNow, *order.PaidAt)
}

func TestPaymentService_Decide_RejectKeepsOrder(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	proof := &entity.PaymentProof{ID: uuid.New(), OrderID: uuid.New(), OwnerID: uuid.New(), Status: entity.PaymentStatusPending}

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.proofs.EXPECT().LockByID(ctx, proof.ID).Return(proof, nil)
	fx.tx.proofs.EXPECT().UpdateDecision(ctx, proof).Return(nil)
	fx.publisher.EXPECT().
		PublishEvent(ctx, mock.MatchedBy(func(event *service.StorefrontEvent) bool {
			return event.Type == service.EventPaymentRejected
		})).
		Return(nil)

	decided, err := fx.service.Decide(ctx, admin, proof.ID, entity.PaymentStatusRejected, " valor errado ")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRejected, decided.Status)
	assert.Equal(t, "valor errado", decided.RejectionReason)
}

func TestPaymentService_Decide_SecondDecisionRejected(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	proof := &entity.PaymentProof{ID: uuid.New(), Status: entity.PaymentStatusApproved}

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.proofs.EXPECT().LockByID(ctx, proof.ID).Return(proof, nil)

	_, err := fx.service.Decide(ctx, admin, proof.ID, entity.PaymentStatusRejected, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestPaymentService_Decide_GateBeforeValidation(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	customer := customerPrincipal()
	fx.gate.EXPECT().RequireAdmin(ctx, customer).Return(domainerrors.ErrAccessDenied)

	_, err := fx.service.Decide(ctx, customer, uuid.New(), "maybe", "")
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestPaymentService_Decide_UnknownOutcome(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)

	_, err := fx.service.Decide(ctx, admin, uuid.New(), entity.PaymentStatusPending, "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_Decide_MissingProof(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	proofID := uuid.New()

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.proofs.EXPECT().LockByID(ctx, proofID).Return(nil, repository.ErrPaymentProofNotFound)

	_, err := fx.service.Decide(ctx, admin, proofID, entity.PaymentStatusApproved, "")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentProofNotFound)
}

func TestPaymentService_ActiveProof(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	t.Run("latest wins", func(t *testing.T) {
		fx := createTestPaymentService(t)
		first := &entity.PaymentProof{ID: uuid.New(), CreatedAt: testNow.Add(-60)}
		second := &entity.PaymentProof{ID: uuid.New(), CreatedAt: testNow}
		fx.proofRepo.EXPECT().ListByOrder(ctx, orderID).Return([]*entity.PaymentProof{first, second}, nil)

		active, err := fx.service.ActiveProof(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, second.ID, active.ID)
	})

	t.Run("none", func(t *testing.T) {
		fx := createTestPaymentService(t)
		fx.proofRepo.EXPECT().ListByOrder(ctx, orderID).Return(nil, nil)

		_, err := fx.service.ActiveProof(ctx, orderID)
		assert.ErrorIs(t, err, domainerrors.ErrPaymentProofNotFound)
	})
}

func TestPaymentService_ListOrderProofs_ForeignOrder(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), OwnerID: uuid.New()}
	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.ListOrderProofs(ctx, uuid.New(), order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
