package impl

import (
	"context"
	"testing"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	mockRepo "sweets/internal/mocks/repository"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	cartRepo    *mockRepo.MockCartRepository
	catalogRepo *mockRepo.MockCatalogRepository
	tx          *txRepos
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	srv := NewCartService(CartServiceParams{
		TxManager:   txManager,
		CartRepo:    cartRepo,
		CatalogRepo: catalogRepo,
		Logger:      newDiscardLogger(),
	})
	srv.(*cartService).now = fixedClock

	return cartServiceFixtures{
		service:     srv,
		txManager:   txManager,
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		tx:          newTxRepos(t),
	}
}

func TestCartService_GetOrCreateOpenCart_CreatesOnFirstUse(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.cartRepo.EXPECT().FindOpenCartByOwner(ctx, customerID).Return(nil, repository.ErrCartNotFound)
	fx.cartRepo.EXPECT().
		CreateCart(ctx, mock.MatchedBy(func(cart *entity.Cart) bool {
			return cart.OwnerID == customerID && !cart.Ordered
		})).
		Return(nil)

	cart, err := fx.service.GetOrCreateOpenCart(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, customerID, cart.OwnerID)
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total().IsZero())
}

func TestCartService_GetOrCreateOpenCart_ConcurrentCreate(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	winner := &entity.Cart{ID: uuid.New(), OwnerID: customerID}

	fx.cartRepo.EXPECT().FindOpenCartByOwner(ctx, customerID).Return(nil, repository.ErrCartNotFound).Once()
	fx.cartRepo.EXPECT().CreateCart(ctx, mock.Anything).Return(repository.ErrDuplicateOpenCart)
	fx.cartRepo.EXPECT().FindOpenCartByOwner(ctx, customerID).Return(winner, nil).Once()

	cart, err := fx.service.GetOrCreateOpenCart(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, cart.ID)
}

func TestCartService_AddItem_NewLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Bolo", Price: decimal.NewFromInt(10), Available: true}
	cart := &entity.Cart{ID: uuid.New(), OwnerID: customerID}
	reloaded := &entity.Cart{
		ID:      cart.ID,
		OwnerID: customerID,
		Items:   []*entity.CartItem{{ID: uuid.New(), ProductID: product.ID, Product: product, Quantity: 1}},
	}

	fx.catalogRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().FindOpenCartByOwner(ctx, customerID).Return(cart, nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.carts.EXPECT().LockCartByID(ctx, cart.ID).Return(cart, nil).Once()
	fx.tx.carts.EXPECT().
		CreateItem(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.CartID == cart.ID && item.ProductID == product.ID && item.Quantity == 1
		})).
		Return(nil)
	fx.tx.carts.EXPECT().LockCartByID(ctx, cart.ID).Return(reloaded, nil).Once()

	result, err := fx.service.AddItem(ctx, customerID, product.ID, 0)
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.True(t, result.Total().Equal(decimal.NewFromInt(10)))
}

func TestCartService_AddItem_IncrementsExistingLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Price: decimal.NewFromInt(5), Available: true}
	item := &entity.CartItem{ID: uuid.New(), ProductID: product.ID, Product: product, Quantity: 2}
	cart := &entity.Cart{ID: uuid.New(), OwnerID: customerID, Items: []*entity.CartItem{item}}

	fx.catalogRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().FindOpenCartByOwner(ctx, customerID).Return(cart, nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.carts.EXPECT().LockCartByID(ctx, cart.ID).Return(cart, nil)
	fx.tx.carts.EXPECT().UpdateItemQuantity(ctx, item.ID, 5).Return(nil)

	_, err := fx.service.AddItem(ctx, customerID, product.ID, 3)
	require.NoError(t, err)
}

func TestCartService_AddItem_RejectsUnavailableProduct(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	t.Run("unavailable", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.catalogRepo.EXPECT().
			FindProductByID(ctx, productID).
			Return(&entity.Product{ID: productID, Available: false}, nil)

		_, err := fx.service.AddItem(ctx, uuid.New(), productID, 1)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.catalogRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.AddItem(ctx, uuid.New(), productID, 1)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("negative quantity", func(t *testing.T) {
		fx := createTestCartService(t)

		_, err := fx.service.AddItem(ctx, uuid.New(), productID, -2)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCartService_AddItem_OrderedCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Available: true}
	cart := &entity.Cart{ID: uuid.New(), OwnerID: customerID}

	fx.catalogRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().FindOpenCartByOwner(ctx, customerID).Return(cart, nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.carts.EXPECT().
		LockCartByID(ctx, cart.ID).
		Return(&entity.Cart{ID: cart.ID, OwnerID: customerID, Ordered: true}, nil)

	_, err := fx.service.AddItem(ctx, customerID, product.ID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrCartAlreadyOrdered)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	itemID := uuid.New()

	tests := []struct {
		name     string
		itemID   uuid.UUID
		quantity int
		expect   func(carts *mockRepo.MockCartRepository)
		wantErr  error
	}{
		{
			name:     "overwrite",
			itemID:   itemID,
			quantity: 4,
			expect: func(carts *mockRepo.MockCartRepository) {
				carts.EXPECT().UpdateItemQuantity(ctx, itemID, 4).Return(nil)
			},
		},
		{
			name:     "zero removes",
			itemID:   itemID,
			quantity: 0,
			expect: func(carts *mockRepo.MockCartRepository) {
				carts.EXPECT().DeleteItem(ctx, itemID).Return(nil)
			},
		},
		{
			name:     "unknown item",
			itemID:   uuid.New(),
			quantity: 2,
			wantErr:  domainerrors.ErrCartItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)
			cart := &entity.Cart{
				ID:      uuid.New(),
				OwnerID: customerID,
				Items:   []*entity.CartItem{{ID: itemID, Quantity: 1}},
			}

			fx.cartRepo.EXPECT().FindOpenCartByOwner(ctx, customerID).Return(cart, nil)
			expectTransaction(fx.txManager, fx.tx.factory)
			fx.tx.carts.EXPECT().LockCartByID(ctx, cart.ID).Return(cart, nil)
			if tt.expect != nil {
				tt.expect(fx.tx.carts)
			}

			_, err := fx.service.UpdateQuantity(ctx, customerID, tt.itemID, tt.quantity)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	itemID := uuid.New()
	cart := &entity.Cart{ID: uuid.New(), OwnerID: customerID, Items: []*entity.CartItem{{ID: itemID, Quantity: 1}}}

	fx.cartRepo.EXPECT().FindOpenCartByOwner(ctx, customerID).Return(cart, nil)
	expectTransaction(fx.txManager, fx.tx.factory)
	fx.tx.carts.EXPECT().LockCartByID(ctx, cart.ID).Return(cart, nil).Once()
	fx.tx.carts.EXPECT().DeleteItem(ctx, itemID).Return(nil)
	fx.tx.carts.EXPECT().LockCartByID(ctx, cart.ID).Return(&entity.Cart{ID: cart.ID, OwnerID: customerID}, nil).Once()

	result, err := fx.service.RemoveItem(ctx, customerID, itemID)
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
}
