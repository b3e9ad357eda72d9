package impl

import (
	"context"
	"strings"
	"testing"

	"sweets/internal/domain/constants"
	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	"sweets/internal/domain/service"
	mockRepo "sweets/internal/mocks/repository"
	mockSvc "sweets/internal/mocks/service"
	mockUsecase "sweets/internal/mocks/usecase"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	catalogRepo *mockRepo.MockCatalogRepository
	reviewRepo  *mockRepo.MockReviewRepository
	storage     *mockSvc.MockBlobStorage
	gate        *mockUsecase.MockAccessGate
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	storage := mockSvc.NewMockBlobStorage(t)
	gate := mockUsecase.NewMockAccessGate(t)

	srv := NewCatalogService(CatalogServiceParams{
		CatalogRepo: catalogRepo,
		ReviewRepo:  reviewRepo,
		Storage:     storage,
		Gate:        gate,
		Logger:      newDiscardLogger(),
	})
	srv.(*catalogService).now = fixedClock

	return catalogServiceFixtures{
		service:     srv,
		catalogRepo: catalogRepo,
		reviewRepo:  reviewRepo,
		storage:     storage,
		gate:        gate,
	}
}

func TestCatalogService_ListProducts_OnlyAvailable(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	products := []*entity.Product{{ID: uuid.New(), Name: "Brigadeiro", Available: true}}

	fx.catalogRepo.EXPECT().
		ListProducts(ctx, entity.ProductFilter{CategoryID: &categoryID, Search: "brig", OnlyAvailable: true}).
		Return(products, nil)

	result, err := fx.service.ListProducts(ctx, &usecase.ProductQuery{CategoryID: &categoryID, Search: " brig "})
	require.NoError(t, err)
	assert.Equal(t, products, result)
}

func TestCatalogService_GetProduct_WithRelated(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	product := &entity.Product{ID: uuid.New(), CategoryID: &categoryID, Name: "Bolo de chocolate"}
	related := []*entity.Product{{ID: uuid.New(), CategoryID: &categoryID, Name: "Bolo de cenoura"}}
	rating := &entity.RatingSummary{Average: 4.5, Count: 2}

	fx.catalogRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.reviewRepo.EXPECT().Summary(ctx, product.ID).Return(rating, nil)
	fx.reviewRepo.EXPECT().ListByProduct(ctx, product.ID).Return([]*entity.Review{}, nil)
	fx.catalogRepo.EXPECT().
		ListProducts(ctx, mock.MatchedBy(func(filter entity.ProductFilter) bool {
			return filter.OnlyAvailable &&
				*filter.CategoryID == categoryID &&
				*filter.ExcludeID == product.ID &&
				filter.Limit == relatedProductsLimit
		})).
		Return(related, nil)

	details, err := fx.service.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product, details.Product)
	assert.Equal(t, rating, details.Rating)
	assert.Equal(t, related, details.Related)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.catalogRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, productID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_CreateCategory(t *testing.T) {
	ctx := context.Background()
	admin := adminPrincipal()

	t.Run("created", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
		fx.catalogRepo.EXPECT().
			CreateCategory(ctx, mock.MatchedBy(func(c *entity.Category) bool { return c.Name == "Bolos" })).
			Return(nil)

		category, err := fx.service.CreateCategory(ctx, admin, &usecase.CategoryInput{Name: "  Bolos "})
		require.NoError(t, err)
		assert.Equal(t, "Bolos", category.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
		fx.catalogRepo.EXPECT().
			CreateCategory(ctx, mock.AnythingOfType("*entity.Category")).
			Return(repository.ErrDuplicateCategory)

		_, err := fx.service.CreateCategory(ctx, admin, &usecase.CategoryInput{Name: "Bolos"})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryAlreadyExists)
	})

	t.Run("not admin", func(t *testing.T) {
		fx := createTestCatalogService(t)
		customer := customerPrincipal()
		fx.gate.EXPECT().RequireAdmin(ctx, customer).Return(errors.Wrap(domainerrors.ErrAccessDenied, "admin privileges required"))

		_, err := fx.service.CreateCategory(ctx, customer, &usecase.CategoryInput{Name: "Bolos"})
		assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
	})
}

func TestCatalogService_CreateProduct_StoresImage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	input := &usecase.ProductInput{
		Name:      "Pastel de nata",
		Price:     decimal.RequireFromString("2.50"),
		Available: true,
		Image:     &usecase.FileUpload{Filename: "nata.png", Content: strings.NewReader("png")},
	}

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	fx.storage.EXPECT().
		Save(ctx, mock.MatchedBy(func(upload *service.Upload) bool {
			return upload.Prefix == constants.MediaPrefixProducts && upload.ImagesOnly
		})).
		Return("products/abc.png", nil)
	fx.catalogRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, admin, input)
	require.NoError(t, err)
	assert.Equal(t, "products/abc.png", product.ImageKey)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("2.50")))
	assert.Equal(t, testNow, product.CreatedAt)
}

func TestCatalogService_CreateProduct_DiscardsImageOnFailure(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	input := &usecase.ProductInput{
		Name:  "Queijada",
		Price: decimal.NewFromInt(3),
		Image: &usecase.FileUpload{Filename: "q.jpg", Content: strings.NewReader("jpg")},
	}

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	fx.storage.EXPECT().Save(ctx, mock.Anything).Return("products/q.jpg", nil)
	fx.catalogRepo.EXPECT().CreateProduct(ctx, mock.Anything).Return(errors.New("insert failed"))
	fx.storage.EXPECT().Delete(ctx, "products/q.jpg").Return(nil)

	_, err := fx.service.CreateProduct(ctx, admin, input)
	require.Error(t, err)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	ctx := context.Background()
	admin := adminPrincipal()
	missingCategory := uuid.New()

	tests := []struct {
		name    string
		input   *usecase.ProductInput
		setup   func(fx catalogServiceFixtures)
		wantErr error
	}{
		{
			name:    "blank name",
			input:   &usecase.ProductInput{Name: " ", Price: decimal.NewFromInt(1)},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "negative price",
			input:   &usecase.ProductInput{Name: "Bolo", Price: decimal.NewFromInt(-1)},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "unknown category",
			input: &usecase.ProductInput{Name: "Bolo", Price: decimal.NewFromInt(1), CategoryID: &missingCategory},
			setup: func(fx catalogServiceFixtures) {
				fx.catalogRepo.EXPECT().FindCategoryByID(ctx, missingCategory).Return(nil, repository.ErrCategoryNotFound)
			},
			wantErr: domainerrors.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
			if tt.setup != nil {
				tt.setup(fx)
			}

			_, err := fx.service.CreateProduct(ctx, admin, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogService_UpdateProduct_ReplacesImage(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	product := &entity.Product{ID: uuid.New(), Name: "Bolo", Price: decimal.NewFromInt(10), ImageKey: "products/old.png"}

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	fx.catalogRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.storage.EXPECT().Save(ctx, mock.Anything).Return("products/new.png", nil)
	fx.catalogRepo.EXPECT().UpdateProduct(ctx, product).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "products/old.png").Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, admin, product.ID, &usecase.ProductInput{
		Name:  "Bolo de laranja",
		Price: decimal.NewFromInt(12),
		Image: &usecase.FileUpload{Filename: "new.png", Content: strings.NewReader("png")},
	})
	require.NoError(t, err)
	assert.Equal(t, "products/new.png", updated.ImageKey)
	assert.Equal(t, "Bolo de laranja", updated.Name)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	admin := adminPrincipal()
	product := &entity.Product{ID: uuid.New(), ImageKey: "products/x.png"}

	fx.gate.EXPECT().RequireAdmin(ctx, admin).Return(nil)
	fx.catalogRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.catalogRepo.EXPECT().DeleteProduct(ctx, product.ID).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "products/x.png").Return(errors.New("bucket unavailable"))

	require.NoError(t, fx.service.DeleteProduct(ctx, admin, product.ID))
}
