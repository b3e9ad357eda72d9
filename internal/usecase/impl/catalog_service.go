package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "sweets/internal/delivery/context"
	"sweets/internal/domain/constants"
	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	"sweets/internal/domain/service"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// relatedProductsLimit caps the "you may also like" row of the product page.
const relatedProductsLimit = 4

type catalogService struct {
	catalogRepo repository.CatalogRepository
	reviewRepo  repository.ReviewRepository
	storage     service.BlobStorage
	gate        usecase.AccessGate
	now         func() time.Time
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	ReviewRepo  repository.ReviewRepository
	Storage     service.BlobStorage
	Gate        usecase.AccessGate
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		reviewRepo:  params.ReviewRepo,
		storage:     params.Storage,
		gate:        params.Gate,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListProducts returns the available products matching query.
func (srv *catalogService) ListProducts(ctx context.Context, query *usecase.ProductQuery) ([]*entity.Product, error) {
	filter := entity.ProductFilter{OnlyAvailable: true}
	if query != nil {
		filter.CategoryID = query.CategoryID
		filter.Search = strings.TrimSpace(query.Search)
	}

	products, err := srv.catalogRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct assembles the product page: the product, its rating, its reviews
// and a few available products of the same category.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*usecase.ProductDetails, error) {
	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	rating, err := srv.reviewRepo.Summary(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarise reviews")
	}

	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	var related []*entity.Product
	if product.CategoryID != nil {
		related, err = srv.catalogRepo.ListProducts(ctx, entity.ProductFilter{
			CategoryID:    product.CategoryID,
			OnlyAvailable: true,
			ExcludeID:     &product.ID,
			Limit:         relatedProductsLimit,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list related products")
		}
	}

	return &usecase.ProductDetails{
		Product: product,
		Rating:  rating,
		Reviews: reviews,
		Related: related,
	}, nil
}

func (srv *catalogService) ListAllProducts(ctx context.Context, admin entity.Principal) ([]*entity.Product, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	products, err := srv.catalogRepo.ListProducts(ctx, entity.ProductFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, admin entity.Principal, input *usecase.CategoryInput) (*entity.Category, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "category name is required")
	}

	category := &entity.Category{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
	}
	if err := srv.catalogRepo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, domainerrors.ErrCategoryAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create category")
	}
	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.String("name", name))

	return category, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, admin entity.Principal, input *usecase.ProductInput) (*entity.Product, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	now := srv.now()
	product := &entity.Product{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProductInput(product, input)

	if err := srv.prepareProduct(ctx, product); err != nil {
		return nil, err
	}

	media := newUploads(srv.storage, srv.logger)
	imageKey, err := media.save(ctx, constants.MediaPrefixProducts, input.Image, true)
	if err != nil {
		return nil, err
	}
	if imageKey != "" {
		product.ImageKey = imageKey
	}

	if err := srv.catalogRepo.CreateProduct(ctx, product); err != nil {
		media.discard(ctx)

		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID))

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, admin entity.Principal, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	previousImage := product.ImageKey
	applyProductInput(product, input)
	product.UpdatedAt = srv.now()

	if err := srv.prepareProduct(ctx, product); err != nil {
		return nil, err
	}

	media := newUploads(srv.storage, srv.logger)
	imageKey, err := media.save(ctx, constants.MediaPrefixProducts, input.Image, true)
	if err != nil {
		return nil, err
	}
	if imageKey != "" {
		product.ImageKey = imageKey
	}

	if err := srv.catalogRepo.UpdateProduct(ctx, product); err != nil {
		media.discard(ctx)
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	if imageKey != "" && previousImage != "" {
		srv.deleteImage(ctx, previousImage)
	}

	return product, nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, admin entity.Principal, productID uuid.UUID) error {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return err
	}

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return err
	}

	if err := srv.catalogRepo.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}
	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	if product.ImageKey != "" {
		srv.deleteImage(ctx, product.ImageKey)
	}

	return nil
}

func (srv *catalogService) findProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.catalogRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// prepareProduct validates the product and checks that its category exists.
func (srv *catalogService) prepareProduct(ctx context.Context, product *entity.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	if product.CategoryID == nil {
		return nil
	}

	if _, err := srv.catalogRepo.FindCategoryByID(ctx, *product.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to find category")
	}

	return nil
}

func (srv *catalogService) deleteImage(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete product image", slog.String("key", key), slog.Any("error", err))
	}
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) {
	product.CategoryID = input.CategoryID
	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.Price = input.Price
	product.Available = input.Available
}
