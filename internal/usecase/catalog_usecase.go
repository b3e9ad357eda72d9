package usecase

import (
	"context"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductQuery narrows the public product listing.
type ProductQuery struct {
	CategoryID *uuid.UUID
	Search     string
}

// CategoryInput defines the data required to create a category.
type CategoryInput struct {
	Name        string
	Description string
}

// ProductInput defines the data required to create or update a product.
type ProductInput struct {
	CategoryID  *uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Available   bool
	Image       *FileUpload
}

// ProductDetails is the product page.
type ProductDetails struct {
	Product *entity.Product
	Rating  *entity.RatingSummary
	Reviews []*entity.Review
	Related []*entity.Product
}

// CatalogUsecase defines catalog browsing and administration.
type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListProducts(ctx context.Context, query *ProductQuery) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDetails, error)

	ListAllProducts(ctx context.Context, admin entity.Principal) ([]*entity.Product, error)
	CreateCategory(ctx context.Context, admin entity.Principal, input *CategoryInput) (*entity.Category, error)
	CreateProduct(ctx context.Context, admin entity.Principal, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, admin entity.Principal, productID uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, admin entity.Principal, productID uuid.UUID) error
}
