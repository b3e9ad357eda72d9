package repository

import (
	"context"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned when a category name is already taken.
	ErrDuplicateCategory = errors.New("category already exists")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// CatalogRepository persists categories and products.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	CreateProduct(ctx context.Context, product *entity.Product) error
	UpdateProduct(ctx context.Context, product *entity.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts returns products matching filter, newest first.
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	CountProducts(ctx context.Context) (int64, error)
}
