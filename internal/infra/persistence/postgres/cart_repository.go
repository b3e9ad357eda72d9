package postgres

import (
	"context"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	"sweets/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindOpenCartByOwner returns the owner's unordered cart with items and products loaded.
func (repo *cartRepository) FindOpenCartByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND ordered = ?", ownerID, false).
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find open cart")
	}

	return repo.withItems(ctx, &cartM)
}

// LockCartByID takes a FOR UPDATE lock on the cart row, then loads its items.
// The ordered flag is not filtered so callers can detect a concurrent checkout.
func (repo *cartRepository) LockCartByID(ctx context.Context, cartID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", cartID).
		First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to lock cart")
	}

	return repo.withItems(ctx, &cartM)
}

func (repo *cartRepository) withItems(ctx context.Context, cartM *model.CartModel) (*entity.Cart, error) {
	var items []*model.CartItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ?", cartM.ID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart items")
	}
	cartM.Items = items

	return toCartDomain(cartM), nil
}

// CreateCart inserts an empty cart. A second open cart for the same owner is
// rejected by the partial unique index and reported as ErrDuplicateOpenCart.
func (repo *cartRepository) CreateCart(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	if err := repo.db.WithContext(ctx).Omit("Items").Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOpenCart
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.CreatedAt = cartM.CreatedAt

	return nil
}

func (repo *cartRepository) MarkOrdered(ctx context.Context, cartID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ? AND ordered = ?", cartID, false).
		Update("ordered", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark cart ordered")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCartAlreadyOrdered
	}

	return nil
}

func (repo *cartRepository) CreateItem(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).Omit("Product").Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be at least 1")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
	}

	item.CreatedAt = itemM.CreatedAt

	return nil
}

func (repo *cartRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be at least 1")
		}

		return errors.Wrap(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (repo *cartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", itemID).Delete(&model.CartItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]*entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toCartItemDomain(itemM))
	}

	return &entity.Cart{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Ordered:   data.Ordered,
		Items:     items,
		CreatedAt: data.CreatedAt,
	}
}

func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	return &model.CartModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Ordered:   data.Ordered,
		CreatedAt: data.CreatedAt,
	}
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	return &entity.CartItem{
		ID:        data.ID,
		CartID:    data.CartID,
		ProductID: data.ProductID,
		Product:   toProductDomain(data.Product),
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
	}
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	return &model.CartItemModel{
		ID:        data.ID,
		CartID:    data.CartID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
	}
}
