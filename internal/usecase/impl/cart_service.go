package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "sweets/internal/delivery/context"
	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	now         func() time.Time
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		catalogRepo: params.CatalogRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrCreateOpenCart returns the customer's open cart, creating an empty one on first use.
func (srv *cartService) GetOrCreateOpenCart(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	return srv.ensureOpenCart(ctx, customerID)
}

// ensureOpenCart runs outside a transaction: a unique violation aborts a
// Postgres transaction, so the losing side of a concurrent create re-reads instead.
func (srv *cartService) ensureOpenCart(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindOpenCartByOwner(ctx, customerID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find open cart")
	}

	cart = &entity.Cart{
		ID:        uuid.New(),
		OwnerID:   customerID,
		Items:     []*entity.CartItem{},
		CreatedAt: srv.now(),
	}
	if err := srv.cartRepo.CreateCart(ctx, cart); err != nil {
		if !errors.Is(err, repository.ErrDuplicateOpenCart) {
			return nil, errors.Wrap(err, "failed to create cart")
		}

		srv.log(ctx).Debug("Concurrent cart creation, re-reading", slog.Any("customerID", customerID))
		cart, err = srv.cartRepo.FindOpenCartByOwner(ctx, customerID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to re-read open cart")
		}

		return cart, nil
	}
	srv.log(ctx).Debug("Open cart created", slog.Any("customerID", customerID), slog.Any("cartID", cart.ID))

	return cart, nil
}

// mutate locks the open cart, applies fn and returns the cart as stored afterwards.
func (srv *cartService) mutate(ctx context.Context, customerID uuid.UUID, fn func(cartRepo repository.CartRepository, cart *entity.Cart) error) (*entity.Cart, error) {
	open, err := srv.ensureOpenCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var updated *entity.Cart
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.LockCartByID(ctx, open.ID)
		if err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}
		if cart.Ordered {
			return errors.Wrap(domainerrors.ErrCartAlreadyOrdered, "cart was checked out")
		}

		if err := fn(cartRepo, cart); err != nil {
			return err
		}

		updated, err = cartRepo.LockCartByID(ctx, cart.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload cart")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute cart transaction")
	}

	return updated, nil
}

// AddItem puts quantity units of product in the cart. Zero means one.
func (srv *cartService) AddItem(ctx context.Context, customerID uuid.UUID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be positive")
	}

	product, err := srv.catalogRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product does not exist")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.Available {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product is not available")
	}

	return srv.mutate(ctx, customerID, func(cartRepo repository.CartRepository, cart *entity.Cart) error {
		if existing := cart.FindItemByProduct(productID); existing != nil {
			return cartRepo.UpdateItemQuantity(ctx, existing.ID, existing.Quantity+quantity)
		}

		return cartRepo.CreateItem(ctx, &entity.CartItem{
			ID:        uuid.New(),
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
			CreatedAt: srv.now(),
		})
	})
}

// UpdateQuantity overwrites the quantity of an item; zero or less removes it.
func (srv *cartService) UpdateQuantity(ctx context.Context, customerID uuid.UUID, itemID uuid.UUID, quantity int) (*entity.Cart, error) {
	return srv.mutate(ctx, customerID, func(cartRepo repository.CartRepository, cart *entity.Cart) error {
		if cart.FindItem(itemID) == nil {
			return domainerrors.ErrCartItemNotFound
		}
		if quantity <= 0 {
			return cartRepo.DeleteItem(ctx, itemID)
		}

		return cartRepo.UpdateItemQuantity(ctx, itemID, quantity)
	})
}

func (srv *cartService) RemoveItem(ctx context.Context, customerID uuid.UUID, itemID uuid.UUID) (*entity.Cart, error) {
	return srv.mutate(ctx, customerID, func(cartRepo repository.CartRepository, cart *entity.Cart) error {
		if cart.FindItem(itemID) == nil {
			return domainerrors.ErrCartItemNotFound
		}

		return cartRepo.DeleteItem(ctx, itemID)
	})
}
