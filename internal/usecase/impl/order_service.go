package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"sweets/config"
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

type orderService struct {
	txManager      repository.TransactionManager
	cartRepo       repository.CartRepository
	orderRepo      repository.OrderRepository
	proofRepo      repository.PaymentProofRepository
	secureLinkRepo repository.SecureLinkRepository
	storage        service.BlobStorage
	gate           usecase.AccessGate
	events         *eventEmitter
	now            func() time.Time
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	CartRepo       repository.CartRepository
	OrderRepo      repository.OrderRepository
	ProofRepo      repository.PaymentProofRepository
	SecureLinkRepo repository.SecureLinkRepository
	Storage        service.BlobStorage
	Gate           usecase.AccessGate
	Publisher      service.EventPublisher `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:      params.TxManager,
		cartRepo:       params.CartRepo,
		orderRepo:      params.OrderRepo,
		proofRepo:      params.ProofRepo,
		secureLinkRepo: params.SecureLinkRepo,
		storage:        params.Storage,
		gate:           params.Gate,
		events:         newEventEmitter(params.Publisher, params.UserRepo, params.Config, params.Logger),
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout turns the customer's open cart into a pending order. The cart lock,
// order creation, cart flag and optional proof form one unit of work.
func (srv *orderService) Checkout(ctx context.Context, customerID uuid.UUID, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	if input == nil {
		input = &usecase.CheckoutInput{}
	}
	srv.log(ctx).Info("Starting checkout", slog.Any("customerID", customerID))

	// An incomplete inline payment still places the order; the proof is then
	// submitted through the payment step.
	payment := input.Payment
	if payment != nil && !inlinePaymentComplete(payment) {
		srv.log(ctx).Info("Inline payment incomplete, placing order without proof", slog.Any("customerID", customerID))
		payment = nil
	}
	if payment != nil {
		if err := paymentSubmission(payment, "").ValidateDetails(); err != nil {
			return nil, err
		}
	}

	open, err := srv.cartRepo.FindOpenCartByOwner(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(domainerrors.ErrEmptyCart, "no open cart")
		}

		return nil, errors.Wrap(err, "failed to find open cart")
	}

	media := newUploads(srv.storage, srv.logger)
	details := entity.OrderDetails{
		Description: strings.TrimSpace(input.Description),
		ReceiptDate: input.ReceiptDate,
	}
	if details.ReferenceImage1Key, err = media.save(ctx, constants.MediaPrefixOrders, input.ReferenceImage1, true); err != nil {
		media.discard(ctx)

		return nil, err
	}
	if details.ReferenceImage2Key, err = media.save(ctx, constants.MediaPrefixOrders, input.ReferenceImage2, true); err != nil {
		media.discard(ctx)

		return nil, err
	}
	var evidenceKey string
	if payment != nil {
		if evidenceKey, err = media.save(ctx, constants.MediaPrefixPayments, payment.Evidence, true); err != nil {
			media.discard(ctx)

			return nil, err
		}
	}

	output := &usecase.CheckoutOutput{}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := cartRepo.LockCartByID(ctx, open.ID)
		if err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}
		if cart.Ordered {
			return errors.Wrap(domainerrors.ErrCartAlreadyOrdered, "cart was already checked out")
		}

		now := srv.now()
		order, err := entity.NewOrderFromCart(cart, details, now)
		if err != nil {
			return err
		}
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}
		if err := cartRepo.MarkOrdered(ctx, cart.ID); err != nil {
			return errors.Wrap(err, "failed to mark cart ordered")
		}
		output.Order = order

		if payment == nil {
			return nil
		}

		proof, err := entity.NewPaymentProof(order, paymentSubmission(payment, evidenceKey), now)
		if err != nil {
			return err
		}
		if err := repoFactory.PaymentProofRepo().Create(ctx, proof); err != nil {
			return errors.Wrap(err, "failed to create payment proof")
		}
		output.Proof = proof

		return nil
	})
	if err != nil {
		media.discard(ctx)
		srv.log(ctx).Warn("Checkout failed", slog.Any("customerID", customerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}
	srv.log(ctx).Info("Order placed", slog.Any("orderID", output.Order.ID), slog.String("total", output.Order.Total.StringFixed(2)))

	srv.events.emitToAdmin(ctx, service.EventOrderPlaced, output.Order.ID, string(output.Order.Status))
	if output.Proof != nil {
		srv.events.emitToAdmin(ctx, service.EventPaymentSubmitted, output.Order.ID, string(output.Proof.Status))
	}

	return output, nil
}

func inlinePaymentComplete(input *usecase.PaymentInput) bool {
	return strings.TrimSpace(string(input.Method)) != "" &&
		strings.TrimSpace(input.ReferenceNumber) != "" &&
		input.Evidence != nil
}

func paymentSubmission(input *usecase.PaymentInput, evidenceKey string) entity.PaymentSubmission {
	return entity.PaymentSubmission{
		Method:          input.Method,
		ReferenceNumber: input.ReferenceNumber,
		EvidenceKey:     evidenceKey,
		Notes:           strings.TrimSpace(input.Notes),
	}
}

func (srv *orderService) ListMyOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, entity.OrderFilter{OwnerID: &customerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetMyOrder returns one of the customer's orders. Orders of other customers
// are reported as missing.
func (srv *orderService) GetMyOrder(ctx context.Context, customerID uuid.UUID, orderID uuid.UUID) (*usecase.OrderDetails, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.OwnerID != customerID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return srv.details(ctx, order, false)
}

func (srv *orderService) ListOrders(ctx context.Context, admin entity.Principal, status *entity.OrderStatus) ([]*entity.Order, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order status %q", *status)
	}

	orders, err := srv.orderRepo.List(ctx, entity.OrderFilter{Status: status})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) GetOrder(ctx context.Context, admin entity.Principal, orderID uuid.UUID) (*usecase.OrderDetails, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return srv.details(ctx, order, true)
}

func (srv *orderService) details(ctx context.Context, order *entity.Order, withLink bool) (*usecase.OrderDetails, error) {
	proofs, err := srv.proofRepo.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment proofs")
	}

	details := &usecase.OrderDetails{
		Order:       order,
		Proofs:      proofs,
		ActiveProof: entity.ActiveProof(proofs),
	}
	if !withLink {
		return details, nil
	}

	link, err := srv.secureLinkRepo.FindByOrderID(ctx, order.ID)
	switch {
	case err == nil:
		details.SecureLink = link
	case errors.Is(err, repository.ErrSecureLinkNotFound):
	default:
		return nil, errors.Wrap(err, "failed to find secure link")
	}

	return details, nil
}

// AdvanceStatus moves the order along the transition table.
func (srv *orderService) AdvanceStatus(ctx context.Context, admin entity.Principal, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	return srv.changeStatus(ctx, orderID, func(order *entity.Order, now time.Time) error {
		return order.TransitionTo(status, now)
	})
}

// OverrideStatus sets any known status, ignoring the transition table.
func (srv *orderService) OverrideStatus(ctx context.Context, admin entity.Principal, orderID uuid.UUID, status entity.OrderStatus, reason string) (*entity.Order, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	return srv.changeStatus(ctx, orderID, func(order *entity.Order, now time.Time) error {
		previous := order.Status
		if err := order.Override(status, now); err != nil {
			return err
		}
		srv.log(ctx).Warn("Order status overridden",
			slog.Any("orderID", order.ID),
			slog.Any("adminID", admin.UserID),
			slog.String("from", string(previous)),
			slog.String("to", string(status)),
			slog.String("reason", reason),
		)

		return nil
	})
}

func (srv *orderService) MarkDelivered(ctx context.Context, admin entity.Principal, orderID uuid.UUID) (*entity.Order, error) {
	return srv.AdvanceStatus(ctx, admin, orderID, entity.OrderStatusDelivered)
}

func (srv *orderService) changeStatus(ctx context.Context, orderID uuid.UUID, apply func(order *entity.Order, now time.Time) error) (*entity.Order, error) {
	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.LockByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to lock order")
		}

		if err := apply(order, srv.now()); err != nil {
			return err
		}
		if err := orderRepo.UpdateState(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}

		updated, err = orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to reload order")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute order status transaction")
	}
	srv.log(ctx).Info("Order status changed", slog.Any("orderID", orderID), slog.String("status", string(updated.Status)))

	srv.events.emit(ctx, service.EventOrderStatusChanged, updated.OwnerID, updated.ID, string(updated.Status))

	return updated, nil
}

func (srv *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}
