package impl

import (
	"context"
	"log/slog"
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

type paymentService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	proofRepo repository.PaymentProofRepository
	storage   service.BlobStorage
	gate      usecase.AccessGate
	events    *eventEmitter
	now       func() time.Time
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
	ProofRepo repository.PaymentProofRepository
	Storage   service.BlobStorage
	Gate      usecase.AccessGate
	Publisher service.EventPublisher `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		proofRepo: params.ProofRepo,
		storage:   params.Storage,
		gate:      params.Gate,
		events:    newEventEmitter(params.Publisher, params.UserRepo, params.Config, params.Logger),
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit records a pending proof for one of the customer's unpaid pending orders.
func (srv *paymentService) Submit(ctx context.Context, customerID uuid.UUID, orderID uuid.UUID, input *usecase.PaymentInput) (*entity.PaymentProof, error) {
	if input == nil || input.Evidence == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "payment evidence is required")
	}
	if err := paymentSubmission(input, "").ValidateDetails(); err != nil {
		return nil, err
	}

	media := newUploads(srv.storage, srv.logger)
	evidenceKey, err := media.save(ctx, constants.MediaPrefixPayments, input.Evidence, true)
	if err != nil {
		return nil, err
	}

	var proof *entity.PaymentProof
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := repoFactory.OrderRepo().LockByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to lock order")
		}
		if order.OwnerID != customerID {
			return domainerrors.ErrOrderNotFound
		}
		if !order.AcceptsPayment() {
			return errors.Wrapf(domainerrors.ErrInvalidState, "order is %s and paid=%t", order.Status, order.Paid)
		}

		proof, err = entity.NewPaymentProof(order, paymentSubmission(input, evidenceKey), srv.now())
		if err != nil {
			return err
		}
		if err := repoFactory.PaymentProofRepo().Create(ctx, proof); err != nil {
			return errors.Wrap(err, "failed to create payment proof")
		}

		return nil
	})
	if err != nil {
		media.discard(ctx)
		srv.log(ctx).Warn("Payment submission failed", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute payment submission transaction")
	}
	srv.log(ctx).Info("Payment proof submitted", slog.Any("proofID", proof.ID), slog.Any("orderID", orderID))

	srv.events.emitToAdmin(ctx, service.EventPaymentSubmitted, orderID, string(proof.Status))

	return proof, nil
}

// Decide approves or rejects a pending proof. Approval settles the order in
// the same transaction.
func (srv *paymentService) Decide(ctx context.Context, admin entity.Principal, proofID uuid.UUID, outcome entity.PaymentStatus, reason string) (*entity.PaymentProof, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}
	if outcome != entity.PaymentStatusApproved && outcome != entity.PaymentStatusRejected {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown payment decision %q", outcome)
	}

	var proof *entity.PaymentProof
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		proofRepo := repoFactory.PaymentProofRepo()

		var err error
		proof, err = proofRepo.LockByID(ctx, proofID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentProofNotFound) {
				return domainerrors.ErrPaymentProofNotFound
			}

			return errors.Wrap(err, "failed to lock payment proof")
		}

		now := srv.now()
		if err := proof.Decide(outcome, admin.UserID, reason, now); err != nil {
			return err
		}
		if err := proofRepo.UpdateDecision(ctx, proof); err != nil {
			return errors.Wrap(err, "failed to record decision")
		}

		if outcome != entity.PaymentStatusApproved {
			return nil
		}

		orderRepo := repoFactory.OrderRepo()
		order, err := orderRepo.LockByID(ctx, proof.OrderID)
		if err != nil {
			return errors.Wrap(err, "failed to lock order")
		}
		if err := order.ApprovePayment(now); err != nil {
			return err
		}
		if err := orderRepo.UpdateState(ctx, order); err != nil {
			return errors.Wrap(err, "failed to settle order")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Payment decision failed", slog.Any("proofID", proofID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute payment decision transaction")
	}
	srv.log(ctx).Info("Payment proof decided", slog.Any("proofID", proofID), slog.String("outcome", string(outcome)))

	eventType := service.EventPaymentRejected
	if outcome == entity.PaymentStatusApproved {
		eventType = service.EventPaymentApproved
	}
	srv.events.emit(ctx, eventType, proof.OwnerID, proof.OrderID, string(proof.Status))

	return proof, nil
}

func (srv *paymentService) ListProofs(ctx context.Context, admin entity.Principal, status *entity.PaymentStatus) ([]*entity.PaymentProof, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown payment status %q", *status)
	}

	proofs, err := srv.proofRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment proofs")
	}

	return proofs, nil
}

// ListOrderProofs returns the proofs of one of the customer's orders, oldest first.
func (srv *paymentService) ListOrderProofs(ctx context.Context, customerID uuid.UUID, orderID uuid.UUID) ([]*entity.PaymentProof, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.OwnerID != customerID {
		return nil, domainerrors.ErrOrderNotFound
	}

	proofs, err := srv.proofRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment proofs")
	}

	return proofs, nil
}

// ActiveProof returns the latest submitted proof of the order.
func (srv *paymentService) ActiveProof(ctx context.Context, orderID uuid.UUID) (*entity.PaymentProof, error) {
	proofs, err := srv.proofRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment proofs")
	}

	active := entity.ActiveProof(proofs)
	if active == nil {
		return nil, domainerrors.ErrPaymentProofNotFound
	}

	return active, nil
}
