package impl

import (
	"context"
	"log/slog"
	"time"

	"sweets/config"
	deliverycontext "sweets/internal/delivery/context"
	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	"sweets/internal/domain/service"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type complaintService struct {
	complaintRepo repository.ComplaintRepository
	gate          usecase.AccessGate
	events        *eventEmitter
	now           func() time.Time
	logger        *slog.Logger
}

// ComplaintServiceParams holds dependencies for complaintService, injected by Fx.
type ComplaintServiceParams struct {
	fx.In

	ComplaintRepo repository.ComplaintRepository
	UserRepo      repository.UserRepository
	Gate          usecase.AccessGate
	Publisher     service.EventPublisher `optional:"true"`
	Config        *config.Config
	Logger        *slog.Logger
}

// NewComplaintService is the constructor for complaintService.
func NewComplaintService(params ComplaintServiceParams) usecase.ComplaintUsecase {
	return &complaintService{
		complaintRepo: params.ComplaintRepo,
		gate:          params.Gate,
		events:        newEventEmitter(params.Publisher, params.UserRepo, params.Config, params.Logger),
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *complaintService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *complaintService) Submit(ctx context.Context, customerID uuid.UUID, subject string, message string) (*entity.Complaint, error) {
	complaint, err := entity.NewComplaint(customerID, subject, message, srv.now())
	if err != nil {
		return nil, err
	}

	if err := srv.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, errors.Wrap(err, "failed to create complaint")
	}
	srv.log(ctx).Info("Complaint submitted", slog.Any("complaintID", complaint.ID), slog.Any("customerID", customerID))

	return complaint, nil
}

func (srv *complaintService) ListMine(ctx context.Context, customerID uuid.UUID) ([]*entity.Complaint, error) {
	complaints, err := srv.complaintRepo.List(ctx, entity.ComplaintFilter{CustomerID: &customerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}

	return complaints, nil
}

func (srv *complaintService) ListAll(ctx context.Context, admin entity.Principal, status *entity.ComplaintStatus) ([]*entity.Complaint, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown complaint status %q", *status)
	}

	complaints, err := srv.complaintRepo.List(ctx, entity.ComplaintFilter{Status: status})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}

	return complaints, nil
}

// Get returns the complaint and marks it read when it is new.
func (srv *complaintService) Get(ctx context.Context, admin entity.Principal, complaintID uuid.UUID) (*entity.Complaint, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	complaint, err := srv.find(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	if complaint.MarkRead() {
		if err := srv.complaintRepo.Update(ctx, complaint); err != nil {
			return nil, errors.Wrap(err, "failed to mark complaint read")
		}
	}

	return complaint, nil
}

func (srv *complaintService) Respond(ctx context.Context, admin entity.Principal, complaintID uuid.UUID, response string) (*entity.Complaint, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	complaint, err := srv.find(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	if err := complaint.Answer(admin.UserID, response, srv.now()); err != nil {
		return nil, err
	}
	if err := srv.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, errors.Wrap(err, "failed to save complaint response")
	}
	srv.log(ctx).Info("Complaint answered", slog.Any("complaintID", complaintID))

	srv.events.emit(ctx, service.EventComplaintAnswered, complaint.CustomerID, complaint.ID, string(complaint.Status))

	return complaint, nil
}

func (srv *complaintService) Resolve(ctx context.Context, admin entity.Principal, complaintID uuid.UUID) (*entity.Complaint, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	complaint, err := srv.find(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	if err := complaint.Resolve(); err != nil {
		return nil, err
	}
	if err := srv.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, errors.Wrap(err, "failed to resolve complaint")
	}
	srv.log(ctx).Info("Complaint resolved", slog.Any("complaintID", complaintID))

	return complaint, nil
}

func (srv *complaintService) find(ctx context.Context, complaintID uuid.UUID) (*entity.Complaint, error) {
	complaint, err := srv.complaintRepo.FindByID(ctx, complaintID)
	if err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return nil, domainerrors.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint")
	}

	return complaint, nil
}
