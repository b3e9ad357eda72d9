package usecase

import (
	"context"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
)

// ComplaintUsecase covers customer complaints and admin responses.
type ComplaintUsecase interface {
	Submit(ctx context.Context, customerID uuid.UUID, subject string, message string) (*entity.Complaint, error)
	ListMine(ctx context.Context, customerID uuid.UUID) ([]*entity.Complaint, error)
	ListAll(ctx context.Context, admin entity.Principal, status *entity.ComplaintStatus) ([]*entity.Complaint, error)

	// Get returns the complaint and marks it read when it is new.
	Get(ctx context.Context, admin entity.Principal, complaintID uuid.UUID) (*entity.Complaint, error)
	Respond(ctx context.Context, admin entity.Principal, complaintID uuid.UUID, response string) (*entity.Complaint, error)
	Resolve(ctx context.Context, admin entity.Principal, complaintID uuid.UUID) (*entity.Complaint, error)
}
