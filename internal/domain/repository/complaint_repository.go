package repository

import (
	"context"

	"sweets/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrComplaintNotFound is returned when a complaint is not found.
var ErrComplaintNotFound = errors.New("complaint not found")

// ComplaintRepository persists complaints.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error)

	// List returns complaints newest first.
	List(ctx context.Context, filter entity.ComplaintFilter) ([]*entity.Complaint, error)

	// Update writes status and the response fields.
	Update(ctx context.Context, complaint *entity.Complaint) error
}
