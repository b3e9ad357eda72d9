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
)

type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository is the constructor for complaintRepository.
func NewComplaintRepository(db *gorm.DB) repository.ComplaintRepository {
	return &complaintRepository{db: db}
}

func (repo *complaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	if err := repo.db.WithContext(ctx).Create(fromComplaintDomain(complaint)).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid complaint author")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create complaint")
	}

	return nil
}

func (repo *complaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	var complaintM model.ComplaintModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&complaintM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint")
	}

	return toComplaintDomain(&complaintM), nil
}

// List returns complaints newest first.
func (repo *complaintRepository) List(ctx context.Context, filter entity.ComplaintFilter) ([]*entity.Complaint, error) {
	query := repo.db.WithContext(ctx).Model(&model.ComplaintModel{})
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var complaintModels []*model.ComplaintModel
	if err := query.Order("created_at DESC").Order("id DESC").Find(&complaintModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}

	complaints := make([]*entity.Complaint, 0, len(complaintModels))
	for _, complaintM := range complaintModels {
		complaints = append(complaints, toComplaintDomain(complaintM))
	}

	return complaints, nil
}

// Update writes status and the response triple together.
func (repo *complaintRepository) Update(ctx context.Context, complaint *entity.Complaint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ComplaintModel{}).
		Where("id = ?", complaint.ID).
		Updates(map[string]any{
			"status":       string(complaint.Status),
			"response":     complaint.Response,
			"responded_by": complaint.RespondedBy,
			"responded_at": complaint.RespondedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update complaint")
	}
	if result.RowsAffected == 0 {
		return repository.ErrComplaintNotFound
	}

	return nil
}

func toComplaintDomain(data *model.ComplaintModel) *entity.Complaint {
	return &entity.Complaint{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		Subject:     data.Subject,
		Message:     data.Message,
		Status:      entity.ComplaintStatus(data.Status),
		Response:    data.Response,
		RespondedBy: data.RespondedBy,
		RespondedAt: data.RespondedAt,
		CreatedAt:   data.CreatedAt,
	}
}

func fromComplaintDomain(data *entity.Complaint) *model.ComplaintModel {
	return &model.ComplaintModel{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		Subject:     data.Subject,
		Message:     data.Message,
		Status:      string(data.Status),
		Response:    data.Response,
		RespondedBy: data.RespondedBy,
		RespondedAt: data.RespondedAt,
		CreatedAt:   data.CreatedAt,
	}
}
