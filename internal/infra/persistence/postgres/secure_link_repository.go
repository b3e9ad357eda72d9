package postgres

import (
	"context"
	"time"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	"sweets/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type secureLinkRepository struct {
	db *gorm.DB
}

// NewSecureLinkRepository is the constructor for secureLinkRepository.
func NewSecureLinkRepository(db *gorm.DB) repository.SecureLinkRepository {
	return &secureLinkRepository{db: db}
}

func (repo *secureLinkRepository) FindByToken(ctx context.Context, token string) (*entity.SecureLink, error) {
	return repo.findOne(ctx, repo.db.Where("token = ?", token))
}

func (repo *secureLinkRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.SecureLink, error) {
	return repo.findOne(ctx, repo.db.Where("order_id = ?", orderID))
}

func (repo *secureLinkRepository) findOne(ctx context.Context, scope *gorm.DB) (*entity.SecureLink, error) {
	var linkM model.SecureLinkModel
	if err := scope.WithContext(ctx).First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSecureLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find secure link")
	}

	return toSecureLinkDomain(&linkM), nil
}

// Create inserts a link. The unique index on order_id turns a racing second
// issuance into ErrConflict.
func (repo *secureLinkRepository) Create(ctx context.Context, link *entity.SecureLink) error {
	linkM := fromSecureLinkDomain(link)

	if err := repo.db.WithContext(ctx).Omit("Order").Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order already has a secure link")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create secure link")
	}

	return nil
}

// UpdateExpiry changes only expires_at; a nil value clears it.
func (repo *secureLinkRepository) UpdateExpiry(ctx context.Context, id uuid.UUID, expiresAt *time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SecureLinkModel{}).
		Where("id = ?", id).
		Update("expires_at", expiresAt)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update secure link expiry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSecureLinkNotFound
	}

	return nil
}

func toSecureLinkDomain(data *model.SecureLinkModel) *entity.SecureLink {
	return &entity.SecureLink{
		ID:        data.ID,
		OrderID:   data.OrderID,
		Token:     data.Token,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}

func fromSecureLinkDomain(data *entity.SecureLink) *model.SecureLinkModel {
	return &model.SecureLinkModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		Token:     data.Token,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}
