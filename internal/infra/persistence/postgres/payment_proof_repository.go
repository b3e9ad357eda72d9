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

type paymentProofRepository struct {
	db *gorm.DB
}

// NewPaymentProofRepository is the constructor for paymentProofRepository.
func NewPaymentProofRepository(db *gorm.DB) repository.PaymentProofRepository {
	return &paymentProofRepository{db: db}
}

func (repo *paymentProofRepository) Create(ctx context.Context, proof *entity.PaymentProof) error {
	proofM := fromPaymentProofDomain(proof)

	if err := repo.db.WithContext(ctx).Omit("Order").Create(proofM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment proof")
	}

	proof.CreatedAt = proofM.CreatedAt

	return nil
}

func (repo *paymentProofRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentProof, error) {
	return repo.findOne(ctx, repo.db, id)
}

// LockByID reads the proof under a FOR UPDATE lock so two decisions serialise.
func (repo *paymentProofRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.PaymentProof, error) {
	return repo.findOne(ctx, repo.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *paymentProofRepository) findOne(ctx context.Context, scope *gorm.DB, id uuid.UUID) (*entity.PaymentProof, error) {
	var proofM model.PaymentProofModel
	if err := scope.WithContext(ctx).Where("id = ?", id).First(&proofM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentProofNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment proof")
	}

	return toPaymentProofDomain(&proofM), nil
}

// UpdateDecision writes the admin outcome fields.
func (repo *paymentProofRepository) UpdateDecision(ctx context.Context, proof *entity.PaymentProof) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentProofModel{}).
		Where("id = ?", proof.ID).
		Updates(map[string]any{
			"status":           string(proof.Status),
			"processed_by":     proof.ProcessedBy,
			"processed_at":     proof.ProcessedAt,
			"rejection_reason": proof.RejectionReason,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment decision")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentProofNotFound
	}

	return nil
}

// ListByOrder returns the proofs of one order, oldest first.
func (repo *paymentProofRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.PaymentProof, error) {
	return repo.list(ctx, repo.db.Where("order_id = ?", orderID).Order("created_at ASC").Order("id ASC"))
}

// List returns proofs newest first, optionally narrowed to one status.
func (repo *paymentProofRepository) List(ctx context.Context, status *entity.PaymentStatus) ([]*entity.PaymentProof, error) {
	scope := repo.db
	if status != nil {
		scope = scope.Where("status = ?", string(*status))
	}

	return repo.list(ctx, scope.Order("created_at DESC").Order("id DESC"))
}

func (repo *paymentProofRepository) list(ctx context.Context, scope *gorm.DB) ([]*entity.PaymentProof, error) {
	var proofModels []*model.PaymentProofModel
	if err := scope.WithContext(ctx).Find(&proofModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payment proofs")
	}

	proofs := make([]*entity.PaymentProof, 0, len(proofModels))
	for _, proofM := range proofModels {
		proofs = append(proofs, toPaymentProofDomain(proofM))
	}

	return proofs, nil
}

func (repo *paymentProofRepository) CountByStatus(ctx context.Context, status entity.PaymentStatus) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PaymentProofModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count payment proofs")
	}

	return count, nil
}

// --- Mapper Functions ---

func toPaymentProofDomain(data *model.PaymentProofModel) *entity.PaymentProof {
	if data == nil {
		return nil
	}

	return &entity.PaymentProof{
		ID:              data.ID,
		OrderID:         data.OrderID,
		OwnerID:         data.OwnerID,
		Method:          entity.PaymentMethod(data.Method),
		ReferenceNumber: data.ReferenceNumber,
		Amount:          data.Amount,
		EvidenceKey:     data.EvidenceKey,
		Notes:           data.Notes,
		Status:          entity.PaymentStatus(data.Status),
		ProcessedBy:     data.ProcessedBy,
		ProcessedAt:     data.ProcessedAt,
		RejectionReason: data.RejectionReason,
		CreatedAt:       data.CreatedAt,
	}
}

func fromPaymentProofDomain(data *entity.PaymentProof) *model.PaymentProofModel {
	if data == nil {
		return nil
	}

	return &model.PaymentProofModel{
		ID:              data.ID,
		OrderID:         data.OrderID,
		OwnerID:         data.OwnerID,
		Method:          string(data.Method),
		ReferenceNumber: data.ReferenceNumber,
		Amount:          data.Amount,
		EvidenceKey:     data.EvidenceKey,
		Notes:           data.Notes,
		Status:          string(data.Status),
		ProcessedBy:     data.ProcessedBy,
		ProcessedAt:     data.ProcessedAt,
		RejectionReason: data.RejectionReason,
		CreatedAt:       data.CreatedAt,
	}
}
