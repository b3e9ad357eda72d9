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

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Upsert inserts the review or, when the customer already reviewed the
// product, overwrites stars and comment. The entity is refreshed from the
// stored row so it carries the surviving id and creation time.
func (repo *reviewRepository) Upsert(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	err := repo.db.WithContext(ctx).
		Omit("Product", "Customer").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"stars", "comment", "updated_at"}),
		}).
		Create(reviewM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "stars out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert review")
	}

	var stored model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("product_id = ? AND customer_id = ?", review.ProductID, review.CustomerID).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload review")
	}

	review.ID = stored.ID
	review.CreatedAt = stored.CreatedAt
	review.UpdatedAt = stored.UpdatedAt

	return nil
}

// ListByProduct returns the reviews of a product, most recently updated first.
func (repo *reviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	return repo.list(ctx, repo.db.Where("product_id = ?", productID))
}

func (repo *reviewRepository) List(ctx context.Context) ([]*entity.Review, error) {
	return repo.list(ctx, repo.db)
}

func (repo *reviewRepository) list(ctx context.Context, scope *gorm.DB) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	err := scope.WithContext(ctx).
		Preload("Customer").
		Order("updated_at DESC").
		Order("id DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Summary aggregates average stars and review count. A product without reviews yields zeros.
func (repo *reviewRepository) Summary(ctx context.Context, productID uuid.UUID) (*entity.RatingSummary, error) {
	var row model.RatingSummaryRow
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(stars), 0) AS average, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&row).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarise reviews")
	}

	return &entity.RatingSummary{Average: row.Average, Count: row.Count}, nil
}

func (repo *reviewRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ReviewModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reviews")
	}

	return count, nil
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	review := &entity.Review{
		ID:         data.ID,
		ProductID:  data.ProductID,
		CustomerID: data.CustomerID,
		Stars:      data.Stars,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Customer != nil {
		review.Username = data.Customer.Username
	}

	return review
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:         data.ID,
		ProductID:  data.ProductID,
		CustomerID: data.CustomerID,
		Stars:      data.Stars,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
