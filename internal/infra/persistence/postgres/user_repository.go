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

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. A taken username surfaces as ErrUserAlreadyExists.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// AcquireSessionMutex row-locks the user so concurrent logins of the same
// account serialise their session bookkeeping. It must run inside a transaction.
func (repo *userRepository) AcquireSessionMutex(ctx context.Context, userID uuid.UUID) error {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Select("id").
		Where("id = ?", userID).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to lock user")
	}

	return nil
}

func (repo *userRepository) CountCustomers(ctx context.Context, adminID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id <> ?", adminID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count customers")
	}

	return count, nil
}

const customerStatsQuery = `
SELECT u.id AS user_id,
       u.username,
       u.email,
       (SELECT COUNT(*) FROM orders o WHERE o.owner_id = u.id) AS order_count,
       (SELECT COUNT(*) FROM reviews r WHERE r.customer_id = u.id) AS review_count,
       COALESCE((SELECT AVG(r.stars) FROM reviews r WHERE r.customer_id = u.id), 0) AS average_stars
FROM users u
WHERE u.id <> ?
ORDER BY u.username`

// ListCustomerStats reports order and review activity per customer.
func (repo *userRepository) ListCustomerStats(ctx context.Context, adminID uuid.UUID) ([]*entity.CustomerStats, error) {
	var rows []model.CustomerStatsRow
	if err := repo.db.WithContext(ctx).Raw(customerStatsQuery, adminID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customer stats")
	}

	stats := make([]*entity.CustomerStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, &entity.CustomerStats{
			UserID:       row.UserID,
			Username:     row.Username,
			Email:        row.Email,
			OrderCount:   row.OrderCount,
			ReviewCount:  row.ReviewCount,
			AverageStars: row.AverageStars,
		})
	}

	return stats, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
