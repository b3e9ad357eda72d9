package usecase

import (
	"context"

	"sweets/internal/domain/entity"
)

// AdminUsecase serves the admin console overview pages.
type AdminUsecase interface {
	Dashboard(ctx context.Context, admin entity.Principal) (*entity.DashboardStats, error)
	Customers(ctx context.Context, admin entity.Principal) ([]*entity.CustomerStats, error)
}
