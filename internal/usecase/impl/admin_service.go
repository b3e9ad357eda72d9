package impl

import (
	"context"
	"log/slog"

	"sweets/internal/domain/entity"
	"sweets/internal/domain/repository"
	"sweets/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recentOrdersLimit is the number of orders shown on the dashboard.
const recentOrdersLimit = 5

type adminService struct {
	userRepo    repository.UserRepository
	catalogRepo repository.CatalogRepository
	orderRepo   repository.OrderRepository
	proofRepo   repository.PaymentProofRepository
	reviewRepo  repository.ReviewRepository
	gate        usecase.AccessGate
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	CatalogRepo repository.CatalogRepository
	OrderRepo   repository.OrderRepository
	ProofRepo   repository.PaymentProofRepository
	ReviewRepo  repository.ReviewRepository
	Gate        usecase.AccessGate
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:    params.UserRepo,
		catalogRepo: params.CatalogRepo,
		orderRepo:   params.OrderRepo,
		proofRepo:   params.ProofRepo,
		reviewRepo:  params.ReviewRepo,
		gate:        params.Gate,
		logger:      params.Logger,
	}
}

func (srv *adminService) Dashboard(ctx context.Context, admin entity.Principal) (*entity.DashboardStats, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	stats := &entity.DashboardStats{}
	var err error

	if stats.Products, err = srv.catalogRepo.CountProducts(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}
	if stats.Orders, err = srv.orderRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}
	if stats.Customers, err = srv.userRepo.CountCustomers(ctx, admin.UserID); err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}
	if stats.PendingProofs, err = srv.proofRepo.CountByStatus(ctx, entity.PaymentStatusPending); err != nil {
		return nil, errors.Wrap(err, "failed to count pending proofs")
	}
	if stats.Reviews, err = srv.reviewRepo.Count(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count reviews")
	}
	if stats.RecentOrders, err = srv.orderRepo.List(ctx, entity.OrderFilter{Limit: recentOrdersLimit}); err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	return stats, nil
}

// Customers returns per-customer order and review statistics.
func (srv *adminService) Customers(ctx context.Context, admin entity.Principal) ([]*entity.CustomerStats, error) {
	if err := srv.gate.RequireAdmin(ctx, admin); err != nil {
		return nil, err
	}

	customers, err := srv.userRepo.ListCustomerStats(ctx, admin.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer statistics")
	}

	return customers, nil
}
