package impl

import (
	"context"
	"log/slog"

	"sweets/config"
	deliverycontext "sweets/internal/delivery/context"
	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	"sweets/internal/domain/service"
	"sweets/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accessGate verifies administrator claims against storage on every call.
type accessGate struct {
	userRepo      repository.UserRepository
	authRepo      repository.AuthRepository
	hasher        service.PasswordHasher
	adminUsername string
	adminPassword string
	logger        *slog.Logger
}

// AccessGateParams holds dependencies for the access gate, injected by Fx.
type AccessGateParams struct {
	fx.In

	UserRepo repository.UserRepository
	AuthRepo repository.AuthRepository
	Hasher   service.PasswordHasher
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAccessGate is the constructor for accessGate.
func NewAccessGate(params AccessGateParams) usecase.AccessGate {
	gate := &accessGate{
		userRepo: params.UserRepo,
		authRepo: params.AuthRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
	if params.Config != nil && params.Config.Admin != nil {
		gate.adminUsername = params.Config.Admin.Username
		gate.adminPassword = params.Config.Admin.Password
	}

	return gate
}

func (gate *accessGate) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, gate.logger)
}

// IsAdmin reports whether principal is the configured administrator. The
// configured secret is checked against the stored hash each time, so a
// rotated password or a swapped account is noticed immediately.
func (gate *accessGate) IsAdmin(ctx context.Context, principal entity.Principal) bool {
	if gate.adminUsername == "" || gate.adminPassword == "" {
		return false
	}
	if principal.Username != gate.adminUsername {
		return false
	}

	user, err := gate.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			gate.log(ctx).Error("Failed to load principal for admin check", slog.Any("userID", principal.UserID), slog.Any("error", err))
		}

		return false
	}
	if user.Username != gate.adminUsername {
		return false
	}

	auth, err := gate.authRepo.FindAuthenticationByUserID(ctx, user.ID, entity.ProviderTypePassword)
	if err != nil {
		if !errors.Is(err, repository.ErrAuthNotFound) {
			gate.log(ctx).Error("Failed to load admin credential", slog.Any("userID", user.ID), slog.Any("error", err))
		}

		return false
	}

	return gate.hasher.Check(gate.adminPassword, auth.PasswordHash)
}

// RequireAdmin returns a wrapped ErrAccessDenied unless principal is the administrator.
func (gate *accessGate) RequireAdmin(ctx context.Context, principal entity.Principal) error {
	if gate.IsAdmin(ctx, principal) {
		return nil
	}

	gate.log(ctx).Warn("Admin access denied", slog.Any("userID", principal.UserID), slog.String("username", principal.Username))

	return errors.Wrap(domainerrors.ErrAccessDenied, "admin privileges required")
}
