// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"sweets/config"
	deliverycontext "sweets/internal/delivery/context"
	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	"sweets/internal/domain/service"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	gate              usecase.AccessGate
	adminUsername     string
	adminPassword     string
	maxActiveSessions int
	now               func() time.Time
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Gate             usecase.AccessGate
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	srv := &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		authRepo:         params.AuthRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		gate:             params.Gate,
		now:              time.Now,
		logger:           params.Logger,
	}
	if params.Config != nil {
		if params.Config.Auth != nil {
			srv.maxActiveSessions = params.Config.Auth.MaxActiveSessions
		}
		if params.Config.Admin != nil {
			srv.adminUsername = params.Config.Admin.Username
			srv.adminPassword = params.Config.Admin.Password
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a customer account together with its password credential.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	username := strings.TrimSpace(input.Username)
	srv.log(ctx).Info("Starting registration", slog.String("username", username))

	if username == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username is required")
	}
	if srv.adminUsername != "" && strings.EqualFold(username, srv.adminUsername) {
		srv.log(ctx).Warn("Registration with reserved username rejected", slog.String("username", username))

		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("username is reserved")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username: username,
		Email:    strings.TrimSpace(input.Email),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return createUserWithPassword(ctx, repoFactory, newUser, hashedPassword)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

func createUserWithPassword(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User, passwordHash string) error {
	if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	auth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypePassword,
		ProviderUserID: user.Username,
		PasswordHash:   passwordHash,
	}
	if err := repoFactory.AuthRepo().CreateAuthentication(ctx, auth); err != nil {
		return errors.Wrap(err, "failed to create authentication")
	}

	return nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := strings.TrimSpace(input.Username)
	srv.log(ctx).Debug("Starting user login", slog.String("username", username))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypePassword, username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", err))

		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// bcrypt is CPU-bound, keep it outside any transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	loggedInUser, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load login user")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID, loggedInUser.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistLoginRefreshToken(ctx, loggedInUser.ID, refreshTokenString, input.DeviceInfo); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

func (srv *userService) persistLoginRefreshToken(ctx context.Context, userID uuid.UUID, refreshTokenString, deviceInfo string) error {
	if srv.maxActiveSessions > 0 {
		// Lock, evict and insert in one short transaction so concurrent logins
		// of the same user cannot overshoot the cap.
		if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return srv.storeRefreshTokenWithEviction(ctx, repoFactory, userID, refreshTokenString, deviceInfo)
		}); err != nil {
			return errors.Wrap(err, "failed to execute user login transaction")
		}

		return nil
	}

	return srv.storeRefreshTokenWithRepo(ctx, srv.refreshTokenRepo, userID, refreshTokenString, deviceInfo)
}

// storeRefreshTokenWithEviction deletes the oldest sessions until there is room for a new one.
func (srv *userService) storeRefreshTokenWithEviction(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, refreshTokenString, deviceInfo string) error {
	refreshRepo := repoFactory.RefreshTokenRepo()

	if err := repoFactory.UserRepo().AcquireSessionMutex(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to lock user row for session limit check")
	}

	sessions, err := refreshRepo.FindRefreshTokensByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list active sessions")
	}

	for i := 0; len(sessions)-i >= srv.maxActiveSessions; i++ {
		if err := refreshRepo.DeleteRefreshToken(ctx, sessions[i].ID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return errors.Wrap(err, "failed to evict oldest session")
		}
		srv.log(ctx).Info("Evicted oldest session", slog.Any("userID", userID), slog.Any("tokenID", sessions[i].ID))
	}

	return srv.storeRefreshTokenWithRepo(ctx, refreshRepo, userID, refreshTokenString, deviceInfo)
}

func (srv *userService) storeRefreshTokenWithRepo(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshTokenString, deviceInfo string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:     userID,
		TokenHash:  srv.tokenService.HashToken(refreshTokenString),
		DeviceInfo: deviceInfo,
		ExpiresAt:  srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshToken issues a new access token using a refresh token.
// The refresh token remains unchanged.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "invalid refresh token")
	}

	if _, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token owner no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	newAccessToken, _, err := srv.tokenService.GenerateTokens(user.ID, user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: newAccessToken}, nil
}

// Logout ends the session of the given refresh token. Unknown tokens are ignored.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// An invalid token may still have a stored hash.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GetProfile returns the caller's account and whether it passes the access gate.
func (srv *userService) GetProfile(ctx context.Context, principal entity.Principal) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return &usecase.ProfileOutput{
		User:    user,
		IsAdmin: srv.gate.IsAdmin(ctx, principal),
	}, nil
}

// EnsureAdmin creates the configured administrator account when it is missing.
// An existing account is left as it is.
func (srv *userService) EnsureAdmin(ctx context.Context) error {
	if srv.adminUsername == "" || srv.adminPassword == "" {
		srv.log(ctx).Warn("Administrator credentials not configured, admin console disabled")

		return nil
	}

	existing, err := srv.userRepo.FindByUsername(ctx, srv.adminUsername)
	if err == nil {
		srv.log(ctx).Debug("Administrator account present", slog.Any("userID", existing.ID))

		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up administrator account")
	}

	hashedPassword, err := srv.hasher.Hash(srv.adminPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash administrator password")
	}

	admin := &entity.User{Username: srv.adminUsername}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return createUserWithPassword(ctx, repoFactory, admin, hashedPassword)
	})
	if err != nil {
		// Another instance created it first.
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil
		}

		return errors.Wrap(err, "failed to create administrator account")
	}
	srv.log(ctx).Info("Administrator account created", slog.Any("userID", admin.ID))

	return nil
}
