package impl

import (
	"context"
	"testing"

	"sweets/config"
	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	mockRepo "sweets/internal/mocks/repository"
	mockSvc "sweets/internal/mocks/service"
	"sweets/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type accessGateFixtures struct {
	gate     usecase.AccessGate
	userRepo *mockRepo.MockUserRepository
	authRepo *mockRepo.MockAuthRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestAccessGate(t *testing.T, cfg *config.Config) accessGateFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return accessGateFixtures{
		gate: NewAccessGate(AccessGateParams{
			UserRepo: userRepo,
			AuthRepo: authRepo,
			Hasher:   hasher,
			Config:   cfg,
			Logger:   newDiscardLogger(),
		}),
		userRepo: userRepo,
		authRepo: authRepo,
		hasher:   hasher,
	}
}

func TestAccessGate_IsAdmin_VerifiedAgainstStorage(t *testing.T) {
	fx := createTestAccessGate(t, newTestConfig(0))

	ctx := context.Background()
	principal := adminPrincipal()

	fx.userRepo.EXPECT().
		FindByID(ctx, principal.UserID).
		Return(&entity.User{ID: principal.UserID, Username: testAdminUsername}, nil)
	fx.authRepo.EXPECT().
		FindAuthenticationByUserID(ctx, principal.UserID, entity.ProviderTypePassword).
		Return(&entity.Authentication{PasswordHash: "admin-hash"}, nil)
	fx.hasher.EXPECT().Check(testAdminPassword, "admin-hash").Return(true)

	assert.True(t, fx.gate.IsAdmin(ctx, principal))
	assert.NoError(t, fx.gate.RequireAdmin(ctx, principal))
}

func TestAccessGate_IsAdmin_CustomerUsername(t *testing.T) {
	fx := createTestAccessGate(t, newTestConfig(0))

	principal := customerPrincipal()

	assert.False(t, fx.gate.IsAdmin(context.Background(), principal))
	assert.ErrorIs(t, fx.gate.RequireAdmin(context.Background(), principal), domainerrors.ErrAccessDenied)
}

func TestAccessGate_IsAdmin_StalePasswordHash(t *testing.T) {
	fx := createTestAccessGate(t, newTestConfig(0))

	ctx := context.Background()
	principal := adminPrincipal()

	fx.userRepo.EXPECT().
		FindByID(ctx, principal.UserID).
		Return(&entity.User{ID: principal.UserID, Username: testAdminUsername}, nil)
	fx.authRepo.EXPECT().
		FindAuthenticationByUserID(ctx, principal.UserID, entity.ProviderTypePassword).
		Return(&entity.Authentication{PasswordHash: "old-hash"}, nil)
	fx.hasher.EXPECT().Check(testAdminPassword, "old-hash").Return(false)

	assert.False(t, fx.gate.IsAdmin(ctx, principal))
}

func TestAccessGate_IsAdmin_UnknownUser(t *testing.T) {
	fx := createTestAccessGate(t, newTestConfig(0))

	ctx := context.Background()
	principal := adminPrincipal()

	fx.userRepo.EXPECT().
		FindByID(ctx, principal.UserID).
		Return(nil, repository.ErrUserNotFound)

	assert.False(t, fx.gate.IsAdmin(ctx, principal))
}

func TestAccessGate_IsAdmin_NotConfigured(t *testing.T) {
	cfg := newTestConfig(0)
	cfg.Admin = &config.AdminConfig{}
	fx := createTestAccessGate(t, cfg)

	assert.False(t, fx.gate.IsAdmin(context.Background(), entity.Principal{Username: ""}))
}
