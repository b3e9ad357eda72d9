package impl

import (
	"context"
	"testing"
	"time"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/repository"
	"sweets/internal/domain/service"
	mockRepo "sweets/internal/mocks/repository"
	mockSvc "sweets/internal/mocks/service"
	mockUsecase "sweets/internal/mocks/usecase"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	gate             *mockUsecase.MockAccessGate
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	gate := mockUsecase.NewMockAccessGate(t)

	srv := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		AuthRepo:         authRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Gate:             gate,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})
	srv.(*userService).now = fixedClock

	return userServiceFixtures{
		service:          srv,
		txManager:        txManager,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		gate:             gate,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: " maria ",
		Email:    "maria@example.com",
		Password: "Password123!",
	}
	repos := newTxRepos(t)
	expectTransaction(fx.txManager, repos.factory)

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	userID := uuid.New()
	repos.users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)
	repos.auths.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.UserID == userID &&
				auth.Provider == entity.ProviderTypePassword &&
				auth.ProviderUserID == "maria" &&
				auth.PasswordHash == "hashed_password"
		})).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "maria", output.User.Username)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_RegisterUser_ReservedUsername(t *testing.T) {
	fx := createTestUserService(t, 0)

	output, err := fx.service.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Username: "ADMIN",
		Password: "Password123!",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	fx.hasher.EXPECT().ValidatePasswordStrength("short").Return(domainerrors.ErrPasswordStrength)

	_, err := fx.service.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Username: "maria",
		Password: "short",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestUserService_RegisterUser_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	repos := newTxRepos(t)
	expectTransaction(fx.txManager, repos.factory)

	fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil)
	repos.users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists)

	_, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{Username: "maria", Password: "Password123!"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "maria"}
	authRecord := &entity.Authentication{UserID: user.ID, PasswordHash: "hashed", Provider: entity.ProviderTypePassword}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypePassword, "maria").
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, "maria").Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == user.ID &&
				token.TokenHash == "refresh-hash" &&
				token.DeviceInfo == "curl/8" &&
				token.ExpiresAt.Equal(testNow.Add(24*time.Hour))
		})).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "maria", Password: "Password123!", DeviceInfo: "curl/8"})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypePassword, "ghost").
		Return(nil, repository.ErrAuthNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever"})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	authRecord := &entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypePassword, "maria").
		Return(authRecord, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "maria", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_EvictsOldestSessions(t *testing.T) {
	fx := createTestUserService(t, 2)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "maria"}
	oldest := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}
	newer := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypePassword, "maria").
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, "maria").Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)

	repos := newTxRepos(t)
	expectTransaction(fx.txManager, repos.factory)
	repos.users.EXPECT().AcquireSessionMutex(ctx, user.ID).Return(nil)
	repos.tokens.EXPECT().
		FindRefreshTokensByUserID(ctx, user.ID).
		Return([]*entity.RefreshToken{oldest, newer}, nil)
	repos.tokens.EXPECT().DeleteRefreshToken(ctx, oldest.ID).Return(nil)
	repos.tokens.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "maria", Password: "Password123!"})
	require.NoError(t, err)
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "maria"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh").
		Return(&service.Claims{UserID: user.ID, Username: "maria"}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(&entity.RefreshToken{ID: uuid.New(), UserID: user.ID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, "maria").Return("new-access", "unused", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestUserService_RefreshToken_Revoked(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh").
		Return(&service.Claims{UserID: uuid.New()}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_UnknownTokenIsIgnored(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("stale").
		Return(nil, domainerrors.ErrInvalidToken)
	fx.tokenService.EXPECT().HashToken("stale").Return("stale-hash")
	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "stale-hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "stale"})
	require.NoError(t, err)
}

func TestUserService_Logout_StorageError(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "hash").
		Return(errors.New("connection reset"))

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete refresh token")
}

func TestUserService_GetProfile(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	principal := customerPrincipal()
	user := &entity.User{ID: principal.UserID, Username: principal.Username}

	fx.userRepo.EXPECT().FindByID(ctx, principal.UserID).Return(user, nil)
	fx.gate.EXPECT().IsAdmin(ctx, principal).Return(false)

	output, err := fx.service.GetProfile(ctx, principal)
	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.False(t, output.IsAdmin)
}

func TestUserService_EnsureAdmin_CreatesMissingAccount(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	repos := newTxRepos(t)
	expectTransaction(fx.txManager, repos.factory)

	fx.userRepo.EXPECT().FindByUsername(ctx, testAdminUsername).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(testAdminPassword).Return("admin-hash", nil)
	repos.users.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool { return user.Username == testAdminUsername })).
		Return(nil)
	repos.auths.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool { return auth.PasswordHash == "admin-hash" })).
		Return(nil)

	require.NoError(t, fx.service.EnsureAdmin(ctx))
}

func TestUserService_EnsureAdmin_ExistingAccount(t *testing.T) {
	fx := createTestUserService(t, 0)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByUsername(ctx, testAdminUsername).
		Return(&entity.User{ID: uuid.New(), Username: testAdminUsername}, nil)

	require.NoError(t, fx.service.EnsureAdmin(ctx))
}

func TestUserService_RevokeSession(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	tokenID := uuid.New()

	tests := []struct {
		name    string
		token   *entity.RefreshToken
		findErr error
		wantErr error
	}{
		{name: "own session", token: &entity.RefreshToken{ID: tokenID, UserID: userID}},
		{name: "foreign session", token: &entity.RefreshToken{ID: tokenID, UserID: uuid.New()}, wantErr: domainerrors.ErrAccessDenied},
		{name: "missing session", findErr: repository.ErrRefreshTokenNotFound, wantErr: domainerrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t, 0)
			repos := newTxRepos(t)
			expectTransaction(fx.txManager, repos.factory)

			repos.tokens.EXPECT().FindRefreshTokenByID(ctx, tokenID).Return(tt.token, tt.findErr)
			if tt.wantErr == nil {
				repos.tokens.EXPECT().DeleteRefreshToken(ctx, tokenID).Return(nil)
			}

			err := fx.service.RevokeSession(ctx, userID, tokenID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}
