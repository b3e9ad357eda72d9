package auth

import (
	"testing"
	"time"

	"sweets/config"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)

	return jwtSvc
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID, "ana")
	require.NoError(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "ana", accessClaims.Username)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, userID.String(), accessClaims.Subject)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsTokenOfTheOtherKind(t *testing.T) {
	svc := newTestJWTService(t)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New(), "ana")
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t)

	claims, err := svc.ValidateAccessToken("clearly-not-a-jwt-token-format")

	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	accessToken, _, err := svc.GenerateTokens(uuid.New(), "ana")
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(defaultAccessTTL + time.Second) }
	_, err = svc.ValidateAccessToken(accessToken)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_HashTokenIsStable(t *testing.T) {
	svc := newTestJWTService(t)

	first := svc.HashToken("refresh-token")
	second := svc.HashToken("refresh-token")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, svc.HashToken("other-token"))
}

func TestJWTService_EmptySecrets(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_RefreshDuration(t *testing.T) {
	svc := newTestJWTService(t)

	assert.Equal(t, defaultRefreshTTL, svc.GetRefreshTokenDuration())
}
