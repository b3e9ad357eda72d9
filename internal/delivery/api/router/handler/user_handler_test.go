package handler

import (
	"net/http"
	"testing"
	"time"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	mockUsecase "sweets/internal/mocks/usecase"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserHandlerForTest(t *testing.T) (*UserHandler, *mockUsecase.MockUserUsecase) {
	userUC := mockUsecase.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()}), userUC
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("creates the account", func(t *testing.T) {
		h, userUC := newUserHandlerForTest(t)
		e := newTestEcho()
		e.POST("/auth/register", h.Register)

		user := &entity.User{ID: uuid.New(), Username: "maria"}
		userUC.EXPECT().
			RegisterUser(mock.Anything, &usecase.RegisterUserInput{Username: "maria", Password: "Doce-Segredo9"}).
			Return(&usecase.RegisterOutput{User: user}, nil)

		rec := serve(e, newJSONRequest(t, http.MethodPost, "/auth/register", RegisterRequest{
			Username: "maria",
			Password: "Doce-Segredo9",
		}))

		require.Equal(t, http.StatusCreated, rec.Code)
		var got entity.User
		decodeData(t, rec, &got)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "maria", got.Username)
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		h, _ := newUserHandlerForTest(t)
		e := newTestEcho()
		e.POST("/auth/register", h.Register)

		rec := serve(e, newJSONRequest(t, http.MethodPost, "/auth/register", map[string]string{
			"username": "ab",
			"email":    "not-an-email",
		}))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

		fields, ok := env.Error.Details.([]any)
		require.True(t, ok)
		assert.Len(t, fields, 3)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newUserHandlerForTest(t)
		e := newTestEcho()
		e.POST("/auth/register", h.Register)

		rec := serve(e, newJSONRequest(t, http.MethodPost, "/auth/register", "{"))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})

	t.Run("duplicate username", func(t *testing.T) {
		h, userUC := newUserHandlerForTest(t)
		e := newTestEcho()
		e.POST("/auth/register", h.Register)

		userUC.EXPECT().RegisterUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		rec := serve(e, newJSONRequest(t, http.MethodPost, "/auth/register", RegisterRequest{
			Username: "maria",
			Password: "Doce-Segredo9",
		}))

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", errorCode(t, rec))
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("passes the user agent as device info", func(t *testing.T) {
		h, userUC := newUserHandlerForTest(t)
		e := newTestEcho()
		e.POST("/auth/login", h.Login)

		userUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Username: "maria", Password: "secret", DeviceInfo: "doces-ios/2.1"}).
			Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", User: &entity.User{Username: "maria"}}, nil)

		req := newJSONRequest(t, http.MethodPost, "/auth/login", LoginRequest{Username: "maria", Password: "secret"})
		req.Header.Set("User-Agent", "doces-ios/2.1")
		rec := serve(e, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got LoginResponse
		decodeData(t, rec, &got)
		assert.Equal(t, "access", got.AccessToken)
		assert.Equal(t, "refresh", got.RefreshToken)
	})

	t.Run("wrong credentials are a 401 without details", func(t *testing.T) {
		h, userUC := newUserHandlerForTest(t)
		e := newTestEcho()
		e.POST("/auth/login", h.Login)

		userUC.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"))

		rec := serve(e, newJSONRequest(t, http.MethodPost, "/auth/login", LoginRequest{Username: "maria", Password: "nope"}))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})
}

func TestUserHandler_GetProfile(t *testing.T) {
	t.Run("requires a caller", func(t *testing.T) {
		h, _ := newUserHandlerForTest(t)
		e := newTestEcho()
		e.GET("/profile", h.GetProfile)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/profile", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", errorCode(t, rec))
	})

	t.Run("flags the administrator", func(t *testing.T) {
		h, userUC := newUserHandlerForTest(t)
		caller := adminPrincipal()
		e := newTestEcho()
		e.GET("/profile", h.GetProfile, asCaller(caller))

		userUC.EXPECT().GetProfile(mock.Anything, caller).
			Return(&usecase.ProfileOutput{User: &entity.User{ID: caller.UserID, Username: caller.Username}, IsAdmin: true}, nil)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/profile", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got ProfileResponse
		decodeData(t, rec, &got)
		assert.True(t, got.IsAdmin)
		assert.Equal(t, caller.UserID, got.User.ID)
	})
}

func TestUserHandler_Sessions(t *testing.T) {
	t.Run("lists sessions without token hashes", func(t *testing.T) {
		h, userUC := newUserHandlerForTest(t)
		caller := customerPrincipal()
		e := newTestEcho()
		e.GET("/sessions", h.ListSessions, asCaller(caller))

		session := &entity.RefreshToken{
			ID:         uuid.New(),
			UserID:     caller.UserID,
			TokenHash:  "hash",
			DeviceInfo: "firefox",
			ExpiresAt:  time.Now().Add(time.Hour),
		}
		userUC.EXPECT().GetActiveSessions(mock.Anything, caller.UserID).Return([]*entity.RefreshToken{session}, nil)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/sessions", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hash")
		var got []SessionResponse
		decodeData(t, rec, &got)
		require.Len(t, got, 1)
		assert.Equal(t, session.ID, got[0].ID)
		assert.Equal(t, "firefox", got[0].DeviceInfo)
	})

	t.Run("revoke rejects a malformed id", func(t *testing.T) {
		h, _ := newUserHandlerForTest(t)
		e := newTestEcho()
		e.DELETE("/sessions/:id", h.RevokeSession, asCaller(customerPrincipal()))

		rec := serve(e, newJSONRequest(t, http.MethodDelete, "/sessions/not-a-uuid", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})

	t.Run("revoke of a foreign session is denied", func(t *testing.T) {
		h, userUC := newUserHandlerForTest(t)
		caller := customerPrincipal()
		sessionID := uuid.New()
		e := newTestEcho()
		e.DELETE("/sessions/:id", h.RevokeSession, asCaller(caller))

		userUC.EXPECT().RevokeSession(mock.Anything, caller.UserID, sessionID).Return(domainerrors.ErrAccessDenied)

		rec := serve(e, newJSONRequest(t, http.MethodDelete, "/sessions/"+sessionID.String(), nil))

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "ACCESS_DENIED", errorCode(t, rec))
	})
}

func TestUserHandler_Logout(t *testing.T) {
	h, userUC := newUserHandlerForTest(t)
	e := newTestEcho()
	e.POST("/auth/logout", h.Logout)

	userUC.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "refresh"}).Return(nil)

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/auth/logout", RefreshTokenRequest{RefreshToken: "refresh"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sessão terminada")
}
