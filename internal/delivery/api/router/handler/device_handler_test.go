package handler

import (
	"net/http"
	"testing"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	mockUsecase "sweets/internal/mocks/usecase"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	tests := []struct {
		name       string
		body       RegisterDeviceRequest
		setup      func(uc *mockUsecase.MockDeviceUsecase, userID uuid.UUID)
		wantStatus int
		wantCode   string
	}{
		{
			name: "registers",
			body: RegisterDeviceRequest{FCMToken: "fcm-1", DeviceID: "pixel-7", Platform: "android"},
			setup: func(uc *mockUsecase.MockDeviceUsecase, userID uuid.UUID) {
				uc.EXPECT().
					RegisterDevice(mock.Anything, userID, &usecase.DeviceInfo{FCMToken: "fcm-1", DeviceID: "pixel-7", Platform: "android"}).
					Return(&entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "pixel-7"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown platform",
			body:       RegisterDeviceRequest{FCMToken: "fcm-1", DeviceID: "tv", Platform: "tizen"},
			setup:      func(*mockUsecase.MockDeviceUsecase, uuid.UUID) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "device owned by someone else",
			body: RegisterDeviceRequest{FCMToken: "fcm-1", DeviceID: "pixel-7", Platform: "android"},
			setup: func(uc *mockUsecase.MockDeviceUsecase, userID uuid.UUID) {
				uc.EXPECT().RegisterDevice(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrDeviceOwnershipViolation)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "DEVICE_OWNERSHIP_VIOLATION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deviceUC := mockUsecase.NewMockDeviceUsecase(t)
			h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: newDiscardLogger()})
			caller := customerPrincipal()
			tt.setup(deviceUC, caller.UserID)

			e := newTestEcho()
			e.POST("/devices", h.RegisterDevice, asCaller(caller))

			rec := serve(e, newJSONRequest(t, http.MethodPost, "/devices", tt.body))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			}
		})
	}
}
