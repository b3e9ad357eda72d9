package handler

import (
	"net/http"
	"testing"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	mockUsecase "sweets/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminHandlerForTest(t *testing.T) (*AdminHandler, *mockUsecase.MockAdminUsecase) {
	adminUC := mockUsecase.NewMockAdminUsecase(t)

	return NewAdminHandler(AdminHandlerParams{AdminUC: adminUC, Logger: newDiscardLogger()}), adminUC
}

func TestAdminHandler_Dashboard(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		h, adminUC := newAdminHandlerForTest(t)
		admin := adminPrincipal()
		e := newTestEcho()
		e.GET("/admin/dashboard", h.Dashboard, asCaller(admin))

		recent := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}
		adminUC.EXPECT().Dashboard(mock.Anything, admin).Return(&entity.DashboardStats{
			Products:      12,
			Orders:        30,
			Customers:     8,
			PendingProofs: 2,
			Reviews:       15,
			RecentOrders:  []*entity.Order{recent},
		}, nil)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/admin/dashboard", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got entity.DashboardStats
		decodeData(t, rec, &got)
		assert.Equal(t, int64(2), got.PendingProofs)
		assert.Equal(t, int64(30), got.Orders)
		require.Len(t, got.RecentOrders, 1)
		assert.Equal(t, recent.ID, got.RecentOrders[0].ID)
	})

	t.Run("gate refusal", func(t *testing.T) {
		h, adminUC := newAdminHandlerForTest(t)
		caller := customerPrincipal()
		e := newTestEcho()
		e.GET("/admin/dashboard", h.Dashboard, asCaller(caller))

		adminUC.EXPECT().Dashboard(mock.Anything, caller).Return(nil, domainerrors.ErrAccessDenied)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/admin/dashboard", nil))

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "ACCESS_DENIED", errorCode(t, rec))
	})

	t.Run("no caller", func(t *testing.T) {
		h, _ := newAdminHandlerForTest(t)
		e := newTestEcho()
		e.GET("/admin/dashboard", h.Dashboard)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/admin/dashboard", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminHandler_Customers(t *testing.T) {
	h, adminUC := newAdminHandlerForTest(t)
	admin := adminPrincipal()
	e := newTestEcho()
	e.GET("/admin/customers", h.Customers, asCaller(admin))

	adminUC.EXPECT().Customers(mock.Anything, admin).Return([]*entity.CustomerStats{
		{UserID: uuid.New(), Username: "maria", OrderCount: 3, ReviewCount: 2, AverageStars: 4.5},
	}, nil)

	rec := serve(e, newJSONRequest(t, http.MethodGet, "/admin/customers", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []entity.CustomerStats
	decodeData(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "maria", got[0].Username)
	assert.Equal(t, int64(3), got[0].OrderCount)
	assert.InDelta(t, 4.5, got[0].AverageStars, 0.001)
}
