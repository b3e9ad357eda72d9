package handler

import (
	"net/http"
	"testing"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	mockUsecase "sweets/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newComplaintHandlerForTest(t *testing.T) (*ComplaintHandler, *mockUsecase.MockComplaintUsecase) {
	complaintUC := mockUsecase.NewMockComplaintUsecase(t)

	return NewComplaintHandler(ComplaintHandlerParams{ComplaintUC: complaintUC, Logger: newDiscardLogger()}), complaintUC
}

func TestComplaintHandler_Submit(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, complaintUC := newComplaintHandlerForTest(t)
		caller := customerPrincipal()
		e := newTestEcho()
		e.POST("/complaints", h.Submit, asCaller(caller))

		complaintUC.EXPECT().
			Submit(mock.Anything, caller.UserID, "Atraso", "O bolo chegou uma hora depois").
			Return(&entity.Complaint{ID: uuid.New(), CustomerID: caller.UserID, Status: entity.ComplaintStatusNew}, nil)

		rec := serve(e, newJSONRequest(t, http.MethodPost, "/complaints", ComplaintRequest{
			Subject: "Atraso",
			Message: "O bolo chegou uma hora depois",
		}))

		require.Equal(t, http.StatusCreated, rec.Code)
		var got entity.Complaint
		decodeData(t, rec, &got)
		assert.Equal(t, entity.ComplaintStatusNew, got.Status)
	})

	t.Run("subject and message are required", func(t *testing.T) {
		h, _ := newComplaintHandlerForTest(t)
		e := newTestEcho()
		e.POST("/complaints", h.Submit, asCaller(customerPrincipal()))

		rec := serve(e, newJSONRequest(t, http.MethodPost, "/complaints", ComplaintRequest{}))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Len(t, env.Error.Details, 2)
	})
}

func TestComplaintHandler_ListAll(t *testing.T) {
	t.Run("status filter", func(t *testing.T) {
		h, complaintUC := newComplaintHandlerForTest(t)
		admin := adminPrincipal()
		e := newTestEcho()
		e.GET("/admin/complaints", h.ListAll, asCaller(admin))

		complaintUC.EXPECT().
			ListAll(mock.Anything, admin, mock.MatchedBy(func(status *entity.ComplaintStatus) bool {
				return status != nil && *status == entity.ComplaintStatusAnswered
			})).
			Return([]*entity.Complaint{}, nil)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/admin/complaints?status=answered", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no filter", func(t *testing.T) {
		h, complaintUC := newComplaintHandlerForTest(t)
		admin := adminPrincipal()
		e := newTestEcho()
		e.GET("/admin/complaints", h.ListAll, asCaller(admin))

		complaintUC.EXPECT().
			ListAll(mock.Anything, admin, (*entity.ComplaintStatus)(nil)).
			Return([]*entity.Complaint{}, nil)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/admin/complaints", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestComplaintHandler_Get(t *testing.T) {
	h, complaintUC := newComplaintHandlerForTest(t)
	admin := adminPrincipal()
	complaintID := uuid.New()
	e := newTestEcho()
	e.GET("/admin/complaints/:id", h.Get, asCaller(admin))

	complaintUC.EXPECT().Get(mock.Anything, admin, complaintID).Return(nil, domainerrors.ErrComplaintNotFound)

	rec := serve(e, newJSONRequest(t, http.MethodGet, "/admin/complaints/"+complaintID.String(), nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "COMPLAINT_NOT_FOUND", errorCode(t, rec))
}

func TestComplaintHandler_Respond(t *testing.T) {
	t.Run("answered", func(t *testing.T) {
		h, complaintUC := newComplaintHandlerForTest(t)
		admin := adminPrincipal()
		complaintID := uuid.New()
		e := newTestEcho()
		e.POST("/admin/complaints/:id/respond", h.Respond, asCaller(admin))

		complaintUC.EXPECT().
			Respond(mock.Anything, admin, complaintID, "Pedimos desculpa, oferecemos um desconto").
			Return(&entity.Complaint{ID: complaintID, Status: entity.ComplaintStatusAnswered, Response: "Pedimos desculpa, oferecemos um desconto"}, nil)

		rec := serve(e, newJSONRequest(t, http.MethodPost, "/admin/complaints/"+complaintID.String()+"/respond",
			RespondRequest{Response: "Pedimos desculpa, oferecemos um desconto"}))

		require.Equal(t, http.StatusOK, rec.Code)
		var got entity.Complaint
		decodeData(t, rec, &got)
		assert.Equal(t, entity.ComplaintStatusAnswered, got.Status)
	})

	t.Run("response is required", func(t *testing.T) {
		h, _ := newComplaintHandlerForTest(t)
		e := newTestEcho()
		e.POST("/admin/complaints/:id/respond", h.Respond, asCaller(adminPrincipal()))

		rec := serve(e, newJSONRequest(t, http.MethodPost, "/admin/complaints/"+uuid.NewString()+"/respond", RespondRequest{}))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})
}

func TestComplaintHandler_Resolve(t *testing.T) {
	h, complaintUC := newComplaintHandlerForTest(t)
	admin := adminPrincipal()
	complaintID := uuid.New()
	e := newTestEcho()
	e.POST("/admin/complaints/:id/resolve", h.Resolve, asCaller(admin))

	complaintUC.EXPECT().
		Resolve(mock.Anything, admin, complaintID).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidState, "complaint already resolved"))

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/admin/complaints/"+complaintID.String()+"/resolve", nil))

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATE", errorCode(t, rec))
}
