package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sweets/config"
	deliverycontext "sweets/internal/delivery/context"
	"sweets/internal/domain/constants"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/service"
	mockUsecase "sweets/internal/mocks/usecase"
	"sweets/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandlerForTest(t *testing.T) (*PushHandler, *mockUsecase.MockDispatchUsecase) {
	dispatchUC := mockUsecase.NewMockDispatchUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}

	return NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		DispatchUC: dispatchUC,
	}), dispatchUC
}

func pushBody(t *testing.T, data string, attributes map[string]string) []byte {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/doces/subscriptions/notifier"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return raw
}

func encodeEvent(t *testing.T, event *service.StorefrontEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func push(h *PushHandler, body []byte) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.StorefrontEvent{
		Type:        service.EventPaymentApproved,
		RecipientID: "5b0b3a58-4f0f-4a4a-9a57-2b1f8e0c1d11",
		SubjectID:   "order-1",
		Status:      "approved",
	}

	t.Run("dispatches and acknowledges", func(t *testing.T) {
		h, dispatchUC := newPushHandlerForTest(t)
		dispatchUC.EXPECT().
			Dispatch(mock.MatchedBy(func(ctx context.Context) bool {
				return deliverycontext.GetRequestIDFromContext(ctx) == "req-42"
			}), event).
			Return(&usecase.DispatchResult{Sent: 2}, nil)

		rec := push(h, pushBody(t, encodeEvent(t, event), map[string]string{"request_id": "req-42"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undeliverable events are acknowledged", func(t *testing.T) {
		h, dispatchUC := newPushHandlerForTest(t)
		dispatchUC.EXPECT().Dispatch(mock.Anything, event).
			Return(nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown event type"))

		rec := push(h, pushBody(t, encodeEvent(t, event), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("transient failures ask for redelivery", func(t *testing.T) {
		h, dispatchUC := newPushHandlerForTest(t)
		dispatchUC.EXPECT().Dispatch(mock.Anything, event).Return(nil, errors.New("database is down"))

		rec := push(h, pushBody(t, encodeEvent(t, event), nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("data is not base64", func(t *testing.T) {
		h, _ := newPushHandlerForTest(t)

		rec := push(h, pushBody(t, "%%%", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("data is not an event", func(t *testing.T) {
		h, _ := newPushHandlerForTest(t)

		rec := push(h, pushBody(t, base64.StdEncoding.EncodeToString([]byte("not json")), nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_VerifiesTokenWhenEnabled(t *testing.T) {
	h, _ := newPushHandlerForTest(t)
	h.verifyPushAuth = true
	h.verifyToken = func(*http.Request) error { return errors.New("bad audience") }

	rec := push(h, pushBody(t, "", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
