package handler

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/domain/service"
	mockSvc "sweets/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMediaHandler_Serve(t *testing.T) {
	t.Run("streams the stored object", func(t *testing.T) {
		storage := mockSvc.NewMockBlobStorage(t)
		h := NewMediaHandler(MediaHandlerParams{Storage: storage, Logger: newDiscardLogger()})
		e := newTestEcho()
		e.GET("/media/*", h.Serve, asCaller(customerPrincipal()))

		storage.EXPECT().Open(mock.Anything, "products/bolo.png").Return(&service.StoredObject{
			Content:     io.NopCloser(bytes.NewReader(tinyPNG)),
			ContentType: "image/png",
			Size:        int64(len(tinyPNG)),
		}, nil)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/media/products/bolo.png", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "8", rec.Header().Get(echo.HeaderContentLength))
		assert.Equal(t, tinyPNG, rec.Body.Bytes())
	})

	t.Run("unknown content type falls back to octet stream", func(t *testing.T) {
		storage := mockSvc.NewMockBlobStorage(t)
		h := NewMediaHandler(MediaHandlerParams{Storage: storage, Logger: newDiscardLogger()})
		e := newTestEcho()
		e.GET("/media/*", h.Serve, asCaller(customerPrincipal()))

		storage.EXPECT().Open(mock.Anything, "chat/blob").Return(&service.StoredObject{
			Content: io.NopCloser(bytes.NewReader([]byte("raw"))),
		}, nil)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/media/chat/blob", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, echo.MIMEOctetStream, rec.Header().Get(echo.HeaderContentType))
	})

	t.Run("missing key", func(t *testing.T) {
		storage := mockSvc.NewMockBlobStorage(t)
		h := NewMediaHandler(MediaHandlerParams{Storage: storage, Logger: newDiscardLogger()})
		e := newTestEcho()
		e.GET("/media/*", h.Serve, asCaller(customerPrincipal()))

		storage.EXPECT().Open(mock.Anything, "orders/missing.png").Return(nil, domainerrors.ErrMediaNotFound)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/media/orders/missing.png", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, domainerrors.ErrMediaNotFound.ErrorCode(), errorCode(t, rec))
	})
}
