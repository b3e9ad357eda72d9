package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "sweets/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantReuse bool
	}{
		{name: "reuses the caller's id", header: "req-123", wantReuse: true},
		{name: "generates one when missing"},
		{name: "replaces an oversized id", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromEcho, fromContext string
			var hasLogger bool
			e := echo.New()
			e.GET("/", func(c echo.Context) error {
				fromEcho = deliverycontext.GetRequestID(c)
				fromContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return c.NoContent(http.StatusNoContent)
			}, m.Process)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, fromEcho, fromContext)
			assert.Equal(t, fromEcho, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.True(t, hasLogger)
			if tt.wantReuse {
				assert.Equal(t, tt.header, fromEcho)
			} else {
				_, err := uuid.Parse(fromEcho)
				assert.NoError(t, err)
			}
		})
	}
}
