package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"sweets/internal/delivery/api/response"
	"sweets/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	Storage service.BlobStorage
	Logger  *slog.Logger
}

// MediaHandler streams stored uploads to signed-in users.
type MediaHandler struct {
	storage service.BlobStorage
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler.
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// Serve streams the blob named by the wildcard path.
func (h *MediaHandler) Serve(c echo.Context) error {
	object, err := h.storage.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer object.Content.Close()

	header := c.Response().Header()
	header.Set("Cache-Control", "private, max-age=86400")
	header.Set("X-Content-Type-Options", "nosniff")
	if object.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(object.Size, 10))
	}

	contentType := object.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, object.Content)
}
