package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"sweets/internal/delivery/api/middleware"
	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// principal returns the authenticated caller or ErrInvalidToken.
func principal(c echo.Context) (entity.Principal, error) {
	caller, ok := middleware.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, domainerrors.ErrInvalidToken
	}

	return caller, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid %s", name)
	}

	return id, nil
}

// optionalUUID parses raw when it is not blank.
func optionalUUID(raw string, name string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid %s", name)
	}

	return &id, nil
}

// bindAndValidate binds the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "malformed request body")
	}

	return c.Validate(req)
}

// formFiles opens multipart files and closes them once the handler is done.
type formFiles struct {
	c       echo.Context
	closers []io.Closer
}

func newFormFiles(c echo.Context) *formFiles {
	return &formFiles{c: c}
}

// get returns the named file, or nil when the field was not sent.
func (f *formFiles) get(field string) (*usecase.FileUpload, error) {
	header, err := f.c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unreadable file %s", field)
	}

	return f.open(field, header)
}

func (f *formFiles) open(field string, header *multipart.FileHeader) (*usecase.FileUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unreadable file %s", field)
	}
	f.closers = append(f.closers, file)

	return &usecase.FileUpload{Filename: header.Filename, Content: file}, nil
}

func (f *formFiles) close() {
	for _, closer := range f.closers {
		_ = closer.Close()
	}
}
