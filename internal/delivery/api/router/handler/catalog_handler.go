package handler

import (
	"log/slog"
	"strconv"
	"strings"

	"sweets/internal/delivery/api/response"
	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	"sweets/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public catalog and its administration.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CategoryRequest is the body of POST /admin/categories.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// ProductDetailsResponse is the product page.
type ProductDetailsResponse struct {
	Product *entity.Product       `json:"product"`
	Rating  *entity.RatingSummary `json:"rating"`
	Reviews []*entity.Review      `json:"reviews"`
	Related []*entity.Product     `json:"related"`
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, categories)
}

// ListProducts lists available products, filtered by ?category_id= and ?q=.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	categoryID, err := optionalUUID(c.QueryParam("category_id"), "category_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.catalogUC.ListProducts(c.Request().Context(), &usecase.ProductQuery{
		CategoryID: categoryID,
		Search:     c.QueryParam("q"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	details, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, ProductDetailsResponse{
		Product: details.Product,
		Rating:  details.Rating,
		Reviews: details.Reviews,
		Related: details.Related,
	})
}

// ListAllProducts includes unavailable products.
func (h *CatalogHandler) ListAllProducts(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.catalogUC.ListAllProducts(c.Request().Context(), admin)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), admin, &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, category)
}

// CreateProduct takes a multipart form with an optional "image" file.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	files := newFormFiles(c)
	defer files.close()

	input, err := productInput(c, files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), admin, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

// UpdateProduct replaces every field; the image only when a new one is sent.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	files := newFormFiles(c)
	defer files.close()

	input, err := productInput(c, files)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), admin, productID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	admin, err := principal(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), admin, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Produto removido")
}

// productInput reads the product form. "available" defaults to true.
func productInput(c echo.Context, files *formFiles) (*usecase.ProductInput, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(c.FormValue("price")))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must be a decimal number")
	}

	available := true
	if raw := strings.TrimSpace(c.FormValue("available")); raw != "" {
		if available, err = strconv.ParseBool(raw); err != nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "available must be true or false")
		}
	}

	categoryID, err := optionalUUID(c.FormValue("category_id"), "category_id")
	if err != nil {
		return nil, err
	}

	image, err := files.get("image")
	if err != nil {
		return nil, err
	}

	return &usecase.ProductInput{
		CategoryID:  categoryID,
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		Available:   available,
		Image:       image,
	}, nil
}
