package handler

import (
	"io"
	"net/http"
	"testing"

	"sweets/internal/domain/entity"
	domainerrors "sweets/internal/domain/errors"
	mockUsecase "sweets/internal/mocks/usecase"
	"sweets/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogHandlerForTest(t *testing.T) (*CatalogHandler, *mockUsecase.MockCatalogUsecase) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)

	return NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()}), catalogUC
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	t.Run("passes the category and search filters", func(t *testing.T) {
		h, catalogUC := newCatalogHandlerForTest(t)
		categoryID := uuid.New()
		e := newTestEcho()
		e.GET("/catalog/products", h.ListProducts)

		catalogUC.EXPECT().
			ListProducts(mock.Anything, mock.MatchedBy(func(query *usecase.ProductQuery) bool {
				return query.CategoryID != nil && *query.CategoryID == categoryID && query.Search == "chocolate"
			})).
			Return([]*entity.Product{{ID: uuid.New(), Name: "Bolo de chocolate", Available: true}}, nil)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/catalog/products?category_id="+categoryID.String()+"&q=chocolate", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got []entity.Product
		decodeData(t, rec, &got)
		require.Len(t, got, 1)
		assert.Equal(t, "Bolo de chocolate", got[0].Name)
	})

	t.Run("no filters", func(t *testing.T) {
		h, catalogUC := newCatalogHandlerForTest(t)
		e := newTestEcho()
		e.GET("/catalog/products", h.ListProducts)

		catalogUC.EXPECT().
			ListProducts(mock.Anything, &usecase.ProductQuery{}).
			Return([]*entity.Product{}, nil)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/catalog/products", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed category id", func(t *testing.T) {
		h, _ := newCatalogHandlerForTest(t)
		e := newTestEcho()
		e.GET("/catalog/products", h.ListProducts)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/catalog/products?category_id=bolos", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	t.Run("product page", func(t *testing.T) {
		h, catalogUC := newCatalogHandlerForTest(t)
		productID := uuid.New()
		e := newTestEcho()
		e.GET("/catalog/products/:id", h.GetProduct)

		catalogUC.EXPECT().GetProduct(mock.Anything, productID).Return(&usecase.ProductDetails{
			Product: &entity.Product{ID: productID, Name: "Pastel de nata", Price: decimal.RequireFromString("1.5")},
			Rating:  &entity.RatingSummary{Average: 4.5, Count: 2},
			Reviews: []*entity.Review{{ID: uuid.New(), ProductID: productID, Stars: 5}, {ID: uuid.New(), ProductID: productID, Stars: 4}},
			Related: []*entity.Product{{ID: uuid.New(), Name: "Queijada"}},
		}, nil)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/catalog/products/"+productID.String(), nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got ProductDetailsResponse
		decodeData(t, rec, &got)
		assert.Equal(t, productID, got.Product.ID)
		assert.InDelta(t, 4.5, got.Rating.Average, 0.001)
		assert.Equal(t, int64(2), got.Rating.Count)
		assert.Len(t, got.Reviews, 2)
		require.Len(t, got.Related, 1)
		assert.Equal(t, "Queijada", got.Related[0].Name)
	})

	t.Run("unknown product", func(t *testing.T) {
		h, catalogUC := newCatalogHandlerForTest(t)
		productID := uuid.New()
		e := newTestEcho()
		e.GET("/catalog/products/:id", h.GetProduct)

		catalogUC.EXPECT().GetProduct(mock.Anything, productID).Return(nil, domainerrors.ErrProductNotFound)

		rec := serve(e, newJSONRequest(t, http.MethodGet, "/catalog/products/"+productID.String(), nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", errorCode(t, rec))
	})
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	t.Run("multipart form with image", func(t *testing.T) {
		h, catalogUC := newCatalogHandlerForTest(t)
		admin := adminPrincipal()
		categoryID := uuid.New()
		e := newTestEcho()
		e.POST("/admin/products", h.CreateProduct, asCaller(admin))

		var image []byte
		catalogUC.EXPECT().
			CreateProduct(mock.Anything, admin, mock.MatchedBy(func(input *usecase.ProductInput) bool {
				if input.Image == nil {
					return false
				}
				if image == nil {
					image, _ = io.ReadAll(input.Image.Content)
				}

				return input.Name == "Bolo de laranja" &&
					input.Price.Equal(decimal.RequireFromString("12.50")) &&
					!input.Available &&
					input.CategoryID != nil && *input.CategoryID == categoryID &&
					input.Image.Filename == "image.png"
			})).
			Return(&entity.Product{ID: uuid.New(), Name: "Bolo de laranja"}, nil)

		req := newMultipartRequest(t, http.MethodPost, "/admin/products",
			map[string]string{
				"name":        "Bolo de laranja",
				"price":       "12.50",
				"available":   "false",
				"category_id": categoryID.String(),
			},
			map[string][]byte{"image": tinyPNG},
		)
		rec := serve(e, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, tinyPNG, image)
	})

	t.Run("available defaults to true without an image", func(t *testing.T) {
		h, catalogUC := newCatalogHandlerForTest(t)
		admin := adminPrincipal()
		e := newTestEcho()
		e.POST("/admin/products", h.CreateProduct, asCaller(admin))

		catalogUC.EXPECT().
			CreateProduct(mock.Anything, admin, mock.MatchedBy(func(input *usecase.ProductInput) bool {
				return input.Available && input.Image == nil && input.CategoryID == nil
			})).
			Return(&entity.Product{ID: uuid.New()}, nil)

		req := newMultipartRequest(t, http.MethodPost, "/admin/products", map[string]string{"name": "Queijada", "price": "2"}, nil)
		rec := serve(e, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	for name, fields := range map[string]map[string]string{
		"price is not a number":   {"name": "Queijada", "price": "dois"},
		"available is not a bool": {"name": "Queijada", "price": "2", "available": "talvez"},
	} {
		t.Run(name, func(t *testing.T) {
			h, _ := newCatalogHandlerForTest(t)
			e := newTestEcho()
			e.POST("/admin/products", h.CreateProduct, asCaller(adminPrincipal()))

			rec := serve(e, newMultipartRequest(t, http.MethodPost, "/admin/products", fields, nil))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
		})
	}
}

func TestCatalogHandler_CreateCategory(t *testing.T) {
	h, catalogUC := newCatalogHandlerForTest(t)
	admin := adminPrincipal()
	e := newTestEcho()
	e.POST("/admin/categories", h.CreateCategory, asCaller(admin))

	catalogUC.EXPECT().
		CreateCategory(mock.Anything, admin, &usecase.CategoryInput{Name: "Bolos"}).
		Return(&entity.Category{ID: uuid.New(), Name: "Bolos"}, nil)

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/admin/categories", CategoryRequest{Name: "Bolos"}))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(e, newJSONRequest(t, http.MethodPost, "/admin/categories", CategoryRequest{}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestCatalogHandler_DeleteProduct(t *testing.T) {
	t.Run("acknowledges", func(t *testing.T) {
		h, catalogUC := newCatalogHandlerForTest(t)
		admin := adminPrincipal()
		productID := uuid.New()
		e := newTestEcho()
		e.DELETE("/admin/products/:id", h.DeleteProduct, asCaller(admin))

		catalogUC.EXPECT().DeleteProduct(mock.Anything, admin, productID).Return(nil)

		rec := serve(e, newJSONRequest(t, http.MethodDelete, "/admin/products/"+productID.String(), nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Produto removido")
	})

	t.Run("gate refusal", func(t *testing.T) {
		h, catalogUC := newCatalogHandlerForTest(t)
		caller := customerPrincipal()
		productID := uuid.New()
		e := newTestEcho()
		e.DELETE("/admin/products/:id", h.DeleteProduct, asCaller(caller))

		catalogUC.EXPECT().DeleteProduct(mock.Anything, caller, productID).Return(domainerrors.ErrAccessDenied)

		rec := serve(e, newJSONRequest(t, http.MethodDelete, "/admin/products/"+productID.String(), nil))

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "ACCESS_DENIED", errorCode(t, rec))
	})
}
