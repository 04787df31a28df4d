package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/category"
	"catalog-backend/internal/domains/product"
)

// mockService implements product.Service with overridable function
// fields; unset methods return empty results.
type mockService struct {
	listPaginatedFn func(ctx context.Context, page, size int, sort product.SortOption) ([]product.Product, error)
	getFn           func(ctx context.Context, id int64) (*product.Product, error)
	byNameFn        func(ctx context.Context, name string) ([]product.Product, error)
	priceAndCatFn   func(ctx context.Context, price decimal.Decimal, categoryName string) ([]product.Product, error)
	detailsFn       func(ctx context.Context, categoryName string) ([]product.Detail, error)
	createFn        func(ctx context.Context, req *product.SaveRequest) (*product.Product, error)
	deleteFn        func(ctx context.Context, id int64) error
}

func (m *mockService) ListProducts(ctx context.Context) ([]product.Product, error) { return nil, nil }
func (m *mockService) ListProductsPaginated(ctx context.Context, page, size int, sort product.SortOption) ([]product.Product, error) {
	if m.listPaginatedFn != nil {
		return m.listPaginatedFn(ctx, page, size, sort)
	}
	return []product.Product{}, nil
}
func (m *mockService) GetProduct(ctx context.Context, id int64) (*product.Product, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, product.NewProductNotFound(id)
}
func (m *mockService) FindByName(ctx context.Context, name string) ([]product.Product, error) {
	if m.byNameFn != nil {
		return m.byNameFn(ctx, name)
	}
	return []product.Product{}, nil
}
func (m *mockService) FindByPriceGreaterThan(ctx context.Context, price decimal.Decimal) ([]product.Product, error) {
	return []product.Product{}, nil
}
func (m *mockService) FindByPriceBetween(ctx context.Context, min, max decimal.Decimal) ([]product.Product, error) {
	return []product.Product{}, nil
}
func (m *mockService) FindByNameContaining(ctx context.Context, keyword string) ([]product.Product, error) {
	return []product.Product{}, nil
}
func (m *mockService) FindByCategoryID(ctx context.Context, categoryID int64) ([]product.Product, error) {
	return []product.Product{}, nil
}
func (m *mockService) FindByCategoryName(ctx context.Context, categoryName string) ([]product.Product, error) {
	return []product.Product{}, nil
}
func (m *mockService) FindByPriceLessThanAndCategoryName(ctx context.Context, price decimal.Decimal, categoryName string) ([]product.Product, error) {
	if m.priceAndCatFn != nil {
		return m.priceAndCatFn(ctx, price, categoryName)
	}
	return []product.Product{}, nil
}
func (m *mockService) FindDetailsByCategoryName(ctx context.Context, categoryName string) ([]product.Detail, error) {
	if m.detailsFn != nil {
		return m.detailsFn(ctx, categoryName)
	}
	return []product.Detail{}, nil
}
func (m *mockService) FindByNamePartAndCategoryDescription(ctx context.Context, namePart, descPart string) ([]product.Product, error) {
	return []product.Product{}, nil
}
func (m *mockService) FindByPriceRangeAndCategoryID(ctx context.Context, min, max decimal.Decimal, categoryID int64) ([]product.Product, error) {
	return []product.Product{}, nil
}
func (m *mockService) FindSummaryByCategoryName(ctx context.Context, categoryName string) ([]product.Summary, error) {
	return []product.Summary{}, nil
}
func (m *mockService) CreateProduct(ctx context.Context, req *product.SaveRequest) (*product.Product, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return nil, product.NewInvalidProduct("not configured")
}
func (m *mockService) UpdateProduct(ctx context.Context, id int64, req *product.SaveRequest) (*product.Product, error) {
	return nil, product.NewProductNotFound(id)
}
func (m *mockService) DeleteProduct(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func newTestRouter(svc product.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProductHandler(svc)

	router := gin.New()
	products := router.Group("/api/products")
	{
		products.POST("", h.Create)
		products.GET("", h.GetAll)
		products.GET("/paginated", h.GetPaginated)
		products.GET("/by-name", h.GetByName)
		products.GET("/filter-by-price-and-category", h.FilterByPriceAndCategory)
		products.GET("/details-by-category-name", h.GetDetailsByCategoryName)
		products.GET("/:id", h.GetByID)
		products.DELETE("/:id", h.Delete)
	}
	return router
}

func doRequest(router *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetByID(t *testing.T) {
	decimal.MarshalJSONWithoutQuotes = true

	t.Run("found product carries its category", func(t *testing.T) {
		router := newTestRouter(&mockService{
			getFn: func(ctx context.Context, id int64) (*product.Product, error) {
				return &product.Product{
					ID:         id,
					Name:       "Smartphone",
					Price:      decimal.RequireFromString("699.99"),
					CategoryID: 1,
					Category:   &category.Category{ID: 1, Name: "Electronics"},
				}, nil
			},
		})

		rec := doRequest(router, http.MethodGet, "/api/products/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Smartphone", got["name"])
		require.Contains(t, got, "category")
		assert.Equal(t, "Electronics", got["category"].(map[string]interface{})["name"])
	})

	t.Run("missing product is 404", func(t *testing.T) {
		router := newTestRouter(&mockService{})

		rec := doRequest(router, http.MethodGet, "/api/products/42", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "error")
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		router := newTestRouter(&mockService{})

		rec := doRequest(router, http.MethodGet, "/api/products/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetPaginated(t *testing.T) {
	t.Run("defaults are page 0 size 10 sorted by id asc", func(t *testing.T) {
		var gotPage, gotSize int
		var gotSort product.SortOption
		router := newTestRouter(&mockService{
			listPaginatedFn: func(ctx context.Context, page, size int, sort product.SortOption) ([]product.Product, error) {
				gotPage, gotSize, gotSort = page, size, sort
				return []product.Product{}, nil
			},
		})

		rec := doRequest(router, http.MethodGet, "/api/products/paginated", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, gotPage)
		assert.Equal(t, 10, gotSize)
		assert.Equal(t, product.SortOption{Field: "id", Direction: "asc"}, gotSort)
	})

	t.Run("explicit sort is forwarded", func(t *testing.T) {
		var gotSort product.SortOption
		router := newTestRouter(&mockService{
			listPaginatedFn: func(ctx context.Context, page, size int, sort product.SortOption) ([]product.Product, error) {
				gotSort = sort
				return []product.Product{}, nil
			},
		})

		rec := doRequest(router, http.MethodGet, "/api/products/paginated?page=2&size=5&sort=price,desc", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, product.SortOption{Field: "price", Direction: "desc"}, gotSort)
	})

	t.Run("malformed sort is 400", func(t *testing.T) {
		router := newTestRouter(&mockService{})

		for _, sort := range []string{"price", "price,asc,extra", "bogus,asc", "price,sideways"} {
			rec := doRequest(router, http.MethodGet, "/api/products/paginated?sort="+sort, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "sort=%s", sort)
		}
	})

	t.Run("negative page is 400", func(t *testing.T) {
		router := newTestRouter(&mockService{})

		rec := doRequest(router, http.MethodGet, "/api/products/paginated?page=-1", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFilterByPriceAndCategory(t *testing.T) {
	t.Run("parameters are parsed and forwarded", func(t *testing.T) {
		var gotPrice decimal.Decimal
		var gotCategory string
		router := newTestRouter(&mockService{
			priceAndCatFn: func(ctx context.Context, price decimal.Decimal, categoryName string) ([]product.Product, error) {
				gotPrice, gotCategory = price, categoryName
				return []product.Product{{ID: 1, Name: "Smartphone"}}, nil
			},
		})

		rec := doRequest(router, http.MethodGet,
			"/api/products/filter-by-price-and-category?price=1000&categoryName=Electronics", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotPrice.Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, "Electronics", gotCategory)

		var got []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 1)
	})

	t.Run("missing price is 400", func(t *testing.T) {
		router := newTestRouter(&mockService{})

		rec := doRequest(router, http.MethodGet,
			"/api/products/filter-by-price-and-category?categoryName=Electronics", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric price is 400", func(t *testing.T) {
		router := newTestRouter(&mockService{})

		rec := doRequest(router, http.MethodGet,
			"/api/products/filter-by-price-and-category?price=cheap&categoryName=Electronics", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetByName(t *testing.T) {
	t.Run("empty name parameter is allowed", func(t *testing.T) {
		var gotName string
		called := false
		router := newTestRouter(&mockService{
			byNameFn: func(ctx context.Context, name string) ([]product.Product, error) {
				called = true
				gotName = name
				return []product.Product{}, nil
			},
		})

		rec := doRequest(router, http.MethodGet, "/api/products/by-name?name=", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
		assert.Equal(t, "", gotName)
	})

	t.Run("absent name parameter is 400", func(t *testing.T) {
		router := newTestRouter(&mockService{})

		rec := doRequest(router, http.MethodGet, "/api/products/by-name", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetDetailsByCategoryName(t *testing.T) {
	decimal.MarshalJSONWithoutQuotes = true

	router := newTestRouter(&mockService{
		detailsFn: func(ctx context.Context, categoryName string) ([]product.Detail, error) {
			return []product.Detail{
				{Name: "Java Programming", Price: decimal.RequireFromString("49.99"), CategoryName: "Books"},
			}, nil
		},
	})

	rec := doRequest(router, http.MethodGet, "/api/products/details-by-category-name?categoryName=Books", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[["Java Programming", 49.99, "Books"]]`, rec.Body.String())
}

func TestCreate(t *testing.T) {
	decimal.MarshalJSONWithoutQuotes = true

	t.Run("created product is echoed with 201", func(t *testing.T) {
		router := newTestRouter(&mockService{
			createFn: func(ctx context.Context, req *product.SaveRequest) (*product.Product, error) {
				return &product.Product{
					ID:         4,
					Name:       req.Name,
					Price:      *req.Price,
					CategoryID: req.Category.ID,
					Category:   &category.Category{ID: req.Category.ID, Name: "Electronics"},
				}, nil
			},
		})

		body := []byte(`{"name":"Tablet","price":300,"category":{"id":1}}`)
		rec := doRequest(router, http.MethodPost, "/api/products", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, float64(4), got["id"])
		assert.Equal(t, "Tablet", got["name"])
		assert.Contains(t, got, "category")
	})

	t.Run("duplicate name is 409", func(t *testing.T) {
		router := newTestRouter(&mockService{
			createFn: func(ctx context.Context, req *product.SaveRequest) (*product.Product, error) {
				return nil, product.NewProductNameAlreadyExists(req.Name)
			},
		})

		body := []byte(`{"name":"Smartphone","price":10,"category":{"id":1}}`)
		rec := doRequest(router, http.MethodPost, "/api/products", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown category is 400 and mentions the id", func(t *testing.T) {
		router := newTestRouter(&mockService{
			createFn: func(ctx context.Context, req *product.SaveRequest) (*product.Product, error) {
				return nil, product.NewUnknownCategory(req.Category.ID)
			},
		})

		body := []byte(`{"name":"Tablet","price":300,"category":{"id":9999}}`)
		rec := doRequest(router, http.MethodPost, "/api/products", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "9999")
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		router := newTestRouter(&mockService{})

		rec := doRequest(router, http.MethodPost, "/api/products", []byte(`{"name":`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDelete(t *testing.T) {
	t.Run("deleted product is 204 with empty body", func(t *testing.T) {
		router := newTestRouter(&mockService{})

		rec := doRequest(router, http.MethodDelete, "/api/products/1", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("missing product is 404", func(t *testing.T) {
		router := newTestRouter(&mockService{
			deleteFn: func(ctx context.Context, id int64) error {
				return product.NewProductNotFound(id)
			},
		})

		rec := doRequest(router, http.MethodDelete, "/api/products/42", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
