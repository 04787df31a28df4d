package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"catalog-backend/internal/domains/product"
	"catalog-backend/internal/shared/response"
)

// ProductHandler maps the HTTP surface onto the product service. It is
// stateless and safe for concurrent use; every parse failure turns into
// a 400 before the service is touched.
type ProductHandler struct {
	service product.Service
}

func NewProductHandler(service product.Service) *ProductHandler {
	return &ProductHandler{service: service}
}

// requiredQuery returns the named query parameter, writing a 400 when
// the parameter is absent. An empty value is allowed; substring filters
// treat it as match-all.
func requiredQuery(c *gin.Context, name string) (string, bool) {
	value, ok := c.GetQuery(name)
	if !ok {
		response.BadRequest(c, "query parameter '"+name+"' is required")
		return "", false
	}
	return value, true
}

// decimalQuery parses the named query parameter as a decimal number.
func decimalQuery(c *gin.Context, name string) (decimal.Decimal, bool) {
	raw, ok := requiredQuery(c, name)
	if !ok {
		return decimal.Decimal{}, false
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		response.BadRequest(c, "query parameter '"+name+"' must be a number")
		return decimal.Decimal{}, false
	}
	return value, true
}

// int64Query parses the named query parameter as a 64-bit integer.
func int64Query(c *gin.Context, name string) (int64, bool) {
	raw, ok := requiredQuery(c, name)
	if !ok {
		return 0, false
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.BadRequest(c, "query parameter '"+name+"' must be a 64-bit integer")
		return 0, false
	}
	return value, true
}

// idParam parses the :id path parameter.
func idParam(c *gin.Context, name string) (int64, bool) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "path parameter '"+name+"' must be a 64-bit integer")
		return 0, false
	}
	return value, true
}

func (h *ProductHandler) fail(c *gin.Context, err error) {
	status, message := product.GetErrorResponse(err)
	response.Error(c, status, message)
}

// Create handles POST /products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req product.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	result, err := h.service.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, result)
}

// GetAll handles GET /products.
func (h *ProductHandler) GetAll(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, products)
}

// GetPaginated handles GET /products/paginated?page&size&sort.
func (h *ProductHandler) GetPaginated(c *gin.Context) {
	page := 0
	size := 10

	if raw := c.Query("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 0 {
			response.BadRequest(c, "page must be a non-negative integer")
			return
		}
		page = p
	}

	if raw := c.Query("size"); raw != "" {
		s, err := strconv.Atoi(raw)
		if err != nil || s < 1 || s > 100 {
			response.BadRequest(c, "size must be an integer between 1 and 100")
			return
		}
		size = s
	}

	sort, err := product.ParseSort(c.Query("sort"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	products, err := h.service.ListProductsPaginated(c.Request.Context(), page, size, sort)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, products)
}

// GetByID handles GET /products/:id.
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	result, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// GetByName handles GET /products/by-name?name.
func (h *ProductHandler) GetByName(c *gin.Context) {
	name, ok := requiredQuery(c, "name")
	if !ok {
		return
	}

	products, err := h.service.FindByName(c.Request.Context(), name)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, products)
}

// GetByPriceGreaterThan handles GET /products/price-gt/:price.
func (h *ProductHandler) GetByPriceGreaterThan(c *gin.Context) {
	price, err := decimal.NewFromString(c.Param("price"))
	if err != nil {
		response.BadRequest(c, "path parameter 'price' must be a number")
		return
	}

	products, err := h.service.FindByPriceGreaterThan(c.Request.Context(), price)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, products)
}

// GetByCategoryName handles GET /products/by-category-name?categoryName.
// Each returned product carries its full category.
func (h *ProductHandler) GetByCategoryName(c *gin.Context) {
	categoryName, ok := requiredQuery(c, "categoryName")
	if !ok {
		return
	}

	products, err := h.service.FindByCategoryName(c.Request.Context(), categoryName)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, products)
}

// GetByCategoryID handles GET /products/by-category-id/:categoryId.
func (h *ProductHandler) GetByCategoryID(c *gin.Context) {
	categoryID, ok := idParam(c, "categoryId")
	if !ok {
		return
	}

	products, err := h.service.FindByCategoryID(c.Request.Context(), categoryID)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, products)
}

// FilterByPriceAndCategory handles
// GET /products/filter-by-price-and-category?price&categoryName.
func (h *ProductHandler) FilterByPriceAndCategory(c *gin.Context) {
	price, ok := decimalQuery(c, "price")
	if !ok {
		return
	}
	categoryName, ok := requiredQuery(c, "categoryName")
	if !ok {
		return
	}

	products, err := h.service.FindByPriceLessThanAndCategoryName(c.Request.Context(), price, categoryName)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, products)
}

// GetDetailsByCategoryName handles
// GET /products/details-by-category-name?categoryName. Each entry is
// the [name, price, categoryName] tuple.
func (h *ProductHandler) GetDetailsByCategoryName(c *gin.Context) {
	categoryName, ok := requiredQuery(c, "categoryName")
	if !ok {
		return
	}

	details, err := h.service.FindDetailsByCategoryName(c.Request.Context(), categoryName)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, details)
}

// Search handles GET /products/search?productNamePart&categoryDescPart.
func (h *ProductHandler) Search(c *gin.Context) {
	namePart, ok := requiredQuery(c, "productNamePart")
	if !ok {
		return
	}
	descPart, ok := requiredQuery(c, "categoryDescPart")
	if !ok {
		return
	}

	products, err := h.service.FindByNamePartAndCategoryDescription(c.Request.Context(), namePart, descPart)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, products)
}

// GetByPriceRangeAndCategory handles
// GET /products/price-range-and-category?minPrice&maxPrice&categoryId.
func (h *ProductHandler) GetByPriceRangeAndCategory(c *gin.Context) {
	minPrice, ok := decimalQuery(c, "minPrice")
	if !ok {
		return
	}
	maxPrice, ok := decimalQuery(c, "maxPrice")
	if !ok {
		return
	}
	categoryID, ok := int64Query(c, "categoryId")
	if !ok {
		return
	}

	products, err := h.service.FindByPriceRangeAndCategoryID(c.Request.Context(), minPrice, maxPrice, categoryID)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, products)
}

// GetSummariesByCategoryName handles
// GET /products/by-category-name-native?categoryName.
func (h *ProductHandler) GetSummariesByCategoryName(c *gin.Context) {
	categoryName, ok := requiredQuery(c, "categoryName")
	if !ok {
		return
	}

	summaries, err := h.service.FindSummaryByCategoryName(c.Request.Context(), categoryName)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, summaries)
}

// Update handles PUT /products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req product.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	result, err := h.service.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	response.NoContent(c)
}
