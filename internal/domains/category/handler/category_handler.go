package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/domains/category"
	"catalog-backend/internal/shared/response"
)

// CategoryHandler handles HTTP requests for the category domain.
type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request payload")
		return
	}

	result, err := h.service.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		status, message := category.GetErrorResponse(err)
		response.Error(c, status, message)
		return
	}

	response.JSON(c, http.StatusCreated, result)
}

// GetAll handles GET /categories.
func (h *CategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		status, message := category.GetErrorResponse(err)
		response.Error(c, status, message)
		return
	}

	response.JSON(c, http.StatusOK, categories)
}

// GetByID handles GET /categories/:id.
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id must be a 64-bit integer")
		return
	}

	result, err := h.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		status, message := category.GetErrorResponse(err)
		response.Error(c, status, message)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Delete handles DELETE /categories/:id. Deleting a category removes
// its products through the store-level cascade.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "id must be a 64-bit integer")
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		status, message := category.GetErrorResponse(err)
		response.Error(c, status, message)
		return
	}

	response.NoContent(c)
}
