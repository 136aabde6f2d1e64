package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"circuithub-backend/internal/domains/category/model"
	"circuithub-backend/internal/domains/category/service"
	"circuithub-backend/internal/shared/response"
)

type CategoryHandler struct {
	categoryService service.ServiceInterface
}

func NewCategoryHandler(categoryService service.ServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// Create creates a new category
// POST /api/v1/admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, category)
}

// List returns all categories ordered for display
// GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, categories)
}

// GetBySlug returns one category for the public category page
// GET /api/v1/categories/:slug
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	category, err := h.categoryService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, category)
}

// Update applies a partial update
// PUT /api/v1/admin/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req model.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, category)
}

// Delete removes a category with no tutorials
// DELETE /api/v1/admin/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// respondError maps domain errors to HTTP statuses. Anything outside the
// taxonomy is an infrastructure fault and surfaces as a generic 500.
func (h *CategoryHandler) respondError(c *gin.Context, err error) {
	var catErr *model.CategoryError
	if errors.As(err, &catErr) {
		switch {
		case errors.Is(err, model.ErrCategoryNotFound):
			response.ErrorResponse(c, http.StatusNotFound, catErr.Code, catErr.Message)
		case errors.Is(err, model.ErrSlugConflict), errors.Is(err, model.ErrHasTutorials):
			response.ErrorResponse(c, http.StatusConflict, catErr.Code, catErr.Message)
		case errors.Is(err, model.ErrInvalidInput):
			response.ErrorResponse(c, http.StatusBadRequest, catErr.Code, catErr.Message)
		default:
			response.InternalServerError(c, "Internal server error")
		}
		return
	}

	response.InternalServerError(c, "Internal server error")
}
