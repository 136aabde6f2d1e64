package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"circuithub-backend/internal/domains/tutorial/model"
	"circuithub-backend/internal/domains/tutorial/service"
	"circuithub-backend/internal/shared/response"
)

type TutorialHandler struct {
	tutorialService service.ServiceInterface
}

func NewTutorialHandler(tutorialService service.ServiceInterface) *TutorialHandler {
	return &TutorialHandler{tutorialService: tutorialService}
}

// Create creates a new tutorial
// POST /api/v1/admin/tutorials
func (h *TutorialHandler) Create(c *gin.Context) {
	var req model.CreateTutorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tutorial, err := h.tutorialService.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, tutorial)
}

// List returns published tutorials for the public site
// GET /api/v1/tutorials?category=&search=&tag=
func (h *TutorialHandler) List(c *gin.Context) {
	var query model.ListTutorialsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tutorials, err := h.tutorialService.List(c.Request.Context(), query, false)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, tutorials)
}

// AdminList returns all tutorials including drafts
// GET /api/v1/admin/tutorials?category=&search=&tag=
func (h *TutorialHandler) AdminList(c *gin.Context) {
	var query model.ListTutorialsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tutorials, err := h.tutorialService.List(c.Request.Context(), query, true)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, tutorials)
}

// GetBySlug returns one published tutorial
// GET /api/v1/tutorials/:slug
func (h *TutorialHandler) GetBySlug(c *gin.Context) {
	tutorial, err := h.tutorialService.GetBySlug(c.Request.Context(), c.Param("slug"), false)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, tutorial)
}

// AdminGet returns one tutorial by ID regardless of publication state
// GET /api/v1/admin/tutorials/:id
func (h *TutorialHandler) AdminGet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tutorial ID")
		return
	}

	tutorial, err := h.tutorialService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, tutorial)
}

// Update applies a partial update
// PUT /api/v1/admin/tutorials/:id
func (h *TutorialHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tutorial ID")
		return
	}

	var req model.UpdateTutorialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tutorial, err := h.tutorialService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, tutorial)
}

// Delete removes a tutorial
// DELETE /api/v1/admin/tutorials/:id
func (h *TutorialHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tutorial ID")
		return
	}

	if err := h.tutorialService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *TutorialHandler) respondError(c *gin.Context, err error) {
	var tutErr *model.TutorialError
	if errors.As(err, &tutErr) {
		switch {
		case errors.Is(err, model.ErrTutorialNotFound):
			response.ErrorResponse(c, http.StatusNotFound, tutErr.Code, tutErr.Message)
		case errors.Is(err, model.ErrSlugConflict):
			response.ErrorResponse(c, http.StatusConflict, tutErr.Code, tutErr.Message)
		case errors.Is(err, model.ErrInvalidCategory), errors.Is(err, model.ErrInvalidInput):
			response.ErrorResponse(c, http.StatusBadRequest, tutErr.Code, tutErr.Message)
		default:
			response.InternalServerError(c, "Internal server error")
		}
		return
	}

	response.InternalServerError(c, "Internal server error")
}
