package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"circuithub-backend/internal/domains/comment/model"
	"circuithub-backend/internal/domains/comment/service"
	"circuithub-backend/internal/shared/response"
)

type CommentHandler struct {
	commentService service.ServiceInterface
}

func NewCommentHandler(commentService service.ServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create submits a public comment; it enters the moderation queue unapproved
// POST /api/v1/tutorials/:slug/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, comment)
}

// AdminCreate posts an admin comment; "approved": true publishes it right away
// POST /api/v1/admin/tutorials/:id/comments
func (h *CommentHandler) AdminCreate(c *gin.Context) {
	tutorialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tutorial ID")
		return
	}

	var req model.AdminCreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.CreateAdminReply(c.Request.Context(), tutorialID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, comment)
}

// ListForTutorial returns the approved comments on a tutorial
// GET /api/v1/tutorials/:slug/comments
func (h *CommentHandler) ListForTutorial(c *gin.Context) {
	comments, err := h.commentService.ListForTutorial(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comments)
}

// List returns the moderation queue, pending comments by default
// GET /api/v1/admin/comments?status=&tutorial_id=
func (h *CommentHandler) List(c *gin.Context) {
	var query model.ListCommentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comments, err := h.commentService.List(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comments)
}

// Approve marks a comment approved; repeating it is harmless
// PUT /api/v1/admin/comments/:id/approve
func (h *CommentHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	comment, err := h.commentService.Approve(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comment)
}

// Delete removes one comment without touching its replies
// DELETE /api/v1/admin/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// PendingCount reports how many comments are waiting for review
// GET /api/v1/admin/moderation/pending-count
func (h *CommentHandler) PendingCount(c *gin.Context) {
	count, err := h.commentService.CountPending(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"pending": count})
}

func (h *CommentHandler) respondError(c *gin.Context, err error) {
	var cmtErr *model.CommentError
	if errors.As(err, &cmtErr) {
		switch {
		case errors.Is(err, model.ErrCommentNotFound), errors.Is(err, model.ErrTutorialNotFound):
			response.ErrorResponse(c, http.StatusNotFound, cmtErr.Code, cmtErr.Message)
		case errors.Is(err, model.ErrParentNotFound),
			errors.Is(err, model.ErrParentMismatch),
			errors.Is(err, model.ErrInvalidInput):
			response.ErrorResponse(c, http.StatusBadRequest, cmtErr.Code, cmtErr.Message)
		default:
			response.InternalServerError(c, "Internal server error")
		}
		return
	}

	response.InternalServerError(c, "Internal server error")
}
