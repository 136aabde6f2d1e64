package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"circuithub-backend/internal/shared/response"
	"circuithub-backend/pkg/logger"
)

// 5 MB is generous for a featured image.
const maxUploadBytes = 5 << 20

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// Storage is the slice of object storage the upload endpoint needs.
type Storage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type UploadHandler struct {
	storage Storage
}

func NewUploadHandler(storage Storage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload stores an admin-supplied image and returns its URL
// POST /api/v1/admin/uploads (multipart, field "file")
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file field is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.BadRequest(c, "file exceeds the 5MB limit")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		response.BadRequest(c, "only jpg, jpeg, png, gif, webp and svg files are accepted")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		response.BadRequest(c, "could not read uploaded file")
		return
	}
	if len(data) > maxUploadBytes {
		response.BadRequest(c, "file exceeds the 5MB limit")
		return
	}

	key := fmt.Sprintf("uploads/%s/%s%s", time.Now().UTC().Format("2006/01"), uuid.NewString(), ext)

	url, err := h.storage.Upload(c.Request.Context(), key, data, contentType)
	if err != nil {
		logger.Error("failed to store upload", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"url": url,
		"key": key,
	})
}
