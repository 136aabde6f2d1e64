package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"circuithub-backend/internal/domains/auth/model"
	"circuithub-backend/internal/domains/auth/service"
	"circuithub-backend/internal/shared/response"
)

type AuthHandler struct {
	authService service.ServiceInterface
}

func NewAuthHandler(authService service.ServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges admin credentials for a bearer token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			response.ErrorResponse(c, http.StatusUnauthorized, model.ErrCodeInvalidCredentials, "Invalid email or password")
			return
		}
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, result)
}
