package auth

import (
	"errors"
	"net/http"

	"studiorental/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/login", h.Login)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	token, err := h.service.Login(req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token})
}
