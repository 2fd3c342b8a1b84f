package catalog

import (
	"errors"
	"net/http"

	"studiorental/internal/pkg/response"
	"studiorental/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public read endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", h.GetCatalog)
}

// RegisterAdminRoutes mounts the mutations; the caller wraps the group in
// the admin JWT middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/catalog/spaces", h.CreateSpace)
	rg.POST("/catalog/equipment", h.CreateEquipment)
	rg.POST("/catalog/props", h.CreateProp)
	rg.PATCH("/catalog/:kind/:id/availability", h.SetAvailability)
}

func (h *Handler) GetCatalog(c *gin.Context) {
	cat, err := h.service.GetCatalog(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load catalog")
		return
	}
	response.Success(c, http.StatusOK, cat)
}

func (h *Handler) CreateSpace(c *gin.Context) {
	var req CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	sp, err := h.service.CreateSpace(c.Request.Context(), req)
	switch {
	case err == nil:
		response.Success(c, http.StatusCreated, gin.H{"space": sp})
	case errors.Is(err, ErrDuplicateID):
		response.Error(c, http.StatusConflict, "DUPLICATE_ID", "Catalog item id already exists")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create space")
	}
}

func (h *Handler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	eq, err := h.service.CreateEquipment(c.Request.Context(), req)
	switch {
	case err == nil:
		response.Success(c, http.StatusCreated, gin.H{"equipment": eq})
	case errors.Is(err, ErrDuplicateID):
		response.Error(c, http.StatusConflict, "DUPLICATE_ID", "Catalog item id already exists")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create equipment")
	}
}

func (h *Handler) CreateProp(c *gin.Context) {
	var req CreatePropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	pr, err := h.service.CreateProp(c.Request.Context(), req)
	switch {
	case err == nil:
		response.Success(c, http.StatusCreated, gin.H{"prop": pr})
	case errors.Is(err, ErrDuplicateID):
		response.Error(c, http.StatusConflict, "DUPLICATE_ID", "Catalog item id already exists")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create prop")
	}
}

func (h *Handler) SetAvailability(c *gin.Context) {
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err := h.service.SetAvailability(c.Request.Context(), c.Param("kind"), c.Param("id"), *req.Available)
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "available": *req.Available})
	case errors.Is(err, ErrUnknownKind):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown catalog item kind")
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "ITEM_NOT_FOUND", "Catalog item not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update availability")
	}
}
