package admin

import (
	"errors"
	"net/http"
	"strconv"

	"studiorental/internal/pkg/refcode"
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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:reference", h.GetBooking)
	rg.PATCH("/bookings/:reference/status", h.SetStatus)
}

func (h *Handler) ListBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.service.ListBookings(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetBooking(c *gin.Context) {
	// accept the display form too ("260831-EMW7"); reject garbage before
	// touching the store
	ref := c.Param("reference")
	if _, err := refcode.Parse(ref); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Malformed booking reference")
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), stripSeparator(ref))
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, gin.H{"booking": b})
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
	}
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err := h.service.SetBookingStatus(c.Request.Context(), stripSeparator(c.Param("reference")), req.Status)
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, gin.H{"reference": c.Param("reference"), "status": req.Status})
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking status")
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
	}
}

func stripSeparator(ref string) string {
	out := make([]byte, 0, len(ref))
	for i := 0; i < len(ref); i++ {
		if ref[i] != '-' {
			out = append(out, ref[i])
		}
	}
	return string(out)
}
