package wizard

import (
	"errors"
	"net/http"

	"studiorental/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.CreateSession)
	rg.GET("/sessions/:id", h.GetSession)
	rg.POST("/sessions/:id/advance", h.Advance)
	rg.POST("/sessions/:id/retreat", h.Retreat)
	rg.POST("/sessions/:id/spaces", h.ToggleSpace)
	rg.POST("/sessions/:id/equipment", h.ToggleEquipment)
	rg.POST("/sessions/:id/props", h.ToggleProp)
	rg.PUT("/sessions/:id/mode", h.SetMode)
	rg.PUT("/sessions/:id/date", h.SetDate)
	rg.POST("/sessions/:id/hours", h.ToggleHour)
	rg.PUT("/sessions/:id/contact", h.SetContact)
	rg.POST("/sessions/:id/submit", h.Submit)
	rg.GET("/sessions/:id/quotes", h.StreamQuotes)
}

func (h *Handler) CreateSession(c *gin.Context) {
	v, err := h.service.CreateSession(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, v)
}

func (h *Handler) GetSession(c *gin.Context) {
	v, err := h.service.GetSession(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) Advance(c *gin.Context) {
	v, err := h.service.Advance(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) Retreat(c *gin.Context) {
	v, err := h.service.Retreat(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) ToggleSpace(c *gin.Context) {
	h.toggleItem(c, h.service.ToggleSpace)
}

func (h *Handler) ToggleEquipment(c *gin.Context) {
	h.toggleItem(c, h.service.ToggleEquipment)
}

func (h *Handler) ToggleProp(c *gin.Context) {
	h.toggleItem(c, h.service.ToggleProp)
}

func (h *Handler) toggleItem(c *gin.Context, toggle func(sessionID, itemID string) (*SessionView, error)) {
	var req ToggleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	v, err := toggle(c.Param("id"), req.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) SetMode(c *gin.Context) {
	var req SetModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	v, err := h.service.SetMode(c.Param("id"), req.Mode)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) SetDate(c *gin.Context) {
	var req SetDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	v, err := h.service.SetDate(c.Param("id"), req.Date)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) ToggleHour(c *gin.Context) {
	var req ToggleHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	v, err := h.service.ToggleHour(c.Param("id"), *req.Hour)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) SetContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	v, err := h.service.SetContact(c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, v)
}

func (h *Handler) Submit(c *gin.Context) {
	conf, err := h.service.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"confirmation": conf})
}

// StreamQuotes upgrades to WebSocket and pushes the recomputed total after
// every change to the session.
func (h *Handler) StreamQuotes(c *gin.Context) {
	sessionID := c.Param("id")
	if _, err := h.service.GetSession(sessionID); err != nil {
		writeError(c, err)
		return
	}
	if err := h.hub.ServeWS(c.Writer, c.Request, sessionID); err != nil {
		// upgrade already wrote the response
		return
	}
}

func writeError(c *gin.Context, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Step validation failed", verr.Fields)
		return
	}

	switch {
	case errors.Is(err, ErrSessionNotFound):
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Session not found")
	case errors.Is(err, ErrUnknownItem):
		response.Error(c, http.StatusNotFound, "ITEM_NOT_FOUND", "Catalog item not found")
	case errors.Is(err, ErrSpaceUnavailable):
		response.Error(c, http.StatusConflict, "SPACE_UNAVAILABLE", "Space is not available for booking")
	case errors.Is(err, ErrInvalidHour), errors.Is(err, ErrInvalidMode), errors.Is(err, ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotAtContactStep):
		response.Error(c, http.StatusConflict, "INVALID_STEP", "Submission is only possible at the contact step")
	case errors.Is(err, ErrAlreadySubmitted):
		response.Error(c, http.StatusConflict, "ALREADY_SUBMITTED", "Session has already been submitted")
	case errors.Is(err, ErrSubmitInFlight):
		response.Error(c, http.StatusConflict, "SUBMIT_IN_FLIGHT", "A submission is already in progress")
	case errors.Is(err, ErrSubmissionFailed):
		response.Error(c, http.StatusBadGateway, "SUBMISSION_FAILED", "Booking could not be recorded, please retry")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
