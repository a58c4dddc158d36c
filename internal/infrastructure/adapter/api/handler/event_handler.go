package handler

import (
	"net/http"
	"time"

	domainerr "github.com/amirhossein-jamali/pocket-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// EventHandler serves the audit log
type EventHandler struct {
	views       Views
	logger      coreport.Logger
	readTimeout time.Duration
}

// NewEventHandler creates a new event handler instance
func NewEventHandler(views Views, logger coreport.Logger, readTimeout time.Duration) *EventHandler {
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}
	return &EventHandler{
		views:       views,
		logger:      logger,
		readTimeout: readTimeout,
	}
}

// Log handles POST /events
func (h *EventHandler) Log(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid event format: " + err.Error(),
		})
		return
	}

	h.views.Activity().LogEvent(req.Type, req.Route)
	c.JSON(http.StatusAccepted, dto.AcceptedResponse{Accepted: true})
}

// List handles GET /events
func (h *EventHandler) List(c *gin.Context) {
	events, ok := await(c, h.views.Activity().Events(), h.readTimeout)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.FromEvents(events))
}

// Clear handles DELETE /events
func (h *EventHandler) Clear(c *gin.Context) {
	h.views.Activity().Clear()
	c.JSON(http.StatusAccepted, dto.AcceptedResponse{Accepted: true})
}
