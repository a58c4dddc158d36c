package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/pocket-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves store maintenance
type AdminHandler struct {
	views  Views
	logger coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(views Views, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		views:  views,
		logger: logger,
	}
}

// Recreate handles POST /admin/recreate
func (h *AdminHandler) Recreate(c *gin.Context) {
	if err := h.views.Recreate(c.Request.Context()); err != nil {
		h.logger.Error("Store recreate failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrStorage),
			Message: "Store could not be recreated",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
