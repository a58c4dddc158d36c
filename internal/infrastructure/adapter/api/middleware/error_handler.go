package middleware

import (
	"fmt"
	"net/http"

	domainerr "github.com/amirhossein-jamali/pocket-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler turns a panicking handler into a 500 response. The log entry
// carries the matched route template next to the concrete path.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			logger.Error("Panic recovered in API request", map[string]any{
				"error":      fmt.Sprint(recovered),
				"route":      c.FullPath(),
				"path":       c.Request.URL.Path,
				"method":     c.Request.Method,
				"request_id": RequestIDFrom(c),
			})

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
				Message: "Internal server error",
			})
		}()

		c.Next()
	}
}
