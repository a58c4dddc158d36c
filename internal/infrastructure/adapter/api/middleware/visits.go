package middleware

import (
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/usecase"
	"github.com/gin-gonic/gin"
)

// ActivitySource returns the audit log currently in use
type ActivitySource func() usecase.ActivityLog

// Visits records a visit event for every routed request, keyed by the route
// template rather than the concrete path. Requests that match no route are
// not recorded.
func Visits(activity ActivitySource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if route := c.FullPath(); route != "" {
			activity().LogEvent(entity.EventVisit, route)
		}
		c.Next()
	}
}
