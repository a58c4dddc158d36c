package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	domainerr "github.com/amirhossein-jamali/pocket-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/live"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DefaultReadTimeout bounds how long a request waits for a view to load
const DefaultReadTimeout = 5 * time.Second

// Views hands out the view models bound to the current store. Handlers
// fetch them per request so a recreate takes effect immediately.
type Views interface {
	History() usecase.TransactionHistory
	Activity() usecase.ActivityLog
	Payments() usecase.PaymentUseCase
	Scanner() usecase.ScanUseCase
	Recreate(ctx context.Context) error
}

// await reads the current value of a cell, waiting for its first load
func await[T any](c *gin.Context, cell *live.Cell[T], timeout time.Duration) (T, bool) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	v, err := cell.Await(ctx)
	if err != nil {
		status := http.StatusServiceUnavailable
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrStorage),
			Message: "View not available",
		})
		return v, false
	}
	return v, true
}

// stream pushes every value of a cell to the client as server-sent events
// until the client goes away or the cell ends
func stream[T any](c *gin.Context, cell *live.Cell[T], render func(T) any) {
	sub := cell.Subscribe(c.Request.Context())

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(_ io.Writer) bool {
		v, ok := <-sub
		if !ok {
			return false
		}
		c.SSEvent("update", render(v))
		return true
	})
}

// errorStatus maps domain errors onto HTTP statuses
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrStoreClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Config tunes the handlers
type Config struct {
	ReadTimeout time.Duration
}
