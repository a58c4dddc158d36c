package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/api/dto"
	mockcore "github.com/amirhossein-jamali/pocket-wallet/mocks/port/core"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Recovers a panic and logs the route", func(t *testing.T) {
		logger := mockcore.NewMockLogger(t)
		logger.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["route"] == "/transactions/:id" &&
				fields["path"] == "/transactions/7" &&
				fields["error"] == "view gone" &&
				fields["request_id"] == "req-7"
		})).Once()

		router := gin.New()
		router.Use(RequestID(), ErrorHandler(logger))
		router.GET("/transactions/:id", func(*gin.Context) { panic("view gone") })

		req := httptest.NewRequest(http.MethodGet, "/transactions/7", nil)
		req.Header.Set(HeaderRequestID, "req-7")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 5000, body.Code)
	})

	t.Run("Passes through a healthy request", func(t *testing.T) {
		logger := mockcore.NewMockLogger(t)

		router := gin.New()
		router.Use(ErrorHandler(logger))
		router.GET("/scan", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/scan", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
