package routes

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/live"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/usecase/scan"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/random"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/time"
)

const waitFor = 3 * time.Second

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	tp := timeprovider.NewRealTimeProvider()

	manager := database.NewManager(database.NewTestConfig(t.TempDir()), log, tp, repository.Builder(log, tp))
	executor := live.NewExecutor(log, 64, 0)
	session := wallet.NewSession(manager, executor, tp, random.NewRealRandomSource(), log, time.Second)
	require.NoError(t, session.Open(context.Background()))

	t.Cleanup(func() {
		session.Close()
		executor.Shutdown()
		_ = manager.Close()
	})

	return NewRouter(session, log, tp, handler.Config{ReadTimeout: 2 * time.Second})
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func listTransactions(t *testing.T, router http.Handler) []dto.TransactionResponse {
	w := do(t, router, http.MethodGet, "/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[[]dto.TransactionResponse](t, w)
}

func pay(t *testing.T, router http.Handler, name, amount string) dto.PaymentResponse {
	w := do(t, router, http.MethodPost, "/payments", dto.PaymentRequest{
		Name:   name,
		UpiID:  strings.ToLower(strings.ReplaceAll(name, " ", "")) + "@upi",
		Amount: amount,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[dto.PaymentResponse](t, w)
}

func TestPayments(t *testing.T) {
	t.Run("Recorded payment shows up in the history", func(t *testing.T) {
		router := newTestRouter(t)

		assert.Empty(t, listTransactions(t, router))

		resp := pay(t, router, "Jane Doe", "250")
		assert.Equal(t, "success", resp.NextRoute)
		assert.Equal(t, "Payment to Jane Doe", resp.Transaction.Description)
		assert.Equal(t, "Manual", resp.Transaction.PaymentSource)
		assert.Regexp(t, `^T\d{15}\d{3}$`, resp.Transaction.TransactionID)

		var listed []dto.TransactionResponse
		require.Eventually(t, func() bool {
			listed = listTransactions(t, router)
			return len(listed) == 1
		}, waitFor, 20*time.Millisecond)

		got := listed[0]
		assert.Equal(t, "Jane Doe", got.RecipientName)
		assert.Equal(t, "janedoe@upi", got.UpiID)
		assert.Equal(t, 250.0, got.Amount)
		assert.Equal(t, "₹250.00", got.FormattedAmount)
		assert.Equal(t, got.BankAccountLastFour+"   ₹250.00", got.DebitedFrom)
		assert.True(t, got.Debit)
		assert.Equal(t, resp.Transaction.TransactionID, got.TransactionID)
		assert.Positive(t, got.ID)
	})

	t.Run("Rejects an invalid amount", func(t *testing.T) {
		router := newTestRouter(t)

		for _, amount := range []string{"", "0", "abc"} {
			w := do(t, router, http.MethodPost, "/payments", dto.PaymentRequest{
				Name: "Jane Doe", UpiID: "jane@upi", Amount: amount,
			})
			assert.Equal(t, http.StatusBadRequest, w.Code, amount)
		}
	})

	t.Run("Rejects a malformed body", func(t *testing.T) {
		router := newTestRouter(t)
		w := do(t, router, http.MethodPost, "/payments", map[string]string{"amount": "10"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Decodes a payment route", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(t, router, http.MethodGet, "/payments/route?route=payment%2FJane%2BDoe%2Fjane%2540upi", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		route := decode[dto.PaymentRouteResponse](t, w)
		assert.Equal(t, "Jane Doe", route.Name)
		assert.Equal(t, "jane@upi", route.UpiID)

		w = do(t, router, http.MethodGet, "/payments/route?route=success", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTransactions(t *testing.T) {
	t.Run("Latest is absent on an empty store", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(t, router, http.MethodGet, "/transactions/latest", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, 4040, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("Latest follows the newest payment", func(t *testing.T) {
		router := newTestRouter(t)

		pay(t, router, "First", "10")
		require.Eventually(t, func() bool { return len(listTransactions(t, router)) == 1 }, waitFor, 20*time.Millisecond)
		pay(t, router, "Second", "20")

		require.Eventually(t, func() bool {
			w := do(t, router, http.MethodGet, "/transactions/latest", nil)
			return w.Code == http.StatusOK && decode[dto.TransactionResponse](t, w).RecipientName == "Second"
		}, waitFor, 20*time.Millisecond)

		listed := listTransactions(t, router)
		require.Len(t, listed, 2)
		assert.Equal(t, "Second", listed[0].RecipientName)
		assert.Equal(t, "First", listed[1].RecipientName)
	})

	t.Run("By id", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(t, router, http.MethodGet, "/transactions/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = do(t, router, http.MethodGet, "/transactions/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		pay(t, router, "Jane Doe", "250")
		var listed []dto.TransactionResponse
		require.Eventually(t, func() bool {
			listed = listTransactions(t, router)
			return len(listed) == 1
		}, waitFor, 20*time.Millisecond)

		w = do(t, router, http.MethodGet, "/transactions/"+jsonNumber(listed[0].ID), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, listed[0], decode[dto.TransactionResponse](t, w))
	})
}

func TestScan(t *testing.T) {
	t.Run("Payment code navigates once until reset", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(t, router, http.MethodPost, "/scan", dto.ScanRequest{Raw: "upi://pay?pa=merchant@bank&pn=Merchant%20One"})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.ScanResponse](t, w)
		assert.True(t, resp.Navigated)
		require.NotNil(t, resp.Intent)
		assert.Equal(t, "merchant@bank", resp.Intent.UpiID)
		assert.Equal(t, "Merchant One", resp.Intent.Name)
		assert.True(t, strings.HasPrefix(resp.Route, "payment/Merchant+One/merchant%40bank?qrData="))

		w = do(t, router, http.MethodPost, "/scan", dto.ScanRequest{Raw: "upi://pay?pa=other@bank"})
		assert.False(t, decode[dto.ScanResponse](t, w).Navigated)

		w = do(t, router, http.MethodDelete, "/scan", nil)
		assert.Equal(t, scan.StatusIdle, decode[dto.ScanResponse](t, w).Status)

		w = do(t, router, http.MethodPost, "/scan", dto.ScanRequest{Raw: "upi://pay?pa=other@bank"})
		assert.True(t, decode[dto.ScanResponse](t, w).Navigated)
	})

	t.Run("Code without an address does not navigate", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(t, router, http.MethodPost, "/scan", dto.ScanRequest{Raw: "upi://pay?pn=NoAddress"})
		resp := decode[dto.ScanResponse](t, w)
		assert.False(t, resp.Navigated)
		assert.Nil(t, resp.Intent)
		assert.Equal(t, "Scanned: upi://pay?pn=NoAddress", resp.Status)

		w = do(t, router, http.MethodGet, "/scan", nil)
		assert.Equal(t, resp.Status, decode[dto.ScanResponse](t, w).Status)
	})

	t.Run("Frame without a payment code", func(t *testing.T) {
		router := newTestRouter(t)

		w := do(t, router, http.MethodPost, "/scan", dto.ScanRequest{Candidates: []string{"https://example.com"}})
		assert.Equal(t, "Scanned: https://example.com", decode[dto.ScanResponse](t, w).Status)

		w = do(t, router, http.MethodPost, "/scan", dto.ScanRequest{Candidates: []string{}})
		assert.Equal(t, scan.StatusNoQR, decode[dto.ScanResponse](t, w).Status)
	})
}

func TestEvents(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/events", dto.EventRequest{Type: "action", Route: "home"})
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = do(t, router, http.MethodPost, "/events", map[string]string{"type": "action"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	hasRoute := func(events []dto.EventResponse, eventType, route string) bool {
		for _, e := range events {
			if e.Type == eventType && e.Route == route {
				return true
			}
		}
		return false
	}
	listEvents := func() []dto.EventResponse {
		w := do(t, router, http.MethodGet, "/events", nil)
		require.Equal(t, http.StatusOK, w.Code)
		return decode[[]dto.EventResponse](t, w)
	}

	require.Eventually(t, func() bool {
		events := listEvents()
		return hasRoute(events, "action", "home") && hasRoute(events, "visit", "/events")
	}, waitFor, 20*time.Millisecond)

	w = do(t, router, http.MethodDelete, "/events", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)

	require.Eventually(t, func() bool {
		return !hasRoute(listEvents(), "action", "home")
	}, waitFor, 20*time.Millisecond)
}

func TestTransactions_RecordOpenHistory(t *testing.T) {
	router := newTestRouter(t)

	listTransactions(t, router)

	require.Eventually(t, func() bool {
		w := do(t, router, http.MethodGet, "/events", nil)
		require.Equal(t, http.StatusOK, w.Code)
		for _, e := range decode[[]dto.EventResponse](t, w) {
			if e.Type == entity.EventAction && e.Route == entity.ActionOpenHistory {
				return true
			}
		}
		return false
	}, waitFor, 20*time.Millisecond)
}

func TestAdminRecreate(t *testing.T) {
	router := newTestRouter(t)

	pay(t, router, "Jane Doe", "250")
	require.Eventually(t, func() bool { return len(listTransactions(t, router)) == 1 }, waitFor, 20*time.Millisecond)

	w := do(t, router, http.MethodPost, "/admin/recreate", nil)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	assert.Empty(t, listTransactions(t, router))

	pay(t, router, "After", "5")
	require.Eventually(t, func() bool {
		listed := listTransactions(t, router)
		return len(listed) == 1 && listed[0].RecipientName == "After"
	}, waitFor, 20*time.Millisecond)
}

func TestStreamLatest(t *testing.T) {
	router := newTestRouter(t)
	server := httptest.NewServer(router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/transactions/latest/stream", nil)
	require.NoError(t, err)
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	lines := bufio.NewScanner(resp.Body)
	nextData := func() string {
		for lines.Scan() {
			if data, ok := strings.CutPrefix(lines.Text(), "data:"); ok {
				return data
			}
		}
		t.Fatalf("stream ended: %v", lines.Err())
		return ""
	}

	assert.JSONEq(t, `{"transaction":null}`, nextData())

	pay(t, router, "Jane Doe", "250")

	for {
		data := nextData()
		var latest dto.LatestResponse
		require.NoError(t, json.Unmarshal([]byte(data), &latest))
		if latest.Transaction != nil {
			assert.Equal(t, "Jane Doe", latest.Transaction.RecipientName)
			return
		}
	}
}

func TestMiddlewares(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/scan", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodGet, "/scan", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))

	w = do(t, router, http.MethodOptions, "/transactions", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func jsonNumber(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
