package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/pocket-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/usecase/scan"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PaymentHandler serves the scan and payment-entry screens
type PaymentHandler struct {
	views  Views
	logger coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(views Views, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		views:  views,
		logger: logger,
	}
}

// Scan handles POST /scan
func (h *PaymentHandler) Scan(c *gin.Context) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid scan request format: "+err.Error())
		return
	}

	scanner := h.views.Scanner()
	var result usecase.ScanResult
	if len(req.Candidates) > 0 {
		result = scanner.HandleBatch(req.Candidates)
	} else {
		result = scanner.Handle(req.Raw)
	}

	c.JSON(http.StatusOK, toScanResponse(result))
}

// ScanStatus handles GET /scan
func (h *PaymentHandler) ScanStatus(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ScanResponse{Status: h.views.Scanner().Status()})
}

// ResetScan handles DELETE /scan
func (h *PaymentHandler) ResetScan(c *gin.Context) {
	scanner := h.views.Scanner()
	scanner.Reset()
	c.JSON(http.StatusOK, dto.ScanResponse{Status: scanner.Status()})
}

// DecodeRoute handles GET /payments/route?route=...
func (h *PaymentHandler) DecodeRoute(c *gin.Context) {
	intent, err := scan.ParsePaymentRoute(c.Query("route"))
	if err != nil {
		h.badRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.PaymentRouteResponse{
		UpiID:  intent.UpiID,
		Name:   intent.Name,
		QRData: intent.RawPayload,
	})
}

// Pay handles POST /payments
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid payment request format: "+err.Error())
		return
	}

	result, err := h.views.Payments().Pay(usecase.PayRequest{
		RecipientName: req.Name,
		UpiID:         req.UpiID,
		QRData:        req.QRData,
		Amount:        req.Amount,
	})
	if err != nil {
		h.logger.Warn("Payment rejected", map[string]any{
			"upiId": req.UpiID,
			"error": err.Error(),
		})
		c.JSON(errorStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Enter a valid amount",
		})
		return
	}

	c.JSON(http.StatusCreated, dto.PaymentResponse{
		Transaction: dto.FromTransaction(result.Transaction),
		NextRoute:   result.NextRoute,
	})
}

func (h *PaymentHandler) badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message,
	})
}

func toScanResponse(result usecase.ScanResult) dto.ScanResponse {
	resp := dto.ScanResponse{
		Navigated: result.Navigated,
		Route:     result.Route,
		Status:    result.Status,
	}
	if result.Intent != nil {
		resp.Intent = &dto.IntentResponse{
			UpiID: result.Intent.UpiID,
			Name:  result.Intent.Name,
		}
	}
	return resp
}
