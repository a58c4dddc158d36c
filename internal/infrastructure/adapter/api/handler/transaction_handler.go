package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/pocket-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler serves the transaction history views
type TransactionHandler struct {
	views       Views
	logger      coreport.Logger
	readTimeout time.Duration
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(views Views, logger coreport.Logger, readTimeout time.Duration) *TransactionHandler {
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}
	return &TransactionHandler{
		views:       views,
		logger:      logger,
		readTimeout: readTimeout,
	}
}

// List handles GET /transactions
func (h *TransactionHandler) List(c *gin.Context) {
	h.views.Activity().LogEvent(entity.EventAction, entity.ActionOpenHistory)

	txs, ok := await(c, h.views.History().AllTransactions(), h.readTimeout)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.FromTransactions(txs))
}

// Latest handles GET /transactions/latest
func (h *TransactionHandler) Latest(c *gin.Context) {
	tx, ok := await(c, h.views.History().LatestTransaction(), h.readTimeout)
	if !ok {
		return
	}
	if tx == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, dto.FromTransaction(tx))
}

// Get handles GET /transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	cell := h.views.History().TransactionByID(id)
	defer cell.Close()

	tx, ok := await(c, cell, h.readTimeout)
	if !ok {
		return
	}
	if tx == nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, dto.FromTransaction(tx))
}

// StreamList handles GET /transactions/stream
func (h *TransactionHandler) StreamList(c *gin.Context) {
	h.views.Activity().LogEvent(entity.EventAction, entity.ActionOpenHistory)

	stream(c, h.views.History().AllTransactions(), func(txs []*entity.Transaction) any {
		return dto.FromTransactions(txs)
	})
}

// StreamLatest handles GET /transactions/latest/stream
func (h *TransactionHandler) StreamLatest(c *gin.Context) {
	stream(c, h.views.History().LatestTransaction(), func(tx *entity.Transaction) any {
		return dto.FromLatest(tx)
	})
}

// StreamOne handles GET /transactions/:id/stream. Absence is streamed as a
// null transaction so clients see the row appear.
func (h *TransactionHandler) StreamOne(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	cell := h.views.History().TransactionByID(id)
	defer cell.Close()

	stream(c, cell, func(tx *entity.Transaction) any {
		return dto.FromLatest(tx)
	})
}

func (h *TransactionHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid transaction ID format",
		})
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrTransactionNotFound),
		Message: "Transaction not found",
	})
}
