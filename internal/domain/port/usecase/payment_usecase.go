package usecase

import (
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
)

// ScanResult describes what happened to one scanned payload
type ScanResult struct {
	Navigated bool
	Route     string
	Status    string
	Intent    *entity.PaymentIntent
}

// ScanUseCase turns scanned QR payloads into navigation to payment entry
type ScanUseCase interface {
	// Handle inspects one decoded payload
	Handle(raw string) ScanResult

	// HandleBatch picks the first payment payload out of one decoded frame
	HandleBatch(candidates []string) ScanResult

	// Reset re-arms the scanner after it has navigated
	Reset()

	// Status returns the scanner's current status line
	Status() string
}

// PayRequest is the payment-entry form as submitted
type PayRequest struct {
	RecipientName string
	UpiID         string
	QRData        string // Raw scanned payload; empty for manual entry
	Amount        string
}

// PayResult is the outcome of a submitted payment
type PayResult struct {
	Transaction *entity.Transaction
	NextRoute   string
}

// PaymentUseCase validates payment entry and records the payment
type PaymentUseCase interface {
	// Pay validates the amount and records the payment. Returns
	// ErrInvalidAmount when the amount gate rejects the input.
	Pay(req PayRequest) (*PayResult, error)
}
