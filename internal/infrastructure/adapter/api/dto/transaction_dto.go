package dto

import "github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"

// TransactionResponse represents one transaction as rendered by the history
// and detail screens
type TransactionResponse struct {
	ID                  int64   `json:"id"`
	Title               string  `json:"title"`
	RecipientName       string  `json:"recipientName"`
	UpiID               string  `json:"upiId"`
	Amount              float64 `json:"amount"`
	FormattedAmount     string  `json:"formattedAmount"`
	Debit               bool    `json:"debit"`
	Type                string  `json:"transactionType"`
	Status              string  `json:"status"`
	Description         string  `json:"description"`
	TransactionID       string  `json:"transactionId"`
	UtrNumber           string  `json:"utrNumber"`
	BankAccountLastFour string  `json:"bankAccountLastFour"`
	DebitedFrom         string  `json:"debitedFrom"`
	Timestamp           int64   `json:"timestamp"`
	Category            string  `json:"category"`
	PaymentMethod       string  `json:"paymentMethod"`
	IsSuccessful        bool    `json:"isSuccessful"`
	QRCodeData          *string `json:"qrCodeData,omitempty"`
	MerchantName        *string `json:"merchantName,omitempty"`
	PaymentSource       string  `json:"paymentSource"`
}

// FromTransaction renders a transaction
func FromTransaction(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                  tx.ID,
		Title:               tx.Title(),
		RecipientName:       tx.RecipientName,
		UpiID:               tx.UpiID,
		Amount:              tx.Amount,
		FormattedAmount:     tx.FormattedAmount(),
		Debit:               tx.IsDebit(),
		Type:                string(tx.Type),
		Status:              string(tx.Status),
		Description:         tx.Description,
		TransactionID:       tx.TransactionRef,
		UtrNumber:           tx.UtrNumber,
		BankAccountLastFour: tx.BankAccountLastFour,
		DebitedFrom:         tx.DebitedFrom(),
		Timestamp:           tx.Timestamp,
		Category:            tx.Category,
		PaymentMethod:       tx.PaymentMethod,
		IsSuccessful:        tx.IsSuccessful,
		QRCodeData:          tx.QRCodeData,
		MerchantName:        tx.MerchantName,
		PaymentSource:       string(tx.PaymentSource),
	}
}

// FromTransactions renders a listing. The result is never nil.
func FromTransactions(txs []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, FromTransaction(tx))
	}
	return out
}

// LatestResponse wraps the newest transaction on the latest stream, where it
// may be absent
type LatestResponse struct {
	Transaction *TransactionResponse `json:"transaction"`
}

// FromLatest renders a possibly absent transaction
func FromLatest(tx *entity.Transaction) LatestResponse {
	if tx == nil {
		return LatestResponse{}
	}
	rendered := FromTransaction(tx)
	return LatestResponse{Transaction: &rendered}
}
