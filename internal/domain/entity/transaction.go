package entity

import (
	tport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
)

// TransactionType classifies what a transaction did
type TransactionType string

// Transaction types
const (
	TypePayment      TransactionType = "PAYMENT"
	TypeReceived     TransactionType = "RECEIVED"
	TypeRecharge     TransactionType = "RECHARGE"
	TypeBillPayment  TransactionType = "BILL_PAYMENT"
	TypeBankTransfer TransactionType = "BANK_TRANSFER"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusSuccess   TransactionStatus = "SUCCESS"
	StatusPending   TransactionStatus = "PENDING"
	StatusFailed    TransactionStatus = "FAILED"
	StatusCancelled TransactionStatus = "CANCELLED"
)

// PaymentSource records how the recipient was entered
type PaymentSource string

// Payment sources
const (
	SourceManual PaymentSource = "Manual"
	SourceQRScan PaymentSource = "QR_SCAN"
)

// Defaults applied by NewTransaction
const (
	DefaultCategory      = "Personal"
	DefaultPaymentMethod = "UPI"
)

// Transaction is one locally recorded payment event. Records are created once
// and never updated.
type Transaction struct {
	ID                  int64 // Store-assigned identity, zero until inserted
	RecipientName       string
	UpiID               string // Recipient payment address
	Amount              float64
	Type                TransactionType
	Status              TransactionStatus
	Description         string
	TransactionRef      string // Displayed as "Transaction ID"
	UtrNumber           string
	BankAccountLastFour string // Masked funding account, e.g. XXXXXX1234
	Timestamp           int64  // Milliseconds since epoch
	Category            string
	PaymentMethod       string
	IsSuccessful        bool
	QRCodeData          *string // Raw scanned payload, if any
	MerchantName        *string
	PaymentSource       PaymentSource
}

// TransactionOption customizes a transaction under construction
type TransactionOption func(*Transaction)

// WithType sets the transaction type
func WithType(t TransactionType) TransactionOption {
	return func(tx *Transaction) { tx.Type = t }
}

// WithStatus sets the transaction status
func WithStatus(s TransactionStatus) TransactionOption {
	return func(tx *Transaction) { tx.Status = s }
}

// WithDescription sets the free-text description
func WithDescription(d string) TransactionOption {
	return func(tx *Transaction) { tx.Description = d }
}

// WithCategory sets the category label
func WithCategory(c string) TransactionOption {
	return func(tx *Transaction) { tx.Category = c }
}

// WithPaymentMethod sets the payment method label
func WithPaymentMethod(m string) TransactionOption {
	return func(tx *Transaction) { tx.PaymentMethod = m }
}

// WithSuccessful sets the success flag
func WithSuccessful(ok bool) TransactionOption {
	return func(tx *Transaction) { tx.IsSuccessful = ok }
}

// WithQRCodeData attaches the raw scanned payload
func WithQRCodeData(raw string) TransactionOption {
	return func(tx *Transaction) { tx.QRCodeData = &raw }
}

// WithMerchantName sets the merchant display name
func WithMerchantName(name string) TransactionOption {
	return func(tx *Transaction) { tx.MerchantName = &name }
}

// WithPaymentSource sets the origin label
func WithPaymentSource(src PaymentSource) TransactionOption {
	return func(tx *Transaction) { tx.PaymentSource = src }
}

// WithTimestamp overrides the creation timestamp (milliseconds since epoch)
func WithTimestamp(ms int64) TransactionOption {
	return func(tx *Transaction) { tx.Timestamp = ms }
}

// NewTransaction builds a transaction and generates its reference strings.
// No validation happens here: the store accepts whatever the caller built.
func NewTransaction(
	recipientName string,
	upiID string,
	amount float64,
	timeProvider tport.TimeProvider,
	rnd tport.RandomSource,
	opts ...TransactionOption,
) *Transaction {
	now := timeProvider.Now()

	tx := &Transaction{
		RecipientName:       recipientName,
		UpiID:               upiID,
		Amount:              amount,
		Type:                TypePayment,
		Status:              StatusSuccess,
		TransactionRef:      GenerateTransactionRef(now, rnd),
		UtrNumber:           GenerateUtrNumber(rnd),
		BankAccountLastFour: GenerateMaskedAccount(rnd),
		Timestamp:           now.UnixMilli(),
		Category:            DefaultCategory,
		PaymentMethod:       DefaultPaymentMethod,
		IsSuccessful:        true,
		PaymentSource:       SourceManual,
	}

	for _, opt := range opts {
		opt(tx)
	}

	return tx
}

// IsDebit reports whether money left the wallet
func (t *Transaction) IsDebit() bool {
	return t.Type != TypeReceived
}

// Title returns the history-row heading for the transaction type
func (t *Transaction) Title() string {
	switch t.Type {
	case TypeReceived:
		return "Received from " + t.RecipientName
	case TypeRecharge:
		return "Mobile recharge"
	case TypeBillPayment:
		return "Bill payment"
	case TypeBankTransfer:
		return "Transfer to bank"
	default:
		return "Paid to " + t.RecipientName
	}
}

// FormattedAmount renders the amount as Indian rupees, e.g. ₹1,00,000.00
func (t *Transaction) FormattedAmount() string {
	return FormatRupees(t.Amount)
}

// DebitedFrom is the receipt line naming the masked account and the amount
func (t *Transaction) DebitedFrom() string {
	return t.BankAccountLastFour + "   " + FormatPlainAmount(t.Amount)
}
