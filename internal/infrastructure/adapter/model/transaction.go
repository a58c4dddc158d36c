package model

import (
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID                  int64   `gorm:"primaryKey;autoIncrement"`
	RecipientName       string  `gorm:"not null"`
	UpiID               string  `gorm:"column:upi_id;not null"`
	Amount              float64 `gorm:"not null"`
	Type                string  `gorm:"not null;size:32"`
	Status              string  `gorm:"not null;size:32"`
	Description         string  `gorm:"not null"`
	TransactionRef      string  `gorm:"not null;size:64"`
	UtrNumber           string  `gorm:"not null;size:32"`
	BankAccountLastFour string  `gorm:"not null;size:32"`
	Timestamp           int64   `gorm:"not null"`
	Category            string  `gorm:"not null"`
	PaymentMethod       string  `gorm:"not null"`
	IsSuccessful        bool    `gorm:"not null"`
	QRCodeData          *string `gorm:"column:qr_code_data"`
	MerchantName        *string
	PaymentSource       string `gorm:"not null;size:32"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// FromTransactionEntity converts a domain transaction into a row. The id is
// left for the store to assign.
func FromTransactionEntity(tx *entity.Transaction) *Transaction {
	return &Transaction{
		RecipientName:       tx.RecipientName,
		UpiID:               tx.UpiID,
		Amount:              tx.Amount,
		Type:                string(tx.Type),
		Status:              string(tx.Status),
		Description:         tx.Description,
		TransactionRef:      tx.TransactionRef,
		UtrNumber:           tx.UtrNumber,
		BankAccountLastFour: tx.BankAccountLastFour,
		Timestamp:           tx.Timestamp,
		Category:            tx.Category,
		PaymentMethod:       tx.PaymentMethod,
		IsSuccessful:        tx.IsSuccessful,
		QRCodeData:          tx.QRCodeData,
		MerchantName:        tx.MerchantName,
		PaymentSource:       string(tx.PaymentSource),
	}
}

// ToEntity converts the row back into a domain transaction
func (m *Transaction) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:                  m.ID,
		RecipientName:       m.RecipientName,
		UpiID:               m.UpiID,
		Amount:              m.Amount,
		Type:                entity.TransactionType(m.Type),
		Status:              entity.TransactionStatus(m.Status),
		Description:         m.Description,
		TransactionRef:      m.TransactionRef,
		UtrNumber:           m.UtrNumber,
		BankAccountLastFour: m.BankAccountLastFour,
		Timestamp:           m.Timestamp,
		Category:            m.Category,
		PaymentMethod:       m.PaymentMethod,
		IsSuccessful:        m.IsSuccessful,
		QRCodeData:          m.QRCodeData,
		MerchantName:        m.MerchantName,
		PaymentSource:       entity.PaymentSource(m.PaymentSource),
	}
}
