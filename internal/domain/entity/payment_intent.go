package entity

// PaymentIntent is what a scanned payment request asks for
type PaymentIntent struct {
	UpiID      string // Recipient payment address, never blank
	Name       string // Payee display name, may be empty
	RawPayload string // The scanned text as decoded
}
