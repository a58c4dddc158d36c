package dto

// ScanRequest carries what the camera decoded. Raw holds a single payload;
// Candidates holds every code decoded from one frame.
type ScanRequest struct {
	Raw        string   `json:"raw"`
	Candidates []string `json:"candidates"`
}

// IntentResponse is a recognised payment request
type IntentResponse struct {
	UpiID string `json:"upiId"`
	Name  string `json:"name"`
}

// ScanResponse reports the outcome of a scan
type ScanResponse struct {
	Navigated bool            `json:"navigated"`
	Route     string          `json:"route,omitempty"`
	Status    string          `json:"status"`
	Intent    *IntentResponse `json:"intent,omitempty"`
}

// PaymentRequest is the payment form. Amount stays a string so the form's
// own validation rules apply.
type PaymentRequest struct {
	Name   string `json:"name" binding:"required"`
	UpiID  string `json:"upiId" binding:"required"`
	QRData string `json:"qrData"`
	Amount string `json:"amount"`
}

// PaymentResponse is the recorded payment and where to go next
type PaymentResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	NextRoute   string              `json:"nextRoute"`
}

// PaymentRouteResponse is a decoded payment-entry route
type PaymentRouteResponse struct {
	UpiID  string `json:"upiId"`
	Name   string `json:"name"`
	QRData string `json:"qrData,omitempty"`
}
