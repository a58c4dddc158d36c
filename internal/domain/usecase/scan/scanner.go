package scan

import (
	"sync"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/usecase"
)

// Status lines shown under the camera preview
const (
	StatusIdle       = "Point your camera at a QR code."
	StatusNoQR       = "No QR detected in image."
	statusScannedFmt = "Scanned: "
	unsupportedCode  = "Unsupported"
)

// Navigator moves the presentation to another destination
type Navigator interface {
	Navigate(route string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(route string)

// Navigate calls f(route)
func (f NavigatorFunc) Navigate(route string) { f(route) }

// Scanner turns decoded QR payloads into navigation to payment entry.
// Once it has navigated it ignores further payloads until Reset.
type Scanner struct {
	mu        sync.Mutex
	navigator Navigator
	logger    coreport.Logger
	status    string
	navigated bool
}

var _ usecase.ScanUseCase = (*Scanner)(nil)

// NewScanner creates an idle scanner
func NewScanner(navigator Navigator, logger coreport.Logger) *Scanner {
	return &Scanner{
		navigator: navigator,
		logger:    logger,
		status:    StatusIdle,
	}
}

// Handle inspects one decoded payload. The navigator is called without the
// scanner's lock held.
func (s *Scanner) Handle(raw string) usecase.ScanResult {
	result, navigate := s.inspect(raw)
	if navigate {
		s.navigator.Navigate(result.Route)
	}
	return result
}

func (s *Scanner) inspect(raw string) (usecase.ScanResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.navigated {
		return usecase.ScanResult{Status: s.status}, false
	}

	if raw == "" {
		s.status = StatusNoQR
		return usecase.ScanResult{Status: s.status}, false
	}

	intent, ok := ParseIntent(raw)
	if !ok {
		s.status = statusScannedFmt + raw
		s.logger.Debug("Scanned payload is not a payment request", map[string]any{
			"length": len(raw),
		})
		return usecase.ScanResult{Status: s.status}, false
	}

	return s.navigate(intent), true
}

// HandleBatch handles the first payment payload out of one decoded frame.
// Without one, the first code in the frame is echoed back; an empty frame
// reports that no code was found.
func (s *Scanner) HandleBatch(candidates []string) usecase.ScanResult {
	payload, ok := SelectPaymentPayload(candidates)
	if ok {
		return s.Handle(payload)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.navigated {
		return usecase.ScanResult{Status: s.status}
	}

	switch {
	case len(candidates) == 0:
		s.status = StatusNoQR
	case candidates[0] == "":
		s.status = statusScannedFmt + unsupportedCode
	default:
		s.status = statusScannedFmt + candidates[0]
	}
	return usecase.ScanResult{Status: s.status}
}

// Reset re-arms the scanner
func (s *Scanner) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navigated = false
	s.status = StatusIdle
}

// Status returns the current status line
func (s *Scanner) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Scanner) navigate(intent entity.PaymentIntent) usecase.ScanResult {
	route := PaymentRoute(intent)
	s.navigated = true
	s.status = statusScannedFmt + intent.RawPayload

	s.logger.Info("Payment QR scanned", map[string]any{
		"upiId": intent.UpiID,
		"name":  intent.Name,
	})

	return usecase.ScanResult{
		Navigated: true,
		Route:     route,
		Status:    s.status,
		Intent:    &intent,
	}
}
