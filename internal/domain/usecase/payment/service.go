package payment

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pocket-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/usecase"
)

// RouteSuccess is where the presentation goes after a recorded payment
const RouteSuccess = "success"

// Service records payments entered on the payment screen
type Service struct {
	history      usecase.TransactionHistory
	timeProvider coreport.TimeProvider
	random       coreport.RandomSource
	logger       coreport.Logger
}

var _ usecase.PaymentUseCase = (*Service)(nil)

// NewService creates a new payment service
func NewService(
	history usecase.TransactionHistory,
	timeProvider coreport.TimeProvider,
	random coreport.RandomSource,
	logger coreport.Logger,
) *Service {
	return &Service{
		history:      history,
		timeProvider: timeProvider,
		random:       random,
		logger:       logger,
	}
}

// Pay validates the amount, builds the transaction and hands it to the
// history for writing. The write itself happens in the background.
func (s *Service) Pay(req usecase.PayRequest) (*usecase.PayResult, error) {
	amount, ok := ValidateAmount(req.Amount)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, req.Amount)
	}

	name := strings.ReplaceAll(req.RecipientName, "+", " ")

	opts := []entity.TransactionOption{
		entity.WithType(entity.TypePayment),
		entity.WithStatus(entity.StatusSuccess),
		entity.WithDescription("Payment to " + name),
		entity.WithCategory(entity.DefaultCategory),
		entity.WithPaymentMethod(entity.DefaultPaymentMethod),
		entity.WithSuccessful(true),
	}
	if req.QRData != "" {
		opts = append(opts,
			entity.WithQRCodeData(req.QRData),
			entity.WithMerchantName(name),
			entity.WithPaymentSource(entity.SourceQRScan),
		)
	} else {
		opts = append(opts, entity.WithPaymentSource(entity.SourceManual))
	}

	tx := entity.NewTransaction(name, req.UpiID, amount, s.timeProvider, s.random, opts...)
	s.history.Insert(tx)

	s.logger.Info("Payment submitted", map[string]any{
		"transaction_ref": tx.TransactionRef,
		"upiId":           tx.UpiID,
		"amount":          tx.Amount,
		"source":          tx.PaymentSource,
	})

	return &usecase.PayResult{
		Transaction: tx,
		NextRoute:   RouteSuccess,
	}, nil
}
