package wallet

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/live"
	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/usecase/activity"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/usecase/history"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/usecase/payment"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/usecase/scan"
)

// Session binds the view models to the current store. Recreate swaps every
// view model over to a fresh store; callers fetch them per use and must not
// hold on to them across a recreate.
type Session struct {
	provider     persistence.StoreProvider
	executor     *live.Executor
	timeProvider coreport.TimeProvider
	random       coreport.RandomSource
	logger       coreport.Logger
	stopTimeout  time.Duration

	mu       sync.RWMutex
	bound    bool
	history  *history.ViewModel
	activity *activity.ViewModel
	payments *payment.Service
	scanner  *scan.Scanner
}

// NewSession creates an unbound session. Call Open before use.
func NewSession(
	provider persistence.StoreProvider,
	executor *live.Executor,
	timeProvider coreport.TimeProvider,
	random coreport.RandomSource,
	logger coreport.Logger,
	stopTimeout time.Duration,
) *Session {
	return &Session{
		provider:     provider,
		executor:     executor,
		timeProvider: timeProvider,
		random:       random,
		logger:       logger,
		stopTimeout:  stopTimeout,
	}
}

// Open binds the session to the store, opening it if needed
func (s *Session) Open(ctx context.Context) error {
	store, err := s.provider.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bound {
		return nil
	}
	s.bindLocked(store)
	return nil
}

// Recreate wipes the store and rebinds every view model to the fresh one.
// Writes already queued are allowed to finish first. If the fresh store
// cannot be opened the old bindings stay in place.
func (s *Session) Recreate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.executor.Drain(ctx); err != nil {
		s.logger.Warn("Pending writes not drained before recreate", map[string]any{
			"error": err.Error(),
		})
	}

	store, err := s.provider.ClearAndRecreate(ctx)
	if err != nil {
		return fmt.Errorf("failed to recreate store: %w", err)
	}

	s.unbindLocked()
	s.bindLocked(store)

	s.logger.Info("Session rebound to fresh store", nil)
	return nil
}

// History returns the transaction view model
func (s *Session) History() usecase.TransactionHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history
}

// Activity returns the audit event view model
func (s *Session) Activity() usecase.ActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activity
}

// Payments returns the payment entry use case
func (s *Session) Payments() usecase.PaymentUseCase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payments
}

// Scanner returns the QR scanner
func (s *Session) Scanner() usecase.ScanUseCase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scanner
}

// Close ends every view model cell. The store itself is left to its
// provider.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unbindLocked()
}

func (s *Session) bindLocked(store persistence.Store) {
	s.history = history.NewViewModel(store.Transactions(), s.executor, s.logger, s.stopTimeout)
	s.activity = activity.NewViewModel(store.Events(), s.executor, s.timeProvider, s.logger, s.stopTimeout)
	s.payments = payment.NewService(s.history, s.timeProvider, s.random, s.logger)

	events := s.activity
	s.scanner = scan.NewScanner(scan.NavigatorFunc(func(string) {
		events.LogEvent(entity.EventVisit, scan.PaymentRouteTemplate)
	}), s.logger)

	s.bound = true
}

func (s *Session) unbindLocked() {
	if !s.bound {
		return
	}
	s.history.Close()
	s.activity.Close()
	s.bound = false
}
