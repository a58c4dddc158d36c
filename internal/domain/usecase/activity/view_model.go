package activity

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/live"
	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/usecase"
)

// ViewModel holds the audit event view state
type ViewModel struct {
	cancel       context.CancelFunc
	repo         persistence.EventRepository
	executor     *live.Executor
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	events *live.Cell[[]*entity.Event]
}

var _ usecase.ActivityLog = (*ViewModel)(nil)

// NewViewModel creates the view model. Its cell lives until Close.
func NewViewModel(
	repo persistence.EventRepository,
	executor *live.Executor,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	stopTimeout time.Duration,
) *ViewModel {
	scope, cancel := context.WithCancel(context.Background())

	return &ViewModel{
		cancel:       cancel,
		repo:         repo,
		executor:     executor,
		timeProvider: timeProvider,
		logger:       logger,
		events: live.NewCell(scope, "events.all", repo.All(),
			live.WhileSubscribed(stopTimeout), []*entity.Event{}, logger),
	}
}

// Events returns the shared cell of every event
func (vm *ViewModel) Events() *live.Cell[[]*entity.Event] {
	return vm.events
}

// LogEvent records an event on the background executor. The timestamp is
// taken now, not when the write runs.
func (vm *ViewModel) LogEvent(eventType, route string) {
	event := entity.NewEvent(eventType, route, vm.timeProvider)

	vm.executor.Submit("insert_event", func(ctx context.Context) error {
		_, err := vm.repo.Insert(ctx, event)
		return err
	})
}

// Clear deletes every event on the background executor
func (vm *ViewModel) Clear() {
	vm.executor.Submit("clear_events", vm.repo.Clear)
}

// Close ends the view model's cell
func (vm *ViewModel) Close() {
	vm.cancel()
}
