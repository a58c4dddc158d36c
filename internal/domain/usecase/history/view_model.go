package history

import (
	"context"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/live"
	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/usecase"
)

// DefaultStopTimeout keeps a cell's query alive across short gaps between
// subscribers, such as a screen being recreated
const DefaultStopTimeout = 5 * time.Second

// ViewModel holds the transaction view state. The full listing and the
// latest transaction are shared cells; per-id cells are created on demand.
type ViewModel struct {
	scope       context.Context
	cancel      context.CancelFunc
	repo        persistence.TransactionRepository
	executor    *live.Executor
	logger      coreport.Logger
	stopTimeout time.Duration

	all    *live.Cell[[]*entity.Transaction]
	latest *live.Cell[*entity.Transaction]
}

var _ usecase.TransactionHistory = (*ViewModel)(nil)

// NewViewModel creates the view model. Its cells live until Close.
func NewViewModel(
	repo persistence.TransactionRepository,
	executor *live.Executor,
	logger coreport.Logger,
	stopTimeout time.Duration,
) *ViewModel {
	scope, cancel := context.WithCancel(context.Background())

	vm := &ViewModel{
		scope:       scope,
		cancel:      cancel,
		repo:        repo,
		executor:    executor,
		logger:      logger,
		stopTimeout: stopTimeout,
	}

	vm.all = live.NewCell(scope, "transactions.all", repo.AllTransactions(),
		live.WhileSubscribed(stopTimeout), []*entity.Transaction{}, logger)
	vm.latest = live.NewCell(scope, "transactions.latest", repo.LatestTransaction(),
		live.WhileSubscribed(stopTimeout), nil, logger)

	return vm
}

// AllTransactions returns the shared cell of every transaction
func (vm *ViewModel) AllTransactions() *live.Cell[[]*entity.Transaction] {
	return vm.all
}

// LatestTransaction returns the shared cell of the newest transaction
func (vm *ViewModel) LatestTransaction() *live.Cell[*entity.Transaction] {
	return vm.latest
}

// TransactionByID returns a new cell tracking the given transaction
func (vm *ViewModel) TransactionByID(id int64) *live.Cell[*entity.Transaction] {
	return live.NewCell(vm.scope, "transactions.by_id."+strconv.FormatInt(id, 10), vm.repo.TransactionByID(id),
		live.WhileSubscribed(vm.stopTimeout), nil, vm.logger)
}

// Insert stores the transaction on the background executor
func (vm *ViewModel) Insert(transaction *entity.Transaction) {
	vm.executor.Submit("insert_transaction", func(ctx context.Context) error {
		id, err := vm.repo.Insert(ctx, transaction)
		if err != nil {
			return err
		}

		vm.logger.Info("Transaction recorded", map[string]any{
			"id":              id,
			"transaction_ref": transaction.TransactionRef,
			"amount":          transaction.Amount,
			"source":          transaction.PaymentSource,
		})
		return nil
	})
}

// Close ends every cell created by this view model
func (vm *ViewModel) Close() {
	vm.cancel()
}
