package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/live"
	mockcore "github.com/amirhossein-jamali/pocket-wallet/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/pocket-wallet/mocks/port/persistence"
)

const waitFor = time.Second

func quietLogger(t *testing.T) *mockcore.MockLogger {
	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

// feed returns a source that emits whatever the test sends
func feed[T any](values <-chan T) live.Source[T] {
	return func(ctx context.Context, emit func(T)) error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case v := <-values:
				emit(v)
			}
		}
	}
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "subscription closed")
		return v
	case <-time.After(waitFor):
		t.Fatal("no value received")
	}
	var zero T
	return zero
}

type fixture struct {
	repo     *mockpersistence.MockTransactionRepository
	executor *live.Executor
	logger   *mockcore.MockLogger
	all      chan []*entity.Transaction
	latest   chan *entity.Transaction
	vm       *ViewModel
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:   mockpersistence.NewMockTransactionRepository(t),
		logger: quietLogger(t),
		all:    make(chan []*entity.Transaction),
		latest: make(chan *entity.Transaction),
	}
	f.executor = live.NewExecutor(f.logger, 8, 0)
	f.repo.EXPECT().AllTransactions().Return(feed(f.all)).Once()
	f.repo.EXPECT().LatestTransaction().Return(feed(f.latest)).Once()

	f.vm = NewViewModel(f.repo, f.executor, f.logger, time.Hour)
	t.Cleanup(func() {
		f.vm.Close()
		f.executor.Shutdown()
	})
	return f
}

func TestViewModel_AllTransactions(t *testing.T) {
	f := newFixture(t)

	cell := f.vm.AllTransactions()
	assert.Same(t, cell, f.vm.AllTransactions(), "listing cell is shared")
	assert.NotNil(t, cell.Value())
	assert.Empty(t, cell.Value())
	assert.False(t, cell.Active(), "query waits for a subscriber")

	sub := cell.Subscribe(context.Background())
	assert.Empty(t, receive(t, sub))

	rows := []*entity.Transaction{{ID: 2, RecipientName: "B"}, {ID: 1, RecipientName: "A"}}
	f.all <- rows
	assert.Equal(t, rows, receive(t, sub))

	late := cell.Subscribe(context.Background())
	assert.Equal(t, rows, receive(t, late), "late subscriber gets the current listing")
}

func TestViewModel_LatestTransaction(t *testing.T) {
	f := newFixture(t)

	cell := f.vm.LatestTransaction()
	assert.Same(t, cell, f.vm.LatestTransaction())
	assert.Nil(t, cell.Value())

	sub := cell.Subscribe(context.Background())
	assert.Nil(t, receive(t, sub))

	newest := &entity.Transaction{ID: 9}
	f.latest <- newest
	assert.Same(t, newest, receive(t, sub))
}

func TestViewModel_TransactionByID(t *testing.T) {
	f := newFixture(t)

	byID := make(chan *entity.Transaction)
	f.repo.EXPECT().TransactionByID(int64(5)).Return(feed(byID)).Twice()

	first := f.vm.TransactionByID(5)
	second := f.vm.TransactionByID(5)
	assert.NotSame(t, first, second, "each call builds its own cell")
	assert.Nil(t, first.Value())

	sub := first.Subscribe(context.Background())
	assert.Nil(t, receive(t, sub), "absent until the row exists")

	byID <- &entity.Transaction{ID: 5, RecipientName: "Asha"}
	got := receive(t, sub)
	require.NotNil(t, got)
	assert.Equal(t, "Asha", got.RecipientName)
}

func TestViewModel_Insert(t *testing.T) {
	t.Run("Write runs in the background", func(t *testing.T) {
		f := newFixture(t)
		tx := &entity.Transaction{RecipientName: "Asha", TransactionRef: "T1"}

		release := make(chan struct{})
		f.repo.EXPECT().Insert(mock.Anything, tx).
			Run(func(context.Context, *entity.Transaction) { <-release }).
			Return(int64(1), nil).Once()

		f.vm.Insert(tx)
		close(release)

		require.NoError(t, f.executor.Drain(context.Background()))
	})

	t.Run("Writes keep submission order", func(t *testing.T) {
		f := newFixture(t)

		var order []string
		f.repo.EXPECT().Insert(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, tx *entity.Transaction) (int64, error) {
				order = append(order, tx.RecipientName)
				return int64(len(order)), nil
			}).Times(3)

		for _, name := range []string{"a", "b", "c"} {
			f.vm.Insert(&entity.Transaction{RecipientName: name})
		}

		require.NoError(t, f.executor.Drain(context.Background()))
		assert.Equal(t, []string{"a", "b", "c"}, order)
	})

	t.Run("Failure is logged, not returned", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Insert(mock.Anything, mock.Anything).Return(int64(0), assert.AnError).Once()

		f.vm.Insert(&entity.Transaction{RecipientName: "Asha"})

		require.NoError(t, f.executor.Drain(context.Background()))
		f.logger.AssertCalled(t, "Error", "Background task failed", mock.Anything)
	})
}

func TestViewModel_Close(t *testing.T) {
	f := newFixture(t)

	sub := f.vm.AllTransactions().Subscribe(context.Background())
	receive(t, sub)

	f.vm.Close()

	select {
	case _, ok := <-sub:
		if ok {
			_, ok = <-sub
		}
		assert.False(t, ok)
	case <-time.After(waitFor):
		t.Fatal("subscription not closed")
	}
}
