package activity

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

func quietLogger(t *testing.T) *mockcore.MockLogger {
	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func setup(t *testing.T) (*ViewModel, *mockpersistence.MockEventRepository, *mockcore.MockTimeProvider, *live.Executor, chan []*entity.Event) {
	repo := mockpersistence.NewMockEventRepository(t)
	timeProvider := mockcore.NewMockTimeProvider(t)
	logger := quietLogger(t)
	executor := live.NewExecutor(logger, 8, 0)

	events := make(chan []*entity.Event)
	repo.EXPECT().All().Return(func(ctx context.Context, emit func([]*entity.Event)) error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case v := <-events:
				emit(v)
			}
		}
	}).Once()

	vm := NewViewModel(repo, executor, timeProvider, logger, time.Hour)
	t.Cleanup(func() {
		vm.Close()
		executor.Shutdown()
	})
	return vm, repo, timeProvider, executor, events
}

func TestViewModel_Events(t *testing.T) {
	vm, _, _, _, events := setup(t)

	cell := vm.Events()
	assert.Same(t, cell, vm.Events())
	assert.Empty(t, cell.Value())

	sub := cell.Subscribe(context.Background())
	assert.Empty(t, <-sub)

	rows := []*entity.Event{{ID: 1, Type: entity.EventVisit, Route: "home"}}
	events <- rows

	select {
	case got := <-sub:
		assert.Equal(t, rows, got)
	case <-time.After(time.Second):
		t.Fatal("no update")
	}
}

func TestViewModel_LogEvent(t *testing.T) {
	vm, repo, timeProvider, executor, _ := setup(t)

	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	timeProvider.EXPECT().Now().Return(now).Once()

	repo.EXPECT().Insert(mock.Anything, &entity.Event{
		Type:      entity.EventAction,
		Route:     entity.ActionOpenHistory,
		Timestamp: now.UnixMilli(),
	}).Return(int64(1), nil).Once()

	vm.LogEvent(entity.EventAction, entity.ActionOpenHistory)

	require.NoError(t, executor.Drain(context.Background()))
}

func TestViewModel_Clear(t *testing.T) {
	vm, repo, _, executor, _ := setup(t)

	repo.EXPECT().Clear(mock.Anything).Return(nil).Once()

	vm.Clear()

	require.NoError(t, executor.Drain(context.Background()))
}
