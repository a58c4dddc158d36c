package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/live"
)

func TestEventRepository(t *testing.T) {
	store := newTestStore(t)
	repo := store.Events()
	ctx := context.Background()

	events := watch(t, repo.All())
	assert.Empty(t, next(t, events, func([]*entity.Event) bool { return true }))

	t.Run("Insert lists newest first", func(t *testing.T) {
		for i, route := range []string{"home", "scanner", "history"} {
			id, err := repo.Insert(ctx, &entity.Event{Type: entity.EventVisit, Route: route, Timestamp: int64(1000 + i)})
			require.NoError(t, err)
			assert.Equal(t, int64(i+1), id)
		}

		got := next(t, events, func(v []*entity.Event) bool { return len(v) == 3 })
		assert.Equal(t, "history", got[0].Route)
		assert.Equal(t, "home", got[2].Route)
	})

	t.Run("Insert with existing id replaces the row", func(t *testing.T) {
		id, err := repo.Insert(ctx, &entity.Event{ID: 2, Type: entity.EventAction, Route: "open_history", Timestamp: 5000})
		require.NoError(t, err)
		assert.Equal(t, int64(2), id)

		got := next(t, events, func(v []*entity.Event) bool { return len(v) == 3 && v[0].Timestamp == 5000 })
		assert.Equal(t, &entity.Event{ID: 2, Type: entity.EventAction, Route: "open_history", Timestamp: 5000}, got[0])
	})

	t.Run("Clear empties the log", func(t *testing.T) {
		require.NoError(t, repo.Clear(ctx))

		assert.Empty(t, next(t, events, func(v []*entity.Event) bool { return len(v) == 0 }))

		all, err := live.First(ctx, repo.All())
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
