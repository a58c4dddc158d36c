package repository

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/live"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/random"
	timeprovider "github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/time"
)

const waitFor = 2 * time.Second

var baseTime = time.Date(2024, 3, 9, 14, 5, 7, 123_000_000, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	log := logger.NewNoopLogger()
	return NewStore(database.NewTestConnection(t, log), log, timeprovider.NewRealTimeProvider())
}

// newTransaction builds a transaction whose timestamp is offset from baseTime
func newTransaction(name string, offset time.Duration, opts ...entity.TransactionOption) *entity.Transaction {
	clock := timeprovider.NewSteppingTimeProvider(baseTime.Add(offset), 0)
	return entity.NewTransaction(name, name+"@bank", 250, clock, random.NewRealRandomSource(), opts...)
}

// watch runs src in the background and returns its emissions
func watch[T any](t *testing.T, src live.Source[T]) <-chan T {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan T, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = src(ctx, func(v T) {
			select {
			case out <- v:
			case <-ctx.Done():
			}
		})
	}()

	t.Cleanup(func() {
		cancel()
		<-done
	})
	return out
}

// next waits for an emission matching accept, skipping stale ones
func next[T any](t *testing.T, ch <-chan T, accept func(T) bool) T {
	t.Helper()

	timeout := time.After(waitFor)
	for {
		select {
		case v := <-ch:
			if accept(v) {
				return v
			}
		case <-timeout:
			t.Fatal("expected emission did not arrive")
			var zero T
			return zero
		}
	}
}
