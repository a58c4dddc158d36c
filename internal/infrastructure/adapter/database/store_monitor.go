package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
)

// StoreStats is one sample of an open store
type StoreStats struct {
	OpenConnections int
	InUse           int
	Idle            int
	WaitCount       int64
	WaitDuration    time.Duration
	LiveQueries     int
}

// Stats samples the connection pool and the number of live queries bound to
// the store
func (c *Connection) Stats() (StoreStats, error) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return StoreStats{}, fmt.Errorf("failed to get database connection: %w", err)
	}

	pool := sqlDB.Stats()
	return StoreStats{
		OpenConnections: pool.OpenConnections,
		InUse:           pool.InUse,
		Idle:            pool.Idle,
		WaitCount:       pool.WaitCount,
		WaitDuration:    pool.WaitDuration,
		LiveQueries:     c.Tracker.Observers(),
	}, nil
}

// StoreMonitor logs a StoreStats sample every interval and warns when the
// pool is close to exhausted
type StoreMonitor struct {
	conn   *Connection
	logger coreport.Logger

	mu     sync.RWMutex
	last   StoreStats
	cancel context.CancelFunc
	done   chan struct{}
}

// NewStoreMonitor creates a stopped monitor for conn
func NewStoreMonitor(conn *Connection, logger coreport.Logger) *StoreMonitor {
	return &StoreMonitor{conn: conn, logger: logger}
}

// Start takes a first sample and keeps sampling until Stop
func (m *StoreMonitor) Start(interval time.Duration) error {
	if err := m.sample(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := m.sample(); err != nil {
					m.logger.Error("Failed to sample store", map[string]any{"error": err.Error()})
				}
			}
		}
	}()
	return nil
}

// Stop ends sampling and waits for the sampler to exit
func (m *StoreMonitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

// Last returns the most recent sample
func (m *StoreMonitor) Last() StoreStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}

func (m *StoreMonitor) sample() error {
	stats, err := m.conn.Stats()
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.last = stats
	m.mu.Unlock()

	fields := map[string]any{
		"open":         stats.OpenConnections,
		"in_use":       stats.InUse,
		"idle":         stats.Idle,
		"wait_count":   stats.WaitCount,
		"live_queries": stats.LiveQueries,
	}

	limit := m.conn.Config.MaxOpenConns
	if limit > 0 && stats.InUse*5 > limit*4 {
		fields["max_open"] = limit
		fields["wait_time"] = stats.WaitDuration.String()
		m.logger.Warn("Store connection pool nearly exhausted", fields)
		return nil
	}

	m.logger.Debug("Store sample", fields)
	return nil
}
