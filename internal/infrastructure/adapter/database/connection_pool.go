package database

import (
	"context"
	"sync"
	"time"

	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"gorm.io/gorm"
)

// ConnectionPoolMonitor periodically publishes connection pool statistics
type ConnectionPoolMonitor struct {
	db       *gorm.DB
	observer PoolObserver
	logger   coreport.Logger
	stopOnce sync.Once
	stopChan chan struct{}
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *gorm.DB, observer PoolObserver, logger coreport.Logger) *ConnectionPoolMonitor {
	if observer == nil {
		observer = noopPoolObserver{}
	}
	return &ConnectionPoolMonitor{
		db:       db,
		observer: observer,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start collects once and then every interval until Stop is called
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.collect(); err != nil {
		return err
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := m.collect(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

func (m *ConnectionPoolMonitor) collect() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}

	stats := sqlDB.Stats()
	m.observer.ObservePool(stats)

	if poolNearlyExhausted(stats) {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
	return nil
}

// Ping checks that the database answers within ctx
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
