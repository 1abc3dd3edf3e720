package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/domain/port/persistence"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/database/migration"
	"gorm.io/gorm"
)

const poolMonitorInterval = 15 * time.Second

// Manager manages database connections
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	errorMapper       *ErrorMapper
	poolObserver      PoolObserver
	connectionMonitor *ConnectionPoolMonitor
	timeProvider      coreport.TimeProvider
}

// NewManager creates a new database manager. observer may be nil.
func NewManager(config *Config, observer PoolObserver, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	if config.Driver == DriverSQLite {
		// sqlite allows one writer; a single connection serializes transactions
		config = config.WithMaxOpenConnections(1)
	}
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		poolObserver: observer,
		timeProvider: timeProvider,
	}
}

// Connect opens the database, retrying transient failures with backoff
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	dialector, err := openDialector(m.config)
	if err != nil {
		return nil, err
	}

	retry := DefaultRetryConfig()
	retry.MaxRetries = m.config.RetryAttempts
	retry.RetryInterval = m.config.RetryDelay

	var gormDB *gorm.DB
	err = RetryOnTransientError(ctx, retry, func() error {
		db, openErr := gorm.Open(dialector, newGormConfig(m.config, m.logger, m.timeProvider.Now))
		if openErr != nil {
			return openErr
		}
		pingCtx, cancel := context.WithTimeout(ctx, m.config.QueryTimeout)
		defer cancel()
		if pingErr := Ping(pingCtx, db); pingErr != nil {
			return pingErr
		}
		gormDB = db
		return nil
	}, m.errorMapper, m.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w",
			m.config.RetryAttempts, m.errorMapper.MapError(err, "connect"))
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":          m.config.Driver,
		"max_open_conns":  m.config.MaxOpenConns,
		"max_idle_conns":  m.config.MaxIdleConns,
		"isolation_level": m.config.IsolationLevel,
	})

	m.db = gormDB
	m.connectionMonitor = NewConnectionPoolMonitor(gormDB, m.poolObserver, m.logger)
	if err := m.connectionMonitor.Start(poolMonitorInterval); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
	}

	return m.db, nil
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping checks the database with the configured query timeout
func (m *Manager) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.config.QueryTimeout)
	defer cancel()
	return m.errorMapper.MapError(Ping(ctx, m.db), "ping")
}

// Close closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.config.IsolationLevel, m.logger)
}
