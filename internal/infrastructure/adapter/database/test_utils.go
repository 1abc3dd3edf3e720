package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/database/migration"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/logger"
	timeprovider "github.com/jbdata/ledger-engine/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// NewTestDB opens a migrated sqlite database in a temporary directory.
// The pool is limited to one connection, so every statement of a transaction must use
// the transaction handle.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config := DefaultConfig().WithMaxOpenConnections(1)
	config.Driver = DriverSQLite
	config.SQLitePath = filepath.Join(t.TempDir(), "ledger_test.db")
	config.LogLevel = "silent"

	dialector, err := openDialector(config)
	if err != nil {
		t.Fatalf("Failed to build sqlite dialector: %v", err)
	}

	noop := logger.NewNoopLogger()
	db, err := gorm.Open(dialector, newGormConfig(config, noop, time.Now))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get test database connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)

	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mgr := migration.NewMigrationManager(db, noop, timeprovider.NewRealTimeProvider())
	if err := mgr.MigrateAll(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// NewTestUnitOfWork returns a unit of work over db with the default isolation level
func NewTestUnitOfWork(db *gorm.DB) *UnitOfWork {
	return NewUnitOfWork(db, DefaultConfig().IsolationLevel, logger.NewNoopLogger()).(*UnitOfWork)
}
