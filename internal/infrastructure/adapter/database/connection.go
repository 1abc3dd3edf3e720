package database

import (
	"fmt"
	"time"

	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openDialector returns the gorm dialector for the configured driver
func openDialector(config *Config) (gorm.Dialector, error) {
	switch config.Driver {
	case DriverPostgres:
		return postgres.Open(config.DSN()), nil
	case DriverSQLite:
		return sqlite.Open(config.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", config.Driver)
	}
}

// newGormConfig builds the gorm settings shared by the manager and test databases
func newGormConfig(config *Config, logger coreport.Logger, now func() time.Time) *gorm.Config {
	return &gorm.Config{
		Logger:         NewGormDatabaseLogger(logger, config.LogLevel, config.SlowThreshold),
		NowFunc:        func() time.Time { return now().UTC() },
		TranslateError: true,
		PrepareStmt:    config.Driver == DriverPostgres,
	}
}
