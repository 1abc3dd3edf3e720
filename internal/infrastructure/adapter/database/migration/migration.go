package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CurrentSchemaVersion is the schema version this build expects
const CurrentSchemaVersion = "1.1.0"

// upgrade moves a ledger recorded at from to the next schema version.
// Fresh databases skip upgrades; AutoMigrate creates the current schema directly.
type upgrade struct {
	from    string
	to      string
	details string
	run     func(ctx context.Context, db *gorm.DB, logger coreport.Logger) error
}

var upgrades = []upgrade{
	{
		from:    "1.0.0",
		to:      "1.1.0",
		details: "Delivery tracking columns",
		run: func(ctx context.Context, db *gorm.DB, logger coreport.Logger) error {
			return NewAddDeliveryTracking(db, logger).Run(ctx)
		},
	},
}

// MigrationManager brings the ledger schema to CurrentSchemaVersion
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	indexes      *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		indexes:      NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll is safe to run on every start. A database already at the current
// version is left untouched.
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	db := m.db.WithContext(ctx)
	dialect := db.Dialector.Name()

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("create migration_versions: %w", err)
	}

	version, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version == CurrentSchemaVersion {
		m.logger.Debug("Schema is current", map[string]any{"version": version})
		return nil
	}

	m.logger.Info("Migrating schema", map[string]any{
		"from":    version,
		"to":      CurrentSchemaVersion,
		"dialect": dialect,
	})

	if err := db.AutoMigrate(&model.Transaction{}); err != nil {
		return fmt.Errorf("auto-migrate transactions: %w", err)
	}

	if version != "" {
		if err := m.applyUpgrades(ctx, version); err != nil {
			return err
		}
	}

	if err := db.Exec(
		"CREATE INDEX IF NOT EXISTS idx_transactions_status_delivery ON transactions (status, delivery_status)",
	).Error; err != nil {
		return fmt.Errorf("create claim index: %w", err)
	}

	if dialect == "postgres" {
		if err := m.indexes.CreateAdvancedIndexes(ctx); err != nil {
			return err
		}
		m.indexes.CreatePerformanceTweaks(ctx)
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Transactions ledger with delivery tracking"); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	m.logger.Info("Schema migrated", map[string]any{"version": CurrentSchemaVersion})
	return nil
}

// GetCurrentVersion returns the most recently applied version, or "" for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").First(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return version.Version, nil
}

func (m *MigrationManager) applyUpgrades(ctx context.Context, version string) error {
	for _, step := range upgrades {
		if step.from != version {
			continue
		}

		m.logger.Info("Applying schema upgrade", map[string]any{
			"from":    step.from,
			"to":      step.to,
			"details": step.details,
		})
		if err := step.run(ctx, m.db, m.logger); err != nil {
			return fmt.Errorf("upgrade %s -> %s: %w", step.from, step.to, err)
		}
		version = step.to
	}

	if version != CurrentSchemaVersion {
		return fmt.Errorf("no upgrade path from schema version %s", version)
	}
	return nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}
