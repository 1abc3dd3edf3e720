package migration

import (
	"context"

	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

var advancedIndexes = []struct {
	name string
	ddl  string
}{
	{
		// The export claim reads exactly this slice in created_at order
		name: "idx_transactions_claimable",
		ddl: `CREATE INDEX IF NOT EXISTS idx_transactions_claimable
			ON transactions (created_at, id)
			WHERE status = 'success' AND delivery_status = 'pending'`,
	},
	{
		name: "idx_transactions_reference_lower",
		ddl: `CREATE INDEX IF NOT EXISTS idx_transactions_reference_lower
			ON transactions (LOWER(reference) text_pattern_ops)`,
	},
	{
		name: "idx_transactions_email_lower",
		ddl: `CREATE INDEX IF NOT EXISTS idx_transactions_email_lower
			ON transactions (LOWER(email) text_pattern_ops)`,
	},
	{
		name: "idx_transactions_created_at_brin",
		ddl: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
}

// CreateAdvancedIndexes creates the partial and expression indexes used by the claim and search queries
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.ddl).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies storage settings. Failures are logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// delivery_status is rewritten on every claim
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions ALTER COLUMN metadata_network SET STATISTICS 500`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for metadata_network", map[string]any{
			"error": err.Error(),
		})
	}
}
