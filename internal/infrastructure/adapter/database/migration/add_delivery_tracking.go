package migration

import (
	"context"

	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AddDeliveryTracking upgrades 1.0.0 ledgers, which recorded payments only, to track delivery
type AddDeliveryTracking struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddDeliveryTracking creates a new migration instance
func NewAddDeliveryTracking(db *gorm.DB, logger coreport.Logger) *AddDeliveryTracking {
	return &AddDeliveryTracking{
		db:     db,
		logger: logger,
	}
}

var deliveryColumns = []string{"DeliveryStatus", "FailureReason", "DeliveredAt"}

// Run adds any missing delivery columns and marks existing rows as pending
func (m *AddDeliveryTracking) Run(ctx context.Context) error {
	m.logger.Info("Adding delivery tracking to transactions table", nil)

	db := m.db.WithContext(ctx)
	migrator := db.Migrator()

	for _, field := range deliveryColumns {
		if migrator.HasColumn(&model.Transaction{}, field) {
			continue
		}
		if err := migrator.AddColumn(&model.Transaction{}, field); err != nil {
			m.logger.Error("Failed to add delivery column", map[string]any{
				"column": field,
				"error":  err.Error(),
			})
			return err
		}
	}

	result := db.Model(&model.Transaction{}).
		Where("delivery_status IS NULL OR delivery_status = ''").
		Update("delivery_status", "pending")
	if result.Error != nil {
		m.logger.Error("Failed to backfill delivery status", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	m.logger.Info("Delivery tracking added", map[string]any{
		"backfilled_rows": result.RowsAffected,
	})
	return nil
}
