package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
	errs "github.com/jbdata/ledger-engine/internal/domain/error"
	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/domain/port/persistence"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/model"
)

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// sortColumns maps listing sort keys to columns
var sortColumns = map[entity.SortField]string{
	entity.SortCreatedAt:      "created_at",
	entity.SortUpdatedAt:      "updated_at",
	entity.SortAmount:         "amount",
	entity.SortBaseCost:       "base_cost",
	entity.SortJBProfit:       "jb_profit",
	entity.SortReference:      "reference",
	entity.SortStatus:         "status",
	entity.SortDeliveryStatus: "delivery_status",
	entity.SortBundleName:     "bundle_name",
	entity.SortNetwork:        "metadata_network",
	entity.SortDeliveredAt:    "delivered_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

const searchClause = `(LOWER(metadata_phone_number_receiving_data) LIKE ? ESCAPE '\' ` +
	`OR LOWER(reference) LIKE ? ESCAPE '\' ` +
	`OR LOWER(email) LIKE ? ESCAPE '\')`

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create inserts a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"reference": transaction.Reference,
		"status":    transaction.Status,
	})

	row := entityToModel(transaction)
	result := r.db.WithContext(ctx).Create(&row)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate transaction detected", map[string]any{
				"reference": transaction.Reference,
			})
			return errs.ErrDuplicateTransaction
		}

		r.logger.Error("Failed to create transaction", map[string]any{
			"reference": transaction.Reference,
			"error":     result.Error.Error(),
		})
		return r.errorClassifier.Wrap("create transaction", result.Error)
	}

	transaction.ID = row.ID
	transaction.CreatedAt = row.CreatedAt
	transaction.UpdatedAt = row.UpdatedAt
	return nil
}

// ExistsByReference checks if a transaction with the given reference already exists
func (r *TransactionRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("reference = ?", reference).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Failed to check transaction existence", map[string]any{
			"reference": reference,
			"error":     result.Error.Error(),
		})
		return false, r.errorClassifier.Wrap("check transaction existence", result.Error)
	}

	r.logger.Debug("Transaction existence check completed", map[string]any{
		"reference": reference,
		"exists":    count > 0,
	})
	return count > 0, nil
}

// GetByReference retrieves a transaction by its external reference
func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	var row model.Transaction
	result := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		First(&row)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Debug("Transaction not found", map[string]any{
				"reference": reference,
			})
			return nil, errs.NewNotFoundError(reference)
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"reference": reference,
			"error":     result.Error.Error(),
		})
		return nil, r.errorClassifier.Wrap("get transaction", result.Error)
	}

	return modelToEntity(&row), nil
}

// Find returns one page of transactions matching filter
func (r *TransactionRepository) Find(
	ctx context.Context,
	filter entity.TransactionFilter,
	sort entity.SortSpec,
	page entity.PageRequest,
) ([]*entity.Transaction, error) {
	column, ok := sortColumns[sort.Field]
	if !ok {
		column = sortColumns[entity.SortCreatedAt]
	}

	var rows []model.Transaction
	result := applyFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), filter).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: sort.Descending}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: sort.Descending}).
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&rows)

	if result.Error != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, r.errorClassifier.Wrap("find transactions", result.Error)
	}

	r.logger.Debug("Transactions listed", map[string]any{
		"rows":   len(rows),
		"page":   page.Page,
		"limit":  page.Limit,
		"sort":   column,
		"search": filter.Search != "",
	})
	return modelsToEntities(rows), nil
}

// Count returns the number of transactions matching filter
func (r *TransactionRepository) Count(ctx context.Context, filter entity.TransactionFilter) (int64, error) {
	var total int64
	result := applyFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), filter).Count(&total)
	if result.Error != nil {
		r.logger.Error("Failed to count transactions", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, r.errorClassifier.Wrap("count transactions", result.Error)
	}
	return total, nil
}

// totalsRow receives the aggregate select
type totalsRow struct {
	Orders        int64           `gorm:"column:orders"`
	ActiveOrders  int64           `gorm:"column:active_orders"`
	TotalAmount   decimal.Decimal `gorm:"column:total_amount"`
	TotalBaseCost decimal.Decimal `gorm:"column:total_base_cost"`
	TotalJBProfit decimal.Decimal `gorm:"column:total_jb_profit"`
}

// moneyScale matches the four fractional digits of the numeric(14,4) money columns
const moneyScale = 4

// sumMoney sums a money column exactly. SQLite stores numeric(14,4) with REAL affinity,
// so its sum runs over integer ten-thousandths and is scaled back after the scan.
func sumMoney(dialect, column string) string {
	if dialect == "sqlite" {
		return fmt.Sprintf("COALESCE(SUM(CAST(ROUND(%s * 10000) AS INTEGER)), 0)", column)
	}
	return fmt.Sprintf("COALESCE(SUM(%s), 0)", column)
}

// Aggregate sums the money columns and counts orders over filter in one statement
func (r *TransactionRepository) Aggregate(ctx context.Context, filter entity.TransactionFilter) (entity.LedgerTotals, error) {
	dialect := r.db.Dialector.Name()

	var row totalsRow
	result := applyFilter(r.db.WithContext(ctx).Model(&model.Transaction{}), filter).
		Select(`COUNT(*) AS orders, ` +
			`COALESCE(SUM(CASE WHEN delivery_status = 'pending' THEN 1 ELSE 0 END), 0) AS active_orders, ` +
			sumMoney(dialect, "amount") + ` AS total_amount, ` +
			sumMoney(dialect, "base_cost") + ` AS total_base_cost, ` +
			sumMoney(dialect, "jb_profit") + ` AS total_jb_profit`).
		Scan(&row)

	if result.Error != nil {
		r.logger.Error("Failed to aggregate transactions", map[string]any{
			"error": result.Error.Error(),
		})
		return entity.LedgerTotals{}, r.errorClassifier.Wrap("aggregate transactions", result.Error)
	}

	if dialect == "sqlite" {
		row.TotalAmount = row.TotalAmount.Shift(-moneyScale)
		row.TotalBaseCost = row.TotalBaseCost.Shift(-moneyScale)
		row.TotalJBProfit = row.TotalJBProfit.Shift(-moneyScale)
	}

	return entity.LedgerTotals{
		Orders:        row.Orders,
		ActiveOrders:  row.ActiveOrders,
		TotalAmount:   row.TotalAmount,
		TotalBaseCost: row.TotalBaseCost,
		TotalJBProfit: row.TotalJBProfit,
	}, nil
}

// FindClaimable selects successful orders awaiting delivery, oldest first.
// On postgres the rows are locked and rows held by a concurrent claim are skipped.
func (r *TransactionRepository) FindClaimable(ctx context.Context) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("status = ? AND delivery_status = ?", entity.PaymentSuccess, entity.DeliveryPending).
		Order("created_at ASC").
		Order("id ASC")

	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"})
	}

	var rows []model.Transaction
	if err := query.Find(&rows).Error; err != nil {
		r.logger.Error("Failed to select claimable transactions", map[string]any{
			"error": err.Error(),
		})
		return nil, r.errorClassifier.Wrap("find claimable transactions", err)
	}

	r.logger.Debug("Claimable transactions selected", map[string]any{
		"rows": len(rows),
	})
	return modelsToEntities(rows), nil
}

// MarkProcessing moves the given ids from pending to processing
func (r *TransactionRepository) MarkProcessing(ctx context.Context, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id IN ? AND delivery_status = ?", ids, entity.DeliveryPending).
		Updates(map[string]any{
			"delivery_status": string(entity.DeliveryProcessing),
			"updated_at":      r.db.NowFunc(),
		})

	if result.Error != nil {
		r.logger.Error("Failed to claim transactions", map[string]any{
			"ids":   len(ids),
			"error": result.Error.Error(),
		})
		return 0, r.errorClassifier.Wrap("mark processing", result.Error)
	}

	r.logger.Debug("Transactions claimed", map[string]any{
		"requested": len(ids),
		"claimed":   result.RowsAffected,
	})
	return result.RowsAffected, nil
}

// UpdateDelivery writes update for reference, guarded by expected when it is set
func (r *TransactionRepository) UpdateDelivery(
	ctx context.Context,
	reference string,
	expected entity.DeliveryStatus,
	update entity.DeliveryUpdate,
) error {
	query := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("reference = ?", reference)
	if expected != "" {
		query = query.Where("delivery_status = ?", expected)
	}

	result := query.Updates(map[string]any{
		"delivery_status": string(update.Status),
		"failure_reason":  update.FailureReason,
		"delivered_at":    utcPtr(update.DeliveredAt),
		"updated_at":      r.db.NowFunc(),
	})

	if result.Error != nil {
		r.logger.Error("Failed to update delivery status", map[string]any{
			"reference": reference,
			"status":    update.Status,
			"error":     result.Error.Error(),
		})
		return r.errorClassifier.Wrap("update delivery", result.Error)
	}

	if result.RowsAffected == 0 {
		if expected == "" {
			return errs.NewNotFoundError(reference)
		}
		exists, err := r.ExistsByReference(ctx, reference)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewNotFoundError(reference)
		}
		r.logger.Warn("Delivery status changed concurrently", map[string]any{
			"reference": reference,
			"expected":  expected,
		})
		return errs.NewDeliveryTransitionError(reference, string(expected), string(update.Status), errs.ErrIllegalTransition)
	}

	r.logger.Debug("Delivery status updated", map[string]any{
		"reference": reference,
		"status":    update.Status,
	})
	return nil
}

// applyFilter adds the WHERE conditions shared by listing, counting and aggregation
func applyFilter(db *gorm.DB, filter entity.TransactionFilter) *gorm.DB {
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Network != "" {
		db = db.Where("metadata_network = ?", filter.Network)
	}
	if filter.ResellerCode != "" {
		db = db.Where("reseller_code = ?", filter.ResellerCode)
	}
	if filter.StartDate != nil {
		db = db.Where("created_at >= ?", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		db = db.Where("created_at <= ?", filter.EndDate.UTC())
	}
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
		db = db.Where(searchClause, pattern, pattern, pattern)
	}
	return db
}

// entityToModel converts a transaction entity to a database model
func entityToModel(t *entity.Transaction) model.Transaction {
	row := model.Transaction{
		ID:             t.ID,
		Reference:      t.Reference,
		Status:         string(t.Status),
		Amount:         t.Amount,
		BaseCost:       t.BaseCost,
		JBProfit:       t.JBProfit,
		BundleName:     t.BundleName,
		Email:          optional(t.Email),
		Currency:       t.CurrencyOrDefault(),
		ResellerCode:   optional(t.ResellerCode),
		DeliveryStatus: string(t.DeliveryStatus),
		FailureReason:  t.FailureReason,
		DeliveredAt:    utcPtr(t.DeliveredAt),
		CreatedAt:      t.CreatedAt.UTC(),
		UpdatedAt:      t.UpdatedAt.UTC(),
		Metadata: model.TransactionMetadata{
			Network:                  optional(t.Metadata.Network),
			PhoneNumberReceivingData: optional(t.Metadata.PhoneNumberReceivingData),
			ResellerName:             optional(t.Metadata.ResellerName),
			ResellerProfit:           t.Metadata.ResellerProfit,
		},
	}
	if row.DeliveryStatus == "" {
		row.DeliveryStatus = string(entity.DeliveryPending)
	}
	if len(t.Metadata.BundleData) > 0 {
		row.Metadata.BundleData = datatypes.JSON(t.Metadata.BundleData)
	}
	return row
}

// modelToEntity converts a transaction model to an entity
func modelToEntity(row *model.Transaction) *entity.Transaction {
	t := &entity.Transaction{
		ID:             row.ID,
		Reference:      row.Reference,
		Status:         entity.PaymentStatus(row.Status),
		Amount:         row.Amount,
		BaseCost:       row.BaseCost,
		JBProfit:       row.JBProfit,
		BundleName:     row.BundleName,
		Email:          deref(row.Email),
		Currency:       row.Currency,
		ResellerCode:   deref(row.ResellerCode),
		DeliveryStatus: entity.DeliveryStatus(row.DeliveryStatus),
		FailureReason:  row.FailureReason,
		DeliveredAt:    utcPtr(row.DeliveredAt),
		CreatedAt:      row.CreatedAt.UTC(),
		UpdatedAt:      row.UpdatedAt.UTC(),
		Metadata: entity.Metadata{
			Network:                  deref(row.Metadata.Network),
			PhoneNumberReceivingData: deref(row.Metadata.PhoneNumberReceivingData),
			ResellerName:             deref(row.Metadata.ResellerName),
			ResellerProfit:           row.Metadata.ResellerProfit,
		},
	}
	if len(row.Metadata.BundleData) > 0 {
		t.Metadata.BundleData = json.RawMessage(row.Metadata.BundleData)
	}
	return t
}

func modelsToEntities(rows []model.Transaction) []*entity.Transaction {
	out := make([]*entity.Transaction, len(rows))
	for i := range rows {
		out[i] = modelToEntity(&rows[i])
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
