package persistence

import (
	"context"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
)

// TransactionRepository defines the ledger store operations
type TransactionRepository interface {
	// Create records a new transaction delivered by the ingestion collaborator
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If a transaction with the same reference already exists
	// - ErrDatabaseQuery, ErrDatabaseConnection: If the store fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ExistsByReference checks if a reference is already recorded
	// Used for ingestion idempotency
	ExistsByReference(ctx context.Context, reference string) (bool, error)

	// GetByReference retrieves a transaction by its external reference
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction carries the reference
	// - ErrDatabaseQuery, ErrDatabaseConnection: If the store fails
	GetByReference(ctx context.Context, reference string) (*entity.Transaction, error)

	// Find returns one page of transactions matching filter in the given order.
	// A page past the end yields an empty slice.
	Find(ctx context.Context, filter entity.TransactionFilter, sort entity.SortSpec, page entity.PageRequest) ([]*entity.Transaction, error)

	// Count returns the number of transactions matching filter
	Count(ctx context.Context, filter entity.TransactionFilter) (int64, error)

	// Aggregate computes order counts and money sums over filter in a single read
	Aggregate(ctx context.Context, filter entity.TransactionFilter) (entity.LedgerTotals, error)

	// FindClaimable selects every successful transaction awaiting delivery, oldest first.
	// Inside a unit of work the rows are locked against concurrent claims where the store supports it.
	FindClaimable(ctx context.Context) ([]*entity.Transaction, error)

	// MarkProcessing moves the given ids from pending to processing and reports how many rows changed.
	// Rows no longer pending are left untouched.
	MarkProcessing(ctx context.Context, ids []uint64) (int64, error)

	// UpdateDelivery writes a delivery update for reference. When expected is not empty the write
	// only applies while the row still holds that delivery status.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no row matched
	// - ErrDatabaseQuery, ErrDatabaseConnection: If the store fails
	UpdateDelivery(ctx context.Context, reference string, expected entity.DeliveryStatus, update entity.DeliveryUpdate) error
}
