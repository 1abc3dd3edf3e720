package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-step ledger operations inside one store transaction
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// WithinTransaction runs fn in a transaction scope. The scope commits when fn returns nil
	// and rolls back on an error or panic.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
