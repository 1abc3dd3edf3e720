package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	errs "github.com/jbdata/ledger-engine/internal/domain/error"
	coreport "github.com/jbdata/ledger-engine/internal/domain/port/core"
	"github.com/jbdata/ledger-engine/internal/domain/port/persistence"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

var isolationLevels = map[string]sql.IsolationLevel{
	"read committed":  sql.LevelReadCommitted,
	"repeatable read": sql.LevelRepeatableRead,
	"serializable":    sql.LevelSerializable,
}

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db        *gorm.DB
	isolation sql.IsolationLevel
	logger    coreport.Logger
}

// NewUnitOfWork creates a new UnitOfWork instance. The isolation level is only
// requested from postgres; sqlite transactions are serialized by the driver.
func NewUnitOfWork(db *gorm.DB, isolationLevel string, logger coreport.Logger) persistence.UnitOfWork {
	isolation, ok := isolationLevels[strings.ToLower(isolationLevel)]
	if !ok {
		isolation = sql.LevelReadCommitted
	}
	return &UnitOfWork{
		db:        db,
		isolation: isolation,
		logger:    logger,
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	var opts []*sql.TxOptions
	if u.db.Dialector.Name() == DriverPostgres {
		opts = append(opts, &sql.TxOptions{Isolation: u.isolation})
	}

	u.logger.Debug("Beginning database transaction", map[string]any{
		"isolation": u.isolation.String(),
		"dialect":   u.db.Dialector.Name(),
	})

	tx := u.db.WithContext(ctx).Begin(opts...)
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, errs.NewDatabaseError("begin", errs.ErrTransactionFailed, tx.Error)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("%w: no transaction found in context", errs.ErrTransactionFailed)
	}

	u.logger.Debug("Committing database transaction", nil)
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return errs.NewDatabaseError("commit", errs.ErrTransactionFailed, err)
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("%w: no transaction found in context", errs.ErrTransactionFailed)
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error

	// A transaction that already finished is not an error for the caller
	if err != nil && (errors.Is(err, sql.ErrTxDone) || strings.Contains(err.Error(), "already been committed or rolled back")) {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return errs.NewDatabaseError("rollback", errs.ErrTransactionFailed, err)
	}

	return nil
}

// WithinTransaction runs fn inside a transaction. A context that already carries a
// transaction is reused, so nested calls join the outer scope.
func (u *UnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}

	txCtx, err := u.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = u.Rollback(txCtx)
			panic(p)
		}
	}()

	if err = fn(txCtx); err != nil {
		if rbErr := u.Rollback(txCtx); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return u.Commit(txCtx)
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	db := u.getDbFromContext(ctx)
	return repository.NewTransactionRepository(db, u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
