package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
	errs "github.com/jbdata/ledger-engine/internal/domain/error"
)

func newOrder(t *testing.T, ref string) *entity.Transaction {
	t.Helper()

	tx, err := entity.NewTransaction(ref, entity.PaymentSuccess,
		decimal.NewFromInt(10), decimal.NewFromInt(8), decimal.NewFromInt(2),
		"Glo 3GB", time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return tx
}

func TestUnitOfWork_WithinTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit makes writes visible", func(t *testing.T) {
		// Arrange
		db := NewTestDB(t)
		uow := NewTestUnitOfWork(db)

		// Act
		err := uow.WithinTransaction(ctx, func(txCtx context.Context) error {
			return uow.GetTransactionRepository(txCtx).Create(txCtx, newOrder(t, "COMMIT-1"))
		})

		// Assert
		require.NoError(t, err)
		exists, err := uow.GetTransactionRepository(ctx).ExistsByReference(ctx, "COMMIT-1")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Error rolls back", func(t *testing.T) {
		db := NewTestDB(t)
		uow := NewTestUnitOfWork(db)
		boom := errors.New("boom")

		err := uow.WithinTransaction(ctx, func(txCtx context.Context) error {
			if err := uow.GetTransactionRepository(txCtx).Create(txCtx, newOrder(t, "ROLLBACK-1")); err != nil {
				return err
			}
			return boom
		})

		assert.ErrorIs(t, err, boom)
		exists, err := uow.GetTransactionRepository(ctx).ExistsByReference(ctx, "ROLLBACK-1")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Panic rolls back and propagates", func(t *testing.T) {
		db := NewTestDB(t)
		uow := NewTestUnitOfWork(db)

		assert.PanicsWithValue(t, "kaboom", func() {
			_ = uow.WithinTransaction(ctx, func(txCtx context.Context) error {
				_ = uow.GetTransactionRepository(txCtx).Create(txCtx, newOrder(t, "PANIC-1"))
				panic("kaboom")
			})
		})

		exists, err := uow.GetTransactionRepository(ctx).ExistsByReference(ctx, "PANIC-1")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Nested scopes join the outer transaction", func(t *testing.T) {
		db := NewTestDB(t)
		uow := NewTestUnitOfWork(db)

		err := uow.WithinTransaction(ctx, func(outer context.Context) error {
			if err := uow.WithinTransaction(outer, func(inner context.Context) error {
				return uow.GetTransactionRepository(inner).Create(inner, newOrder(t, "NESTED-1"))
			}); err != nil {
				return err
			}
			return errors.New("outer failed")
		})

		assert.EqualError(t, err, "outer failed")
		exists, err := uow.GetTransactionRepository(ctx).ExistsByReference(ctx, "NESTED-1")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Commit without a transaction", func(t *testing.T) {
		uow := NewTestUnitOfWork(NewTestDB(t))

		assert.ErrorIs(t, uow.Commit(ctx), errs.ErrTransactionFailed)
		assert.ErrorIs(t, uow.Rollback(ctx), errs.ErrTransactionFailed)
	})
}
