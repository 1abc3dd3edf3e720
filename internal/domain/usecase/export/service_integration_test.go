package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
	errs "github.com/jbdata/ledger-engine/internal/domain/error"
	"github.com/jbdata/ledger-engine/internal/domain/port/metrics"
	"github.com/jbdata/ledger-engine/internal/domain/usecase/export"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/database"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/lock"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/logger"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/repository"
	timeprovider "github.com/jbdata/ledger-engine/internal/infrastructure/adapter/time"
)

func seedPending(t *testing.T, repo *repository.TransactionRepository, count int) {
	t.Helper()

	base := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		tx, err := entity.NewTransaction(
			fmt.Sprintf("PAY-%03d", i),
			entity.PaymentSuccess,
			decimal.RequireFromString("12.50"),
			decimal.RequireFromString("10"),
			decimal.RequireFromString("2.50"),
			"Telecel 2GB",
			base.Add(time.Duration(i)*time.Minute),
		)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), tx))
	}
}

func seedOther(t *testing.T, repo *repository.TransactionRepository, ref string,
	status entity.PaymentStatus, delivery entity.DeliveryStatus) {
	t.Helper()

	tx, err := entity.NewTransaction(ref, status,
		decimal.RequireFromString("5"), decimal.RequireFromString("4"), decimal.RequireFromString("1"),
		"Telecel 1GB", time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	tx.DeliveryStatus = delivery
	require.NoError(t, repo.Create(context.Background(), tx))
}

func exportedReferences(content []byte) ([]string, error) {
	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("export has no header")
	}

	refs := make([]string, 0, len(records)-1)
	for _, record := range records[1:] {
		refs = append(refs, record[0])
	}
	return refs, nil
}

func TestExportPendingOrders_SQLite(t *testing.T) {
	ctx := context.Background()
	noop := logger.NewNoopLogger()

	t.Run("Concurrent exports claim disjoint batches", func(t *testing.T) {
		// Arrange
		db := database.NewTestDB(t)
		repo := repository.NewTransactionRepository(db, noop)
		seedPending(t, repo, 20)
		svc := export.NewService(database.NewTestUnitOfWork(db), lock.NoopExportLock{},
			timeprovider.NewRealTimeProvider(), metrics.NoopRecorder{}, noop)

		var (
			mu      sync.Mutex
			claimed []string
			empty   int
		)

		// Act
		g, gctx := errgroup.WithContext(ctx)
		for i := 0; i < 4; i++ {
			g.Go(func() error {
				result, err := svc.ExportPendingOrders(gctx)
				mu.Lock()
				defer mu.Unlock()
				if errs.IsEmptyBatchError(err) {
					empty++
					return nil
				}
				if err != nil {
					return err
				}
				refs, err := exportedReferences(result.Content)
				if err != nil {
					return err
				}
				claimed = append(claimed, refs...)
				return nil
			})
		}

		// Assert
		require.NoError(t, g.Wait())
		assert.Len(t, claimed, 20)
		seen := make(map[string]bool, len(claimed))
		for _, ref := range claimed {
			assert.False(t, seen[ref], "reference %s exported twice", ref)
			seen[ref] = true
		}
		assert.Equal(t, 3, empty)

		pending, err := repo.FindClaimable(ctx)
		require.NoError(t, err)
		assert.Empty(t, pending)

		got, err := repo.GetByReference(ctx, "PAY-007")
		require.NoError(t, err)
		assert.Equal(t, entity.DeliveryProcessing, got.DeliveryStatus)
	})

	t.Run("Second export right after the first finds nothing", func(t *testing.T) {
		// Arrange
		db := database.NewTestDB(t)
		repo := repository.NewTransactionRepository(db, noop)
		seedPending(t, repo, 3)
		seedOther(t, repo, "PAY-FAILED", entity.PaymentFailed, entity.DeliveryPending)
		seedOther(t, repo, "PAY-DELIVERED", entity.PaymentSuccess, entity.DeliveryDelivered)
		svc := export.NewService(database.NewTestUnitOfWork(db), lock.NoopExportLock{},
			timeprovider.NewRealTimeProvider(), metrics.NoopRecorder{}, noop)

		first, err := svc.ExportPendingOrders(ctx)
		require.NoError(t, err)
		refs, err := exportedReferences(first.Content)
		require.NoError(t, err)
		assert.Equal(t, []string{"PAY-000", "PAY-001", "PAY-002"}, refs)

		// Act
		second, err := svc.ExportPendingOrders(ctx)

		// Assert
		assert.Nil(t, second)
		assert.ErrorIs(t, err, errs.ErrNoPendingOrders)
		assert.Equal(t, errs.CodeNoPendingOrders, errs.ErrorCode(err))

		listed, err := repo.Find(ctx, entity.TransactionFilter{},
			entity.SortSpec{Field: entity.SortReference}, entity.PageRequest{Page: 1, Limit: entity.MaxLimit})
		require.NoError(t, err)
		statuses := make(map[string]entity.DeliveryStatus, len(listed))
		for _, tx := range listed {
			statuses[tx.Reference] = tx.DeliveryStatus
		}
		assert.Equal(t, map[string]entity.DeliveryStatus{
			"PAY-000":       entity.DeliveryProcessing,
			"PAY-001":       entity.DeliveryProcessing,
			"PAY-002":       entity.DeliveryProcessing,
			"PAY-FAILED":    entity.DeliveryPending,
			"PAY-DELIVERED": entity.DeliveryDelivered,
		}, statuses)
	})
}
