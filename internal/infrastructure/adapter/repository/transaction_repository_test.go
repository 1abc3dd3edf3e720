package repository_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
	errs "github.com/jbdata/ledger-engine/internal/domain/error"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/database"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/logger"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/repository"
)

var baseTime = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newRepo(t *testing.T) *repository.TransactionRepository {
	t.Helper()
	return repository.NewTransactionRepository(database.NewTestDB(t), logger.NewNoopLogger())
}

type txOpt func(*entity.Transaction)

func withDelivery(s entity.DeliveryStatus) txOpt {
	return func(tx *entity.Transaction) { tx.DeliveryStatus = s }
}

func withPhone(p string) txOpt {
	return func(tx *entity.Transaction) { tx.Metadata.PhoneNumberReceivingData = p }
}

func withNetwork(n string) txOpt {
	return func(tx *entity.Transaction) { tx.Metadata.Network = n }
}

func withEmail(e string) txOpt {
	return func(tx *entity.Transaction) { tx.Email = e }
}

func withReseller(code string) txOpt {
	return func(tx *entity.Transaction) { tx.ResellerCode = code }
}

func seed(
	t *testing.T,
	repo *repository.TransactionRepository,
	ref string,
	status entity.PaymentStatus,
	amount, baseCost, jbProfit string,
	createdAt time.Time,
	opts ...txOpt,
) *entity.Transaction {
	t.Helper()

	tx, err := entity.NewTransaction(ref, status, dec(amount), dec(baseCost), dec(jbProfit), "Mega 2GB", createdAt)
	require.NoError(t, err)
	for _, opt := range opts {
		opt(tx)
	}
	require.NoError(t, repo.Create(context.Background(), tx))
	return tx
}

func references(txs []*entity.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.Reference
	}
	return out
}

func TestTransactionRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip keeps money and metadata", func(t *testing.T) {
		// Arrange
		repo := newRepo(t)
		tx, err := entity.NewTransaction("REF-1", entity.PaymentSuccess, dec("50"), dec("30.555"), dec("10"), "Mega 2GB", baseTime)
		require.NoError(t, err)
		tx.Email = "buyer@example.com"
		tx.ResellerCode = "RS-9"
		tx.Metadata = entity.Metadata{
			Network:                  "mtn",
			PhoneNumberReceivingData: "0240000000",
			ResellerName:             "Ama",
			ResellerProfit:           decimal.NewNullDecimal(dec("4.5")),
			BundleData:               json.RawMessage(`{"volume":"2GB"}`),
		}

		// Act
		require.NoError(t, repo.Create(ctx, tx))
		got, err := repo.GetByReference(ctx, "REF-1")

		// Assert
		require.NoError(t, err)
		assert.NotZero(t, got.ID)
		assert.Equal(t, tx.ID, got.ID)
		assert.True(t, dec("50").Equal(got.Amount))
		assert.True(t, dec("30.555").Equal(got.BaseCost))
		assert.True(t, dec("10").Equal(got.JBProfit))
		assert.Equal(t, entity.DeliveryPending, got.DeliveryStatus)
		assert.Equal(t, "GHS", got.Currency)
		assert.Equal(t, "buyer@example.com", got.Email)
		assert.Equal(t, "RS-9", got.ResellerCode)
		assert.Equal(t, "mtn", got.Metadata.Network)
		assert.Equal(t, "0240000000", got.Metadata.PhoneNumberReceivingData)
		assert.True(t, got.Metadata.ResellerProfit.Valid)
		assert.True(t, dec("4.5").Equal(got.Metadata.ResellerProfit.Decimal))
		assert.JSONEq(t, `{"volume":"2GB"}`, string(got.Metadata.BundleData))
		assert.True(t, baseTime.Equal(got.CreatedAt))
		assert.Nil(t, got.DeliveredAt)
		assert.Nil(t, got.FailureReason)
	})

	t.Run("Absent metadata stays absent", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, "REF-2", entity.PaymentSuccess, "5", "4", "1", baseTime)

		got, err := repo.GetByReference(ctx, "REF-2")

		require.NoError(t, err)
		assert.Empty(t, got.Metadata.Network)
		assert.Empty(t, got.Email)
		assert.False(t, got.Metadata.ResellerProfit.Valid)
		assert.Nil(t, got.Metadata.BundleData)
	})

	t.Run("Duplicate reference", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, "REF-3", entity.PaymentSuccess, "5", "4", "1", baseTime)

		dup, err := entity.NewTransaction("REF-3", entity.PaymentFailed, dec("1"), dec("1"), dec("0"), "x", baseTime)
		require.NoError(t, err)

		err = repo.Create(ctx, dup)

		assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	})

	t.Run("Unknown reference", func(t *testing.T) {
		repo := newRepo(t)

		got, err := repo.GetByReference(ctx, "missing")

		assert.Nil(t, got)
		assert.True(t, errs.IsNotFoundError(err))
	})

	t.Run("Exists by reference", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, "REF-4", entity.PaymentSuccess, "5", "4", "1", baseTime)

		exists, err := repo.ExistsByReference(ctx, "REF-4")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByReference(ctx, "REF-5")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestTransactionRepository_FindFilters(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	seed(t, repo, "REF-A", entity.PaymentSuccess, "50", "30", "10", baseTime,
		withNetwork("mtn"), withPhone("0241111111"), withEmail("Kofi@Example.com"), withReseller("RS-1"))
	seed(t, repo, "REF-B", entity.PaymentSuccess, "30", "15", "5", baseTime.Add(24*time.Hour),
		withNetwork("telecel"), withPhone("0202222222"))
	seed(t, repo, "REF-C", entity.PaymentFailed, "20", "10", "3", baseTime.Add(48*time.Hour),
		withNetwork("mtn"), withPhone("0243333333"), withReseller("RS-1"))
	seed(t, repo, "50%_OFF", entity.PaymentSuccess, "20", "10", "3", baseTime.Add(72*time.Hour))

	sort := entity.SortSpec{Field: entity.SortCreatedAt}
	page := entity.PageRequest{Page: 1, Limit: 10}
	day := func(offset int) *time.Time {
		d := baseTime.Add(time.Duration(offset) * 24 * time.Hour)
		return &d
	}

	testCases := []struct {
		name     string
		filter   entity.TransactionFilter
		expected []string
	}{
		{"No filter", entity.TransactionFilter{}, []string{"REF-A", "REF-B", "REF-C", "50%_OFF"}},
		{"Status", entity.TransactionFilter{Status: entity.PaymentSuccess}, []string{"REF-A", "REF-B", "50%_OFF"}},
		{"Network", entity.TransactionFilter{Network: "mtn"}, []string{"REF-A", "REF-C"}},
		{"Reseller code", entity.TransactionFilter{ResellerCode: "RS-1"}, []string{"REF-A", "REF-C"}},
		{"Inclusive date range", entity.TransactionFilter{StartDate: day(1), EndDate: day(2)}, []string{"REF-B", "REF-C"}},
		{"Start date only", entity.TransactionFilter{StartDate: day(2)}, []string{"REF-C", "50%_OFF"}},
		{"Search phone", entity.TransactionFilter{Search: "0202"}, []string{"REF-B"}},
		{"Search reference ignores case", entity.TransactionFilter{Search: "ref-c"}, []string{"REF-C"}},
		{"Search email ignores case", entity.TransactionFilter{Search: "kofi@example"}, []string{"REF-A"}},
		{"Search wildcards are literal", entity.TransactionFilter{Search: "%_"}, []string{"50%_OFF"}},
		{"Combined", entity.TransactionFilter{Status: entity.PaymentSuccess, Network: "mtn", Search: "024"}, []string{"REF-A"}},
		{"No match", entity.TransactionFilter{Search: "nothing"}, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			rows, err := repo.Find(ctx, tc.filter, sort, page)
			require.NoError(t, err)
			total, err := repo.Count(ctx, tc.filter)
			require.NoError(t, err)

			// Assert
			assert.ElementsMatch(t, tc.expected, references(rows))
			assert.Equal(t, int64(len(tc.expected)), total)
		})
	}
}

func TestTransactionRepository_FindPagingAndSort(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	for i := 0; i < 25; i++ {
		seed(t, repo, fmt.Sprintf("REF-%02d", i), entity.PaymentSuccess,
			fmt.Sprintf("%d", 100-i), "10", "1", baseTime.Add(time.Duration(i)*time.Minute))
	}

	t.Run("Remainder page", func(t *testing.T) {
		rows, err := repo.Find(ctx, entity.TransactionFilter{}, entity.SortSpec{Field: entity.SortCreatedAt, Descending: true},
			entity.PageRequest{Page: 3, Limit: 10})

		require.NoError(t, err)
		assert.Len(t, rows, 5)
		assert.Equal(t, "REF-04", rows[0].Reference)
		assert.Equal(t, "REF-00", rows[4].Reference)
	})

	t.Run("Page beyond the end is empty", func(t *testing.T) {
		rows, err := repo.Find(ctx, entity.TransactionFilter{}, entity.SortSpec{Field: entity.SortCreatedAt},
			entity.PageRequest{Page: 4, Limit: 10})

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("Oversized page number is empty", func(t *testing.T) {
		q := entity.ParseListQuery(entity.ListParams{Page: "288230376151711745", Limit: "64"})

		rows, err := repo.Find(ctx, q.Filter, q.Sort, q.Page)

		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.False(t, entity.NewPagination(q.Page, 25).HasNextPage)
	})

	t.Run("Sort by amount ascending", func(t *testing.T) {
		rows, err := repo.Find(ctx, entity.TransactionFilter{}, entity.SortSpec{Field: entity.SortAmount},
			entity.PageRequest{Page: 1, Limit: 3})

		require.NoError(t, err)
		assert.Equal(t, []string{"REF-24", "REF-23", "REF-22"}, references(rows))
	})

	t.Run("Unknown sort field falls back to createdAt", func(t *testing.T) {
		rows, err := repo.Find(ctx, entity.TransactionFilter{}, entity.SortSpec{Field: "amount; DROP TABLE transactions"},
			entity.PageRequest{Page: 1, Limit: 2})

		require.NoError(t, err)
		assert.Equal(t, []string{"REF-00", "REF-01"}, references(rows))
	})
}

func TestTransactionRepository_Aggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("Sums the filtered set", func(t *testing.T) {
		// Arrange
		repo := newRepo(t)
		seed(t, repo, "REF-1", entity.PaymentSuccess, "50", "30", "10", baseTime)
		seed(t, repo, "REF-2", entity.PaymentSuccess, "30", "15", "5", baseTime, withDelivery(entity.DeliveryDelivered))
		seed(t, repo, "REF-3", entity.PaymentSuccess, "20", "10", "3", baseTime)
		seed(t, repo, "REF-4", entity.PaymentFailed, "99", "99", "9", baseTime)

		// Act
		totals, err := repo.Aggregate(ctx, entity.TransactionFilter{Status: entity.PaymentSuccess})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(3), totals.Orders)
		assert.Equal(t, int64(2), totals.ActiveOrders)
		assert.True(t, dec("100").Equal(totals.TotalAmount))
		assert.True(t, dec("55").Equal(totals.TotalBaseCost))
		assert.True(t, dec("18").Equal(totals.TotalJBProfit))
	})

	t.Run("Fractional sums are exact", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, "REF-1", entity.PaymentSuccess, "0.1", "0.07", "0.0001", baseTime)
		seed(t, repo, "REF-2", entity.PaymentSuccess, "0.2", "0.13", "0.0002", baseTime)
		seed(t, repo, "REF-3", entity.PaymentSuccess, "9999999999.9999", "0", "0", baseTime)

		totals, err := repo.Aggregate(ctx, entity.TransactionFilter{})

		require.NoError(t, err)
		assert.Equal(t, "10000000000.2999", totals.TotalAmount.String())
		assert.Equal(t, "0.2", totals.TotalBaseCost.String())
		assert.Equal(t, "0.0003", totals.TotalJBProfit.String())
	})

	t.Run("Empty set yields zeros", func(t *testing.T) {
		repo := newRepo(t)

		totals, err := repo.Aggregate(ctx, entity.TransactionFilter{Status: entity.PaymentSuccess})

		require.NoError(t, err)
		assert.Equal(t, int64(0), totals.Orders)
		assert.True(t, totals.TotalAmount.IsZero())
		assert.True(t, totals.TotalJBProfit.IsZero())
	})
}

func TestTransactionRepository_Claim(t *testing.T) {
	ctx := context.Background()

	t.Run("Claimable rows are successful pending orders, oldest first", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, "NEW", entity.PaymentSuccess, "5", "4", "1", baseTime.Add(time.Hour))
		seed(t, repo, "OLD", entity.PaymentSuccess, "5", "4", "1", baseTime)
		seed(t, repo, "FAILED", entity.PaymentFailed, "5", "4", "1", baseTime)
		seed(t, repo, "SENT", entity.PaymentSuccess, "5", "4", "1", baseTime, withDelivery(entity.DeliveryProcessing))

		rows, err := repo.FindClaimable(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"OLD", "NEW"}, references(rows))
	})

	t.Run("Mark processing only moves pending rows", func(t *testing.T) {
		repo := newRepo(t)
		a := seed(t, repo, "A", entity.PaymentSuccess, "5", "4", "1", baseTime)
		b := seed(t, repo, "B", entity.PaymentSuccess, "5", "4", "1", baseTime, withDelivery(entity.DeliveryDelivered))

		claimed, err := repo.MarkProcessing(ctx, []uint64{a.ID, b.ID})

		require.NoError(t, err)
		assert.Equal(t, int64(1), claimed)

		got, err := repo.GetByReference(ctx, "A")
		require.NoError(t, err)
		assert.Equal(t, entity.DeliveryProcessing, got.DeliveryStatus)

		got, err = repo.GetByReference(ctx, "B")
		require.NoError(t, err)
		assert.Equal(t, entity.DeliveryDelivered, got.DeliveryStatus)
	})

	t.Run("Empty id set", func(t *testing.T) {
		repo := newRepo(t)

		claimed, err := repo.MarkProcessing(ctx, nil)

		require.NoError(t, err)
		assert.Zero(t, claimed)
	})
}

func TestTransactionRepository_UpdateDelivery(t *testing.T) {
	ctx := context.Background()
	now := baseTime.Add(2 * time.Hour)

	t.Run("Delivered sets deliveredAt and clears failure reason", func(t *testing.T) {
		// Arrange
		repo := newRepo(t)
		reason := "network down"
		seed(t, repo, "REF-1", entity.PaymentSuccess, "5", "4", "1", baseTime)
		require.NoError(t, repo.UpdateDelivery(ctx, "REF-1", "",
			entity.NewDeliveryUpdate(entity.DeliveryFailed, &reason, now)))

		// Act
		err := repo.UpdateDelivery(ctx, "REF-1", "", entity.NewDeliveryUpdate(entity.DeliveryDelivered, nil, now))

		// Assert
		require.NoError(t, err)
		got, err := repo.GetByReference(ctx, "REF-1")
		require.NoError(t, err)
		assert.Equal(t, entity.DeliveryDelivered, got.DeliveryStatus)
		require.NotNil(t, got.DeliveredAt)
		assert.True(t, now.Equal(*got.DeliveredAt))
		assert.Nil(t, got.FailureReason)
	})

	t.Run("Failed stores the reason", func(t *testing.T) {
		repo := newRepo(t)
		reason := "invalid number"
		seed(t, repo, "REF-2", entity.PaymentSuccess, "5", "4", "1", baseTime)

		err := repo.UpdateDelivery(ctx, "REF-2", "", entity.NewDeliveryUpdate(entity.DeliveryFailed, &reason, now))

		require.NoError(t, err)
		got, err := repo.GetByReference(ctx, "REF-2")
		require.NoError(t, err)
		require.NotNil(t, got.FailureReason)
		assert.Equal(t, "invalid number", *got.FailureReason)
		assert.Nil(t, got.DeliveredAt)
	})

	t.Run("Unknown reference", func(t *testing.T) {
		repo := newRepo(t)

		err := repo.UpdateDelivery(ctx, "missing", "", entity.NewDeliveryUpdate(entity.DeliveryFailed, nil, now))

		assert.True(t, errs.IsNotFoundError(err))
	})

	t.Run("Expected status mismatch leaves the row untouched", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo, "REF-3", entity.PaymentSuccess, "5", "4", "1", baseTime, withDelivery(entity.DeliveryProcessing))

		err := repo.UpdateDelivery(ctx, "REF-3", entity.DeliveryPending,
			entity.NewDeliveryUpdate(entity.DeliveryDelivered, nil, now))

		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		got, getErr := repo.GetByReference(ctx, "REF-3")
		require.NoError(t, getErr)
		assert.Equal(t, entity.DeliveryProcessing, got.DeliveryStatus)
	})
}
