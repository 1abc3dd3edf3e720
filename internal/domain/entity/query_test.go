package entity

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListQuery(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		q := ParseListQuery(ListParams{})

		assert.Equal(t, PageRequest{Page: 1, Limit: 10}, q.Page)
		assert.Equal(t, SortSpec{Field: SortCreatedAt, Descending: true}, q.Sort)
		assert.Equal(t, TransactionFilter{}, q.Filter)
	})

	t.Run("Clamps page and limit", func(t *testing.T) {
		testCases := []struct {
			page, limit         string
			wantPage, wantLimit int
		}{
			{"0", "0", 1, 10},
			{"-3", "-5", 1, 1},
			{"abc", "xyz", 1, 10},
			{"4", "250", 4, 100},
			{"2", "100", 2, 100},
			{"7", "1", 7, 1},
			{"288230376151711745", "64", MaxPage, 64},
			{"99999999999999999999", "100", 1, 100},
		}

		for _, tc := range testCases {
			t.Run(tc.page+"/"+tc.limit, func(t *testing.T) {
				q := ParseListQuery(ListParams{Page: tc.page, Limit: tc.limit})

				assert.Equal(t, tc.wantPage, q.Page.Page)
				assert.Equal(t, tc.wantLimit, q.Page.Limit)
			})
		}
	})

	t.Run("Sort whitelist", func(t *testing.T) {
		assert.Equal(t, SortAmount, ParseListQuery(ListParams{SortBy: "amount"}).Sort.Field)
		assert.Equal(t, SortCreatedAt, ParseListQuery(ListParams{SortBy: "amount; DROP TABLE"}).Sort.Field)
		assert.False(t, ParseListQuery(ListParams{SortOrder: "ASC"}).Sort.Descending)
		assert.True(t, ParseListQuery(ListParams{SortOrder: "sideways"}).Sort.Descending)
	})

	t.Run("Filters and dates", func(t *testing.T) {
		q := ParseListQuery(ListParams{
			Status:       "success",
			Network:      "mtn",
			ResellerCode: "RS-1",
			Search:       " 0244 ",
			StartDate:    "2024-01-01",
			EndDate:      "2024-01-31T23:59:59Z",
		})

		assert.Equal(t, PaymentSuccess, q.Filter.Status)
		assert.Equal(t, "mtn", q.Filter.Network)
		assert.Equal(t, "RS-1", q.Filter.ResellerCode)
		assert.Equal(t, "0244", q.Filter.Search)
		require.NotNil(t, q.Filter.StartDate)
		require.NotNil(t, q.Filter.EndDate)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *q.Filter.StartDate)
		assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), *q.Filter.EndDate)
	})

	t.Run("Unparsable dates are ignored", func(t *testing.T) {
		q := ParseListQuery(ListParams{StartDate: "yesterday"})
		assert.Nil(t, q.Filter.StartDate)
	})

	t.Run("Offset", func(t *testing.T) {
		assert.Equal(t, 20, PageRequest{Page: 3, Limit: 10}.Offset())
		assert.Equal(t, 0, PageRequest{Page: 1, Limit: 50}.Offset())
	})

	t.Run("Largest page keeps a positive offset", func(t *testing.T) {
		q := ParseListQuery(ListParams{Page: "9223372036854775807", Limit: "100"})

		assert.Equal(t, MaxPage, q.Page.Page)
		assert.Positive(t, q.Page.Offset())
		assert.Greater(t, q.Page.Offset(), math.MaxInt-MaxLimit)
	})
}

func TestTransactionFilter_WithStatus(t *testing.T) {
	filter := TransactionFilter{Status: PaymentFailed, Network: "mtn"}

	success := filter.WithStatus(PaymentSuccess)

	assert.Equal(t, PaymentSuccess, success.Status)
	assert.Equal(t, "mtn", success.Network)
	assert.Equal(t, PaymentFailed, filter.Status)
}

func TestNewPagination(t *testing.T) {
	testCases := []struct {
		name      string
		page      PageRequest
		total     int64
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"exact multiple", PageRequest{Page: 1, Limit: 10}, 30, 3, true, false},
		{"remainder page", PageRequest{Page: 4, Limit: 10}, 31, 4, false, true},
		{"beyond last page", PageRequest{Page: 9, Limit: 10}, 31, 4, false, true},
		{"empty", PageRequest{Page: 1, Limit: 10}, 0, 0, false, false},
		{"single item", PageRequest{Page: 1, Limit: 1}, 1, 1, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.total)

			assert.Equal(t, tc.wantPages, p.TotalPages)
			assert.Equal(t, tc.total, p.TotalItems)
			assert.Equal(t, tc.page.Page, p.CurrentPage)
			assert.Equal(t, tc.page.Limit, p.ItemsPerPage)
			assert.Equal(t, tc.wantNext, p.HasNextPage)
			assert.Equal(t, tc.wantPrev, p.HasPrevPage)
		})
	}
}
