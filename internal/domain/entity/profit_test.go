package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveProfit(t *testing.T) {
	testCases := []struct {
		baseCost string
		jbProfit string
		jbcp     string
	}{
		{"30", "10", "20"},
		{"15", "5", "10"},
		{"10", "3", "7"},
		{"2.75", "3.10", "-0.35"},
	}

	for _, tc := range testCases {
		t.Run(tc.baseCost+"-"+tc.jbProfit, func(t *testing.T) {
			tx := &Transaction{BaseCost: dec(tc.baseCost), JBProfit: dec(tc.jbProfit)}

			for i := 0; i < 3; i++ {
				assert.True(t, dec(tc.jbcp).Equal(DeriveProfit(tx).JBCP))
			}
		})
	}
}

func TestComputeAnalytics(t *testing.T) {
	t.Run("Three successful orders", func(t *testing.T) {
		// Arrange
		totals := LedgerTotals{
			Orders:        3,
			ActiveOrders:  2,
			TotalAmount:   dec("50").Add(dec("30")).Add(dec("20")),
			TotalBaseCost: dec("30").Add(dec("15")).Add(dec("10")),
			TotalJBProfit: dec("10").Add(dec("5")).Add(dec("3")),
		}

		// Act
		summary := ComputeAnalytics(totals).Present()

		// Assert
		assert.Equal(t, 100.0, summary.TotalRevenue)
		assert.Equal(t, int64(3), summary.TotalOrders)
		assert.Equal(t, int64(2), summary.ActiveOrders)
		assert.Equal(t, 18.0, summary.TotalJBProfit)
		assert.Equal(t, 3.6, summary.DevelopersProfit)
		assert.Equal(t, 37.0, summary.TotalJBCP)
		assert.Equal(t, 45.0, summary.TotalResellerProfits)
		assert.Equal(t, 37.0, summary.TotalActualJBCPCost)
		assert.Equal(t, 82.0, summary.TotalCost)
		assert.Equal(t, 33.33, summary.AverageOrderValue)
		assert.Equal(t, 18.0, summary.ProfitMargin)
		assert.Equal(t, "GHS", summary.Currency)
		assert.Empty(t, summary.Error)
	})

	t.Run("Empty set guards divisions", func(t *testing.T) {
		analytics := ComputeAnalytics(LedgerTotals{})

		assert.True(t, analytics.AverageOrderValue.IsZero())
		assert.True(t, analytics.ProfitMargin.IsZero())
		assert.Equal(t, ZeroAnalytics(), analytics)
	})

	t.Run("Zero revenue with orders keeps margin at zero", func(t *testing.T) {
		analytics := ComputeAnalytics(LedgerTotals{Orders: 2, TotalJBProfit: dec("1")})

		assert.True(t, analytics.ProfitMargin.IsZero())
		assert.True(t, analytics.AverageOrderValue.IsZero())
	})

	t.Run("Accumulation is unrounded", func(t *testing.T) {
		analytics := ComputeAnalytics(LedgerTotals{
			Orders:        3,
			TotalAmount:   dec("0.005").Add(dec("0.005")),
			TotalBaseCost: decimal.Zero,
			TotalJBProfit: dec("0.004").Add(dec("0.004")),
		})

		assert.True(t, dec("0.01").Equal(analytics.TotalRevenue))
		assert.Equal(t, 0.01, analytics.Present().TotalJBProfit)
	})
}
