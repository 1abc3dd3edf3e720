package entity

import "github.com/shopspring/decimal"

// AnalyticsCurrency is the currency reported by the analytics summary
const AnalyticsCurrency = "GHS"

// AnalyticsDegradedMessage marks a zero-filled summary produced after a failure
const AnalyticsDegradedMessage = "Failed to calculate some analytics"

var (
	developersShare = decimal.RequireFromString("0.20")
	hundred         = decimal.NewFromInt(100)
)

// ProfitFigures are the per-transaction values derived from stored money fields
type ProfitFigures struct {
	JBCP     decimal.Decimal
	JBProfit decimal.Decimal
}

// DeriveProfit computes JBCP = baseCost - JBProfit. It performs no I/O.
func DeriveProfit(t *Transaction) ProfitFigures {
	return ProfitFigures{
		JBCP:     t.BaseCost.Sub(t.JBProfit),
		JBProfit: t.JBProfit,
	}
}

// LedgerTotals are the raw sums over the success-constrained filtered set
type LedgerTotals struct {
	Orders        int64
	ActiveOrders  int64
	TotalAmount   decimal.Decimal
	TotalBaseCost decimal.Decimal
	TotalJBProfit decimal.Decimal
}

// Analytics is the unrounded summary computed from LedgerTotals
type Analytics struct {
	TotalRevenue         decimal.Decimal
	TotalOrders          int64
	ActiveOrders         int64
	TotalJBProfit        decimal.Decimal
	DevelopersProfit     decimal.Decimal
	TotalCost            decimal.Decimal
	TotalJBCP            decimal.Decimal
	AverageOrderValue    decimal.Decimal
	ProfitMargin         decimal.Decimal
	TotalResellerProfits decimal.Decimal
	TotalActualJBCPCost  decimal.Decimal
	Currency             string
}

// ComputeAnalytics applies the aggregate formula sequence.
// totalCost reduces to ΣbaseCost algebraically; the intermediate steps stay literal.
func ComputeAnalytics(totals LedgerTotals) Analytics {
	totalRevenue := totals.TotalAmount
	totalJBProfit := totals.TotalJBProfit

	developersProfit := totalJBProfit.Mul(developersShare)
	totalJBCP := totals.TotalBaseCost.Sub(totalJBProfit)
	totalResellerProfits := totalRevenue.Sub(totals.TotalBaseCost)
	totalActualJBCPCost := totalRevenue.Sub(totalJBProfit).Sub(totalResellerProfits)
	totalCost := totalResellerProfits.Add(totalActualJBCPCost)

	averageOrderValue := decimal.Zero
	if totals.Orders > 0 {
		averageOrderValue = totalRevenue.Div(decimal.NewFromInt(totals.Orders))
	}

	profitMargin := decimal.Zero
	if !totalRevenue.IsZero() {
		profitMargin = totalJBProfit.Div(totalRevenue).Mul(hundred)
	}

	return Analytics{
		TotalRevenue:         totalRevenue,
		TotalOrders:          totals.Orders,
		ActiveOrders:         totals.ActiveOrders,
		TotalJBProfit:        totalJBProfit,
		DevelopersProfit:     developersProfit,
		TotalCost:            totalCost,
		TotalJBCP:            totalJBCP,
		AverageOrderValue:    averageOrderValue,
		ProfitMargin:         profitMargin,
		TotalResellerProfits: totalResellerProfits,
		TotalActualJBCPCost:  totalActualJBCPCost,
		Currency:             AnalyticsCurrency,
	}
}

// ZeroAnalytics is the summary for an empty set
func ZeroAnalytics() Analytics {
	return ComputeAnalytics(LedgerTotals{})
}

// AnalyticsSummary is the rounded presentation of Analytics
type AnalyticsSummary struct {
	TotalRevenue         float64 `json:"totalRevenue"`
	TotalOrders          int64   `json:"totalOrders"`
	ActiveOrders         int64   `json:"activeOrders"`
	TotalJBProfit        float64 `json:"totalJBProfit"`
	DevelopersProfit     float64 `json:"developersProfit"`
	TotalCost            float64 `json:"totalCost"`
	TotalJBCP            float64 `json:"totalJBCP"`
	AverageOrderValue    float64 `json:"averageOrderValue"`
	ProfitMargin         float64 `json:"profitMargin"`
	TotalResellerProfits float64 `json:"totalResellerProfits"`
	TotalActualJBCPCost  float64 `json:"totalActualJBCPCost"`
	Currency             string  `json:"currency"`
	Error                string  `json:"error,omitempty"`
}

// Present rounds every money figure to two decimal places
func (a Analytics) Present() AnalyticsSummary {
	return AnalyticsSummary{
		TotalRevenue:         PresentMoney(a.TotalRevenue),
		TotalOrders:          a.TotalOrders,
		ActiveOrders:         a.ActiveOrders,
		TotalJBProfit:        PresentMoney(a.TotalJBProfit),
		DevelopersProfit:     PresentMoney(a.DevelopersProfit),
		TotalCost:            PresentMoney(a.TotalCost),
		TotalJBCP:            PresentMoney(a.TotalJBCP),
		AverageOrderValue:    PresentMoney(a.AverageOrderValue),
		ProfitMargin:         PresentMoney(a.ProfitMargin),
		TotalResellerProfits: PresentMoney(a.TotalResellerProfits),
		TotalActualJBCPCost:  PresentMoney(a.TotalActualJBCPCost),
		Currency:             a.Currency,
	}
}
