package dto

import (
	"time"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
	"github.com/jbdata/ledger-engine/internal/domain/port/usecase"
)

// ListTransactionsQuery binds the listing query string. Values stay raw; the domain clamps them.
type ListTransactionsQuery struct {
	Page         string `form:"page"`
	Limit        string `form:"limit"`
	Status       string `form:"status"`
	Network      string `form:"network"`
	StartDate    string `form:"startDate"`
	EndDate      string `form:"endDate"`
	Search       string `form:"search"`
	ResellerCode string `form:"resellerCode"`
	SortBy       string `form:"sortBy"`
	SortOrder    string `form:"sortOrder"`
}

// ToParams converts the query to domain listing parameters
func (q ListTransactionsQuery) ToParams() entity.ListParams {
	return entity.ListParams{
		Page:         q.Page,
		Limit:        q.Limit,
		Status:       q.Status,
		Network:      q.Network,
		StartDate:    q.StartDate,
		EndDate:      q.EndDate,
		Search:       q.Search,
		ResellerCode: q.ResellerCode,
		SortBy:       q.SortBy,
		SortOrder:    q.SortOrder,
	}
}

// ListTransactionsData is the data payload of the listing
type ListTransactionsData struct {
	Transactions []entity.TransactionDisplay `json:"transactions"`
	Analytics    entity.AnalyticsSummary     `json:"analytics"`
	Pagination   entity.Pagination           `json:"pagination"`
}

// NewListTransactionsData converts a listing result. An empty page renders as [].
func NewListTransactionsData(result *usecase.ListResult) ListTransactionsData {
	transactions := result.Transactions
	if transactions == nil {
		transactions = []entity.TransactionDisplay{}
	}
	return ListTransactionsData{
		Transactions: transactions,
		Analytics:    result.Analytics,
		Pagination:   result.Pagination,
	}
}

// DeliveryUpdateRequest is the body of PATCH /transactions/:reference/delivery
type DeliveryUpdateRequest struct {
	DeliveryStatus string  `json:"deliveryStatus" binding:"required"`
	FailureReason  *string `json:"failureReason"`
}

// TransactionResponse is a transaction as returned after a delivery update
type TransactionResponse struct {
	Reference      string     `json:"reference"`
	Status         string     `json:"status"`
	Amount         float64    `json:"amount"`
	BaseCost       float64    `json:"baseCost"`
	JBProfit       float64    `json:"JBProfit"`
	BundleName     string     `json:"bundleName"`
	Email          string     `json:"email,omitempty"`
	Currency       string     `json:"currency"`
	ResellerCode   string     `json:"resellerCode,omitempty"`
	DeliveryStatus string     `json:"deliveryStatus"`
	FailureReason  *string    `json:"failureReason"`
	DeliveredAt    *time.Time `json:"deliveredAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// NewTransactionResponse converts an entity for the delivery response
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		Reference:      t.Reference,
		Status:         string(t.Status),
		Amount:         entity.MoneyFloat(t.Amount),
		BaseCost:       entity.MoneyFloat(t.BaseCost),
		JBProfit:       entity.MoneyFloat(t.JBProfit),
		BundleName:     t.BundleName,
		Email:          t.Email,
		Currency:       t.CurrencyOrDefault(),
		ResellerCode:   t.ResellerCode,
		DeliveryStatus: string(t.DeliveryStatus),
		FailureReason:  t.FailureReason,
		DeliveredAt:    t.DeliveredAt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
