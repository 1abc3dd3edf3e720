package entity

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Listing bounds
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage keeps (page-1)*limit within int
	MaxPage = math.MaxInt/MaxLimit + 1
)

// SortField is a whitelisted listing sort key
type SortField string

// Sortable fields, keyed by their external names
const (
	SortCreatedAt      SortField = "createdAt"
	SortUpdatedAt      SortField = "updatedAt"
	SortAmount         SortField = "amount"
	SortBaseCost       SortField = "baseCost"
	SortJBProfit       SortField = "JBProfit"
	SortReference      SortField = "reference"
	SortStatus         SortField = "status"
	SortDeliveryStatus SortField = "deliveryStatus"
	SortBundleName     SortField = "bundleName"
	SortNetwork        SortField = "network"
	SortDeliveredAt    SortField = "deliveredAt"
)

var sortFields = map[SortField]struct{}{
	SortCreatedAt: {}, SortUpdatedAt: {}, SortAmount: {}, SortBaseCost: {}, SortJBProfit: {},
	SortReference: {}, SortStatus: {}, SortDeliveryStatus: {}, SortBundleName: {},
	SortNetwork: {}, SortDeliveredAt: {},
}

// ListParams are the raw listing parameters as received from the caller
type ListParams struct {
	Page         string
	Limit        string
	Status       string
	Network      string
	StartDate    string
	EndDate      string
	Search       string
	ResellerCode string
	SortBy       string
	SortOrder    string
}

// TransactionFilter selects transactions. Zero values mean "no constraint".
type TransactionFilter struct {
	Status       PaymentStatus
	Network      string
	ResellerCode string
	StartDate    *time.Time
	EndDate      *time.Time
	Search       string
}

// WithStatus returns a copy of f constrained to status, replacing any caller-supplied status
func (f TransactionFilter) WithStatus(status PaymentStatus) TransactionFilter {
	f.Status = status
	return f
}

// SortSpec orders a listing
type SortSpec struct {
	Field      SortField
	Descending bool
}

// PageRequest is a validated page window
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ListQuery is the normalized form of ListParams
type ListQuery struct {
	Filter TransactionFilter
	Sort   SortSpec
	Page   PageRequest
}

// ParseListQuery normalizes raw listing parameters. Out-of-range values are clamped
// and unparsable values fall back to defaults; it never rejects a request.
func ParseListQuery(p ListParams) ListQuery {
	page := parsePositive(p.Page, DefaultPage)
	switch {
	case page < 1:
		page = 1
	case page > MaxPage:
		page = MaxPage
	}

	limit := parsePositive(p.Limit, DefaultLimit)
	switch {
	case limit < 1:
		limit = 1
	case limit > MaxLimit:
		limit = MaxLimit
	}

	sortBy := SortField(strings.TrimSpace(p.SortBy))
	if _, ok := sortFields[sortBy]; !ok {
		sortBy = SortCreatedAt
	}

	return ListQuery{
		Filter: TransactionFilter{
			Status:       PaymentStatus(strings.TrimSpace(p.Status)),
			Network:      strings.TrimSpace(p.Network),
			ResellerCode: strings.TrimSpace(p.ResellerCode),
			StartDate:    parseDate(p.StartDate),
			EndDate:      parseDate(p.EndDate),
			Search:       strings.TrimSpace(p.Search),
		},
		Sort: SortSpec{
			Field:      sortBy,
			Descending: strings.ToLower(strings.TrimSpace(p.SortOrder)) != "asc",
		},
		Page: PageRequest{Page: page, Limit: limit},
	}
}

// parsePositive parses an integer, treating empty, unparsable and zero input as absent
func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n == 0 {
		return fallback
	}
	return n
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}

// Pagination is the page metadata returned with a listing
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// NewPagination computes page metadata for total matching rows
func NewPagination(page PageRequest, total int64) Pagination {
	limit := int64(page.Limit)
	if limit < 1 {
		limit = DefaultLimit
	}
	totalPages := int((total + limit - 1) / limit)

	return Pagination{
		CurrentPage:  page.Page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: page.Limit,
		HasNextPage:  page.Page < totalPages,
		HasPrevPage:  page.Page > 1,
	}
}
