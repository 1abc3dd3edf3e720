package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/jbdata/ledger-engine/internal/domain/error"
)

// PaymentStatus is the payment outcome recorded by the ingestion collaborator
type PaymentStatus string

// PaymentStatus constants
const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

// DefaultCurrency is used when a record arrives without a currency
const DefaultCurrency = "GHS"

// Placeholder is rendered for absent optional fields
const Placeholder = "N/A"

// Valid reports whether s is a known payment status
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentSuccess, PaymentFailed:
		return true
	}
	return false
}

// Metadata holds the optional attributes attached by the purchase flow.
// Empty strings and a nil ResellerProfit mean the attribute was absent.
type Metadata struct {
	Network                  string
	PhoneNumberReceivingData string
	ResellerName             string
	ResellerProfit           decimal.NullDecimal
	BundleData               json.RawMessage
}

// Transaction is a single bundle purchase in the ledger
type Transaction struct {
	ID             uint64          // Store-internal identity
	Reference      string          // External key, unique and immutable
	Status         PaymentStatus   // Payment outcome, read-only for the core
	Amount         decimal.Decimal // Gross amount charged
	BaseCost       decimal.Decimal // Acquisition cost of the bundle
	JBProfit       decimal.Decimal // Platform profit
	BundleName     string
	Email          string
	Currency       string
	Metadata       Metadata
	ResellerCode   string
	DeliveryStatus DeliveryStatus
	FailureReason  *string
	DeliveredAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewTransaction validates an ingested record and returns it in its initial delivery state
func NewTransaction(
	reference string,
	status PaymentStatus,
	amount, baseCost, jbProfit decimal.Decimal,
	bundleName string,
	createdAt time.Time,
) (*Transaction, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, errs.ErrInvalidReference
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidPaymentStatus, status)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount %s", errs.ErrNegativeAmount, amount)
	}
	if baseCost.IsNegative() {
		return nil, fmt.Errorf("%w: baseCost %s", errs.ErrNegativeAmount, baseCost)
	}

	return &Transaction{
		Reference:      reference,
		Status:         status,
		Amount:         amount,
		BaseCost:       baseCost,
		JBProfit:       jbProfit,
		BundleName:     bundleName,
		Currency:       DefaultCurrency,
		DeliveryStatus: DeliveryPending,
		CreatedAt:      createdAt.UTC(),
	}, nil
}

// IsClaimable reports whether the export workflow may claim this order
func (t *Transaction) IsClaimable() bool {
	return t.Status == PaymentSuccess && t.DeliveryStatus == DeliveryPending
}

// CurrencyOrDefault returns the stored currency or DefaultCurrency
func (t *Transaction) CurrencyOrDefault() string {
	if t.Currency == "" {
		return DefaultCurrency
	}
	return t.Currency
}

// TransactionDisplay is the listing projection of a transaction
type TransactionDisplay struct {
	TransactionID  string          `json:"transactionId"`
	DateTime       time.Time       `json:"dateTime"`
	Customer       string          `json:"customer"`
	Network        string          `json:"network"`
	BundleName     string          `json:"bundleName"`
	JBProfit       float64         `json:"JBProfit"`
	Status         PaymentStatus   `json:"status"`
	DeliveryStatus DeliveryStatus  `json:"deliveryStatus"`
	Amount         float64         `json:"amount"`
	BaseCost       float64         `json:"baseCost"`
	JBCP           float64         `json:"JBCP"`
	Currency       string          `json:"currency"`
	ResellerName   string          `json:"resellerName"`
	ResellerProfit float64         `json:"resellerProfit"`
	BundleData     json.RawMessage `json:"bundleData"`
}

// ToDisplay projects the transaction for listing, substituting placeholders for absent fields
func (t *Transaction) ToDisplay() TransactionDisplay {
	profit := DeriveProfit(t)

	resellerProfit := 0.0
	if t.Metadata.ResellerProfit.Valid {
		resellerProfit = MoneyFloat(t.Metadata.ResellerProfit.Decimal)
	}

	bundleData := t.Metadata.BundleData
	if len(bundleData) == 0 || string(bundleData) == "null" {
		bundleData = json.RawMessage(`"` + Placeholder + `"`)
	}

	return TransactionDisplay{
		TransactionID:  t.Reference,
		DateTime:       t.CreatedAt,
		Customer:       orPlaceholder(t.Metadata.PhoneNumberReceivingData),
		Network:        orPlaceholder(strings.ToUpper(t.Metadata.Network)),
		BundleName:     t.BundleName,
		JBProfit:       MoneyFloat(t.JBProfit),
		Status:         t.Status,
		DeliveryStatus: t.DeliveryStatus,
		Amount:         MoneyFloat(t.Amount),
		BaseCost:       MoneyFloat(t.BaseCost),
		JBCP:           MoneyFloat(RoundMoney(profit.JBCP)),
		Currency:       t.CurrencyOrDefault(),
		ResellerName:   orPlaceholder(t.Metadata.ResellerName),
		ResellerProfit: resellerProfit,
		BundleData:     bundleData,
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
