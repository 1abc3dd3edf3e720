package transaction

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jbdata/ledger-engine/internal/domain/entity"
	errs "github.com/jbdata/ledger-engine/internal/domain/error"
	"github.com/jbdata/ledger-engine/internal/domain/port/usecase"
)

// Column limits of the ledger store. Records beyond them are rejected here rather than by the database.
const (
	maxTextLength     = 255
	maxResellerCode   = 64
	maxMetadataLength = 32
	currencyLength    = 3
)

// maxMoney is the exclusive bound of a numeric(14,4) column
var maxMoney = decimal.New(1, 10)

// TransactionValidator turns ingested payment records into ledger entities
type TransactionValidator struct{}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{}
}

// Build validates req and returns the entity to store. A missing createdAt falls back to now.
func (v *TransactionValidator) Build(req usecase.IngestRequest, now time.Time) (*entity.Transaction, error) {
	amount, err := v.parseMoney("amount", req.Amount, true)
	if err != nil {
		return nil, err
	}
	baseCost, err := v.parseMoney("baseCost", req.BaseCost, true)
	if err != nil {
		return nil, err
	}
	jbProfit, err := v.parseMoney("JBProfit", req.JBProfit, false)
	if err != nil {
		return nil, err
	}

	createdAt := now
	if raw := strings.TrimSpace(req.CreatedAt); raw != "" {
		createdAt, err = time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: createdAt %q", errs.ErrInvalidRequest, raw)
		}
	}

	tx, err := entity.NewTransaction(
		req.Reference,
		entity.PaymentStatus(strings.TrimSpace(req.Status)),
		amount,
		baseCost,
		jbProfit,
		req.BundleName,
		createdAt,
	)
	if err != nil {
		return nil, err
	}

	tx.Email = strings.TrimSpace(req.Email)
	tx.ResellerCode = strings.TrimSpace(req.ResellerCode)
	tx.Metadata = req.Metadata
	if currency := strings.ToUpper(strings.TrimSpace(req.Currency)); currency != "" {
		tx.Currency = currency
	}

	if err := v.checkFits(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// checkFits rejects values the store cannot hold
func (v *TransactionValidator) checkFits(tx *entity.Transaction) error {
	if len(tx.Currency) != currencyLength {
		return fmt.Errorf("%w: currency %q must be %d letters", errs.ErrInvalidRequest, tx.Currency, currencyLength)
	}

	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"reference", tx.Reference, maxTextLength},
		{"bundleName", tx.BundleName, maxTextLength},
		{"email", tx.Email, maxTextLength},
		{"resellerCode", tx.ResellerCode, maxResellerCode},
		{"metadata.network", tx.Metadata.Network, maxMetadataLength},
		{"metadata.phoneNumberReceivingData", tx.Metadata.PhoneNumberReceivingData, maxMetadataLength},
		{"metadata.resellerName", tx.Metadata.ResellerName, maxTextLength},
	}
	for _, l := range lengths {
		if utf8.RuneCountInString(l.value) > l.max {
			return fmt.Errorf("%w: %s exceeds %d characters", errs.ErrInvalidRequest, l.field, l.max)
		}
	}

	amounts := map[string]decimal.Decimal{
		"amount":   tx.Amount,
		"baseCost": tx.BaseCost,
		"JBProfit": tx.JBProfit,
	}
	if tx.Metadata.ResellerProfit.Valid {
		amounts["metadata.resellerProfit"] = tx.Metadata.ResellerProfit.Decimal
	}
	for field, d := range amounts {
		if d.Abs().GreaterThanOrEqual(maxMoney) {
			return fmt.Errorf("%w: %s %s is out of range", errs.ErrInvalidRequest, field, d)
		}
	}
	return nil
}

// parseMoney parses a decimal field. Empty optional fields are zero.
func (v *TransactionValidator) parseMoney(field, raw string, required bool) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			return decimal.Zero, fmt.Errorf("%w: %s is required", errs.ErrInvalidRequest, field)
		}
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q", errs.ErrInvalidRequest, field, raw)
	}
	return d, nil
}
