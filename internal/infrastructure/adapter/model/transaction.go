package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Transaction represents the database model for ledger transactions
type Transaction struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement"`
	Reference      string          `gorm:"column:reference;uniqueIndex:idx_transactions_reference;not null;size:255"`
	Status         string          `gorm:"column:status;not null;size:20;index"`
	Amount         decimal.Decimal `gorm:"column:amount;type:numeric(14,4);not null"`
	BaseCost       decimal.Decimal `gorm:"column:base_cost;type:numeric(14,4);not null"`
	JBProfit       decimal.Decimal `gorm:"column:jb_profit;type:numeric(14,4);not null"`
	BundleName     string          `gorm:"column:bundle_name;size:255"`
	Email          *string         `gorm:"column:email;size:255"`
	Currency       string          `gorm:"column:currency;size:3;not null;default:GHS"`
	ResellerCode   *string         `gorm:"column:reseller_code;size:64;index"`
	DeliveryStatus string          `gorm:"column:delivery_status;not null;size:20;default:pending;index"`
	FailureReason  *string         `gorm:"column:failure_reason;type:text"`
	DeliveredAt    *time.Time      `gorm:"column:delivered_at"`
	CreatedAt      time.Time       `gorm:"column:created_at;not null;index"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;not null"`

	Metadata TransactionMetadata `gorm:"embedded;embeddedPrefix:metadata_"`
}

// TransactionMetadata holds the optional purchase attributes as nullable columns
type TransactionMetadata struct {
	Network                  *string             `gorm:"column:network;size:32;index"`
	PhoneNumberReceivingData *string             `gorm:"column:phone_number_receiving_data;size:32"`
	ResellerName             *string             `gorm:"column:reseller_name;size:255"`
	ResellerProfit           decimal.NullDecimal `gorm:"column:reseller_profit;type:numeric(14,4)"`
	BundleData               datatypes.JSON      `gorm:"column:bundle_data"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
