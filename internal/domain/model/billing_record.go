package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Billing record status constants
const (
	BillingStatusPaid   = "paid"
	BillingStatusFailed = "failed"
)

// BillingRecord represents a single invoice line in a user's billing history
type BillingRecord struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string          `gorm:"not null;size:36;index" json:"user_id"`
	InvoiceID   string          `gorm:"size:100;index" json:"invoice_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency    string          `gorm:"not null;size:10" json:"currency"`
	Status      string          `gorm:"not null;size:20" json:"status"`
	Description string          `gorm:"size:500" json:"description"`
	InvoiceDate time.Time       `gorm:"not null;index" json:"invoice_date"`
	CreatedAt   time.Time       `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM
func (BillingRecord) TableName() string {
	return "billing_history"
}
