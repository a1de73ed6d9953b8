package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Plan represents a purchasable subscription plan
type Plan struct {
	ID         int64           `gorm:"column:plan_id;primaryKey;autoIncrement" json:"plan_id"`
	Name       string          `gorm:"not null;size:200" json:"name"`
	PriceINR   decimal.Decimal `gorm:"column:price_in_inr;type:numeric(12,2);not null" json:"price_in_inr"`
	Features   Features        `gorm:"type:jsonb;default:'{}'" json:"features"`
	StripePriceID string       `gorm:"column:stripe_price_id;size:100" json:"stripe_price_id,omitempty"`
	SortOrder  int             `gorm:"default:0" json:"sort_order"`
	IsActive   bool            `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time       `gorm:"default:now()" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"default:now()" json:"updated_at"`
}

// Features represents plan features as JSONB
type Features map[string]interface{}

// Value implements driver.Valuer interface
func (f Features) Value() (driver.Value, error) {
	return json.Marshal(f)
}

// Scan implements sql.Scanner interface
func (f *Features) Scan(src interface{}) error {
	if src == nil {
		*f = make(Features)
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		*f = make(Features)
		return nil
	}
}

// TableName specifies the table name for GORM
func (Plan) TableName() string {
	return "plans"
}
