package model

import (
	"database/sql/driver"
	"time"
)

// SubscriptionStatus represents the status of a subscription
type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
)

// Scan implements sql.Scanner interface
func (s *SubscriptionStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = SubscriptionStatus(v)
	case []byte:
		*s = SubscriptionStatus(v)
	default:
		*s = SubscriptionStatusInactive
	}
	return nil
}

// Value implements driver.Valuer interface
func (s SubscriptionStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Subscription represents a user's subscription to a plan
type Subscription struct {
	ID                     int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID                 string             `gorm:"not null;size:36;index" json:"user_id"`
	PlanID                 *int64             `gorm:"index" json:"plan_id,omitempty"`
	Status                 SubscriptionStatus `gorm:"not null;size:20;default:'active'" json:"status"`
	StripeCustomerID       string             `gorm:"size:100" json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID   *string            `gorm:"unique;size:100" json:"stripe_subscription_id,omitempty"`
	CurrentPeriodStart     time.Time          `json:"current_period_start"`
	CurrentPeriodEnd       time.Time          `json:"current_period_end"`
	CanceledAt             *time.Time         `json:"canceled_at,omitempty"`
	CreatedAt              time.Time          `gorm:"default:now()" json:"created_at"`
	UpdatedAt              time.Time          `gorm:"default:now()" json:"updated_at"`

	// Relations
	Plan *Plan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

// TableName specifies the table name for GORM
func (Subscription) TableName() string {
	return "subscriptions"
}
