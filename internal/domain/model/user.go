package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a SyncFlo user account
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"user_id"`
	Email     string    `gorm:"unique;not null;size:255" json:"email"`
	FullName  string    `gorm:"not null;size:200;default:'New User'" json:"full_name"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// BeforeCreate assigns a UUID when no id was provided
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
