package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Apurva130401/syncflo-backend/internal/domain/model"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	logger.Info("Creating PostgreSQL extensions...")
	if err := createExtensions(db); err != nil {
		logger.Error("Failed to create extensions", zap.Error(err))
		return err
	}

	logger.Info("Running GORM auto-migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Plan{},
		&model.Subscription{},
		&model.BillingRecord{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	logger.Info("Creating custom indexes...")
	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createCustomIndexes creates indexes that GORM doesn't handle automatically
func createCustomIndexes(db *gorm.DB) error {
	// At most one active subscription per user
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS unique_active_subscription_per_user ON subscriptions (user_id) WHERE status = 'active'`).Error; err != nil {
		return err
	}

	// Billing history is always read newest first per user
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_billing_history_user_date ON billing_history (user_id, invoice_date DESC)`).Error; err != nil {
		return err
	}

	return nil
}

// createExtensions creates required PostgreSQL extensions
func createExtensions(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return nil
}
