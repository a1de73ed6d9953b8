package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Apurva130401/syncflo-backend/internal/domain/model"
	domainRepo "github.com/Apurva130401/syncflo-backend/internal/domain/repository"
)

type billingRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewBillingRepository creates a new billing history repository
func NewBillingRepository(db *gorm.DB, logger *zap.Logger) domainRepo.BillingRepository {
	return &billingRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUserID retrieves the user's billing history, newest invoice first
func (r *billingRepository) ListByUserID(ctx context.Context, userID string) ([]*model.BillingRecord, error) {
	var records []*model.BillingRecord

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("invoice_date DESC").
		Find(&records).Error

	if err != nil {
		r.logger.Error("Failed to list billing history",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list billing history: %w", err)
	}

	return records, nil
}

// Create appends a billing record
func (r *billingRepository) Create(ctx context.Context, record *model.BillingRecord) error {
	err := r.db.WithContext(ctx).Create(record).Error
	if err != nil {
		r.logger.Error("Failed to create billing record",
			zap.String("user_id", record.UserID),
			zap.String("invoice_id", record.InvoiceID),
			zap.Error(err))
		return fmt.Errorf("failed to create billing record: %w", err)
	}

	return nil
}
