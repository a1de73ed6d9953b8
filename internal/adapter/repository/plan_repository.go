package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Apurva130401/syncflo-backend/internal/domain/model"
	domainRepo "github.com/Apurva130401/syncflo-backend/internal/domain/repository"
)

type planRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB, logger *zap.Logger) domainRepo.PlanRepository {
	return &planRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll retrieves all active plans
func (r *planRepository) GetAll(ctx context.Context) ([]*model.Plan, error) {
	var plans []*model.Plan

	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&plans).Error

	if err != nil {
		r.logger.Error("Failed to get all plans", zap.Error(err))
		return nil, fmt.Errorf("failed to get plans: %w", err)
	}

	return plans, nil
}

// GetByID retrieves a plan by primary key
func (r *planRepository) GetByID(ctx context.Context, id int64) (*model.Plan, error) {
	var plan model.Plan

	err := r.db.WithContext(ctx).
		Where("plan_id = ?", id).
		First(&plan).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get plan",
			zap.Int64("plan_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return &plan, nil
}

// GetByStripePriceID retrieves a plan by its Stripe price id
func (r *planRepository) GetByStripePriceID(ctx context.Context, priceID string) (*model.Plan, error) {
	var plan model.Plan

	err := r.db.WithContext(ctx).
		Where("stripe_price_id = ?", priceID).
		First(&plan).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get plan by price id",
			zap.String("price_id", priceID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return &plan, nil
}
