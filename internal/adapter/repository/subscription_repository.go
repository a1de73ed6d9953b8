package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainErrors "github.com/Apurva130401/syncflo-backend/internal/domain/errors"
	"github.com/Apurva130401/syncflo-backend/internal/domain/model"
	domainRepo "github.com/Apurva130401/syncflo-backend/internal/domain/repository"
)

type subscriptionRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB, logger *zap.Logger) domainRepo.SubscriptionRepository {
	return &subscriptionRepository{
		db:     db,
		logger: logger,
	}
}

// GetActiveByUserID retrieves the user's active subscription with its plan
func (r *subscriptionRepository) GetActiveByUserID(ctx context.Context, userID string) (*model.Subscription, error) {
	var subscription model.Subscription

	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ? AND status = ?", userID, model.SubscriptionStatusActive).
		First(&subscription).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrNoActiveSubscription
		}
		r.logger.Error("Failed to get active subscription",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &subscription, nil
}

// GetByStripeSubscriptionID retrieves a subscription by its Stripe id
func (r *subscriptionRepository) GetByStripeSubscriptionID(ctx context.Context, stripeSubscriptionID string) (*model.Subscription, error) {
	var subscription model.Subscription

	err := r.db.WithContext(ctx).
		Where("stripe_subscription_id = ?", stripeSubscriptionID).
		First(&subscription).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get subscription by stripe id",
			zap.String("stripe_subscription_id", stripeSubscriptionID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &subscription, nil
}

// Save inserts a new subscription
func (r *subscriptionRepository) Save(ctx context.Context, subscription *model.Subscription) error {
	err := r.db.WithContext(ctx).Create(subscription).Error
	if err != nil {
		r.logger.Error("Failed to save subscription",
			zap.String("user_id", subscription.UserID),
			zap.Error(err))
		return fmt.Errorf("failed to save subscription: %w", err)
	}

	return nil
}

// Update updates an existing subscription
func (r *subscriptionRepository) Update(ctx context.Context, subscription *model.Subscription) error {
	err := r.db.WithContext(ctx).Save(subscription).Error
	if err != nil {
		r.logger.Error("Failed to update subscription",
			zap.Int64("id", subscription.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	return nil
}
