package repository

import (
	"context"

	"github.com/Apurva130401/syncflo-backend/internal/domain/model"
)

type SubscriptionRepository interface {
	// GetActiveByUserID returns the user's active subscription with its plan
	// preloaded, or ErrNoActiveSubscription.
	GetActiveByUserID(ctx context.Context, userID string) (*model.Subscription, error)
	GetByStripeSubscriptionID(ctx context.Context, stripeSubscriptionID string) (*model.Subscription, error)
	Save(ctx context.Context, subscription *model.Subscription) error
	Update(ctx context.Context, subscription *model.Subscription) error
}
