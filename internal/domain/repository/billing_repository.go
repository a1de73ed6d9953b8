package repository

import (
	"context"

	"github.com/Apurva130401/syncflo-backend/internal/domain/model"
)

type BillingRepository interface {
	// ListByUserID returns the user's billing history, newest invoice first.
	ListByUserID(ctx context.Context, userID string) ([]*model.BillingRecord, error)
	Create(ctx context.Context, record *model.BillingRecord) error
}
