package repository

import (
	"context"

	"github.com/Apurva130401/syncflo-backend/internal/domain/model"
)

type PlanRepository interface {
	GetAll(ctx context.Context) ([]*model.Plan, error)
	GetByID(ctx context.Context, id int64) (*model.Plan, error)
	GetByStripePriceID(ctx context.Context, priceID string) (*model.Plan, error)
}
