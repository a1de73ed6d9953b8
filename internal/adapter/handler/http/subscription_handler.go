package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domainErrors "github.com/Apurva130401/syncflo-backend/internal/domain/errors"
	"github.com/Apurva130401/syncflo-backend/internal/domain/model"
	"github.com/Apurva130401/syncflo-backend/internal/domain/repository"
)

type SubscriptionHandler struct {
	logger           *zap.Logger
	subscriptionRepo repository.SubscriptionRepository
}

func NewSubscriptionHandler(logger *zap.Logger, subscriptionRepo repository.SubscriptionRepository) *SubscriptionHandler {
	return &SubscriptionHandler{
		logger:           logger,
		subscriptionRepo: subscriptionRepo,
	}
}

type subscriptionResponse struct {
	ID                 int64                    `json:"id"`
	UserID             string                   `json:"user_id"`
	PlanID             *int64                   `json:"plan_id,omitempty"`
	Status             model.SubscriptionStatus `json:"status"`
	CurrentPeriodStart time.Time                `json:"current_period_start"`
	CurrentPeriodEnd   time.Time                `json:"current_period_end"`
	PlanName           string                   `json:"plan_name,omitempty"`
	PriceINR           *decimal.Decimal         `json:"price_in_inr,omitempty"`
	Features           model.Features           `json:"features,omitempty"`
}

// GetSubscription returns the user's active subscription joined with its plan.
// GET /api/subscription/:userId
func (h *SubscriptionHandler) GetSubscription(c echo.Context) error {
	userID := c.Param("userId")

	sub, err := h.subscriptionRepo.GetActiveByUserID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNoActiveSubscription) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "No active subscription found.",
			})
		}
		h.logger.Error("Failed to get subscription",
			zap.String("user_id", userID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Database error fetching subscription.",
		})
	}

	res := subscriptionResponse{
		ID:                 sub.ID,
		UserID:             sub.UserID,
		PlanID:             sub.PlanID,
		Status:             sub.Status,
		CurrentPeriodStart: sub.CurrentPeriodStart,
		CurrentPeriodEnd:   sub.CurrentPeriodEnd,
	}
	if sub.Plan != nil {
		res.PlanName = sub.Plan.Name
		res.PriceINR = &sub.Plan.PriceINR
		res.Features = sub.Plan.Features
	}

	return c.JSON(http.StatusOK, res)
}
