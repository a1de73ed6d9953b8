package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Apurva130401/syncflo-backend/internal/domain/repository"
)

type BillingHandler struct {
	logger      *zap.Logger
	billingRepo repository.BillingRepository
}

func NewBillingHandler(logger *zap.Logger, billingRepo repository.BillingRepository) *BillingHandler {
	return &BillingHandler{
		logger:      logger,
		billingRepo: billingRepo,
	}
}

// GetBillingHistory returns the user's invoices, newest first.
// GET /api/billing-history/:userId
func (h *BillingHandler) GetBillingHistory(c echo.Context) error {
	userID := c.Param("userId")

	records, err := h.billingRepo.ListByUserID(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("Failed to get billing history",
			zap.String("user_id", userID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Database error fetching billing history.",
		})
	}

	return c.JSON(http.StatusOK, records)
}
