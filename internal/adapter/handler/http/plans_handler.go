package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Apurva130401/syncflo-backend/internal/domain/repository"
)

type PlansHandler struct {
	logger   *zap.Logger
	planRepo repository.PlanRepository
}

func NewPlansHandler(logger *zap.Logger, planRepo repository.PlanRepository) *PlansHandler {
	return &PlansHandler{
		logger:   logger,
		planRepo: planRepo,
	}
}

// GetPlans returns all available plans.
// GET /api/plans
func (h *PlansHandler) GetPlans(c echo.Context) error {
	plans, err := h.planRepo.GetAll(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get plans", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Database error fetching plans.",
		})
	}

	return c.JSON(http.StatusOK, plans)
}
