package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Apurva130401/syncflo-backend/internal/usecase"
)

type NangoWebhookHandler struct {
	logger        *zap.Logger
	connectionSvc *usecase.ConnectionService
}

func NewNangoWebhookHandler(logger *zap.Logger, connectionSvc *usecase.ConnectionService) *NangoWebhookHandler {
	return &NangoWebhookHandler{
		logger:        logger,
		connectionSvc: connectionSvc,
	}
}

// HandleWebhook ingests Nango connection lifecycle notifications.
// POST /api/webhooks/nango
//
// Unmatched notification types are acknowledged with 200 and no side
// effects so the sender never enters a retry storm over events this
// service does not understand.
//
// TODO: verify the X-Nango-Signature header once a webhook secret is
// provisioned in the Nango dashboard.
func (h *NangoWebhookHandler) HandleWebhook(c echo.Context) error {
	var event usecase.ConnectionEvent
	if err := c.Bind(&event); err != nil {
		h.logger.Warn("Unparseable webhook payload", zap.Error(err))
		return c.JSON(http.StatusOK, echo.Map{"received": true})
	}

	h.logger.Info("Webhook event received",
		zap.String("type", event.Type),
		zap.String("operation", event.Operation),
		zap.Bool("success", event.Success),
		zap.String("provider", event.Provider))

	if err := h.connectionSvc.HandleConnectionEvent(c.Request().Context(), &event); err != nil {
		h.logger.Error("Failed to process webhook event",
			zap.String("provider", event.Provider),
			zap.String("connection_id", event.ConnectionID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"received": true})
}
