package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	domainErrors "github.com/Apurva130401/syncflo-backend/internal/domain/errors"
	"github.com/Apurva130401/syncflo-backend/internal/usecase"
)

type ConnectionHandler struct {
	logger        *zap.Logger
	connectionSvc *usecase.ConnectionService
}

func NewConnectionHandler(logger *zap.Logger, connectionSvc *usecase.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{
		logger:        logger,
		connectionSvc: connectionSvc,
	}
}

type deleteConnectionRequest struct {
	ProviderConfigKey string `json:"providerConfigKey" validate:"required"`
	ConnectionID      string `json:"connectionId" validate:"required"`
}

// ListConnections returns the user's active integration connections.
// GET /api/connections/:userId
func (h *ConnectionHandler) ListConnections(c echo.Context) error {
	userID := c.Param("userId")

	connections, err := h.connectionSvc.ListConnections(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list connections",
			zap.String("user_id", userID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to fetch connections",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"connections": connections,
	})
}

// DeleteConnection revokes a connection at Nango and clears the local field.
// DELETE /api/connections
func (h *ConnectionHandler) DeleteConnection(c echo.Context) error {
	var req deleteConnectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "providerConfigKey and connectionId are required",
		})
	}

	err := h.connectionSvc.DeleteConnection(c.Request().Context(), req.ProviderConfigKey, req.ConnectionID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidRequest) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "providerConfigKey and connectionId are required",
			})
		}
		h.logger.Error("Failed to delete connection",
			zap.String("provider_config_key", req.ProviderConfigKey),
			zap.String("connection_id", req.ConnectionID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete connection",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Connection deleted successfully",
	})
}
