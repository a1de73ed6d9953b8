package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	domainErrors "github.com/Apurva130401/syncflo-backend/internal/domain/errors"
	"github.com/Apurva130401/syncflo-backend/internal/usecase"
)

type UserHandler struct {
	logger  *zap.Logger
	userSvc *usecase.UserService
}

func NewUserHandler(logger *zap.Logger, userSvc *usecase.UserService) *UserHandler {
	return &UserHandler{
		logger:  logger,
		userSvc: userSvc,
	}
}

type findOrCreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName"`
}

// FindOrCreate returns the user for an email, creating it on first sight.
// POST /api/user/find-or-create
func (h *UserHandler) FindOrCreate(c echo.Context) error {
	var req findOrCreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Email is required.",
		})
	}

	user, created, err := h.userSvc.FindOrCreate(c.Request().Context(), req.Email, req.FullName)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidRequest) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Email is required.",
			})
		}
		h.logger.Error("Failed to find or create user",
			zap.String("email", req.Email),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Database error while finding or creating user.",
		})
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, user)
}
