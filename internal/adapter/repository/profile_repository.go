package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainErrors "github.com/Apurva130401/syncflo-backend/internal/domain/errors"
	"github.com/Apurva130401/syncflo-backend/internal/domain/integration"
	"github.com/Apurva130401/syncflo-backend/internal/domain/model"
	domainRepo "github.com/Apurva130401/syncflo-backend/internal/domain/repository"
)

type profileRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ProfileRepository {
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// GetByUserID retrieves the profile for a user
func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrProfileNotFound
		}
		r.logger.Error("Failed to get profile",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// SetConnectionID stores a connection id in the provider's column.
// The column name always comes from the registry, never from input.
func (r *profileRepository) SetConnectionID(ctx context.Context, userID, provider, connectionID string) error {
	column, ok := integration.ColumnFor(provider)
	if !ok {
		return fmt.Errorf("%w: %s", domainErrors.ErrUnknownProvider, provider)
	}

	result := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("user_id = ?", userID).
		Update(column, connectionID)

	if result.Error != nil {
		r.logger.Error("Failed to set connection id",
			zap.String("user_id", userID),
			zap.String("provider", provider),
			zap.Error(result.Error))
		return fmt.Errorf("failed to set connection id: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// Profiles are provisioned with the user; a missing row means the
		// webhook referenced a user this system does not know about.
		r.logger.Warn("No profile row matched user id",
			zap.String("user_id", userID),
			zap.String("provider", provider))
		return fmt.Errorf("failed to set connection id: %w", domainErrors.ErrProfileNotFound)
	}

	return nil
}

// ClearConnectionID clears the provider's column wherever it holds the
// given connection id. Zero rows cleared is reported, not treated as an error.
func (r *profileRepository) ClearConnectionID(ctx context.Context, connectionID, provider string) (int64, error) {
	column, ok := integration.ColumnFor(provider)
	if !ok {
		return 0, fmt.Errorf("%w: %s", domainErrors.ErrUnknownProvider, provider)
	}

	result := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where(fmt.Sprintf("%s = ?", column), connectionID).
		Update(column, nil)

	if result.Error != nil {
		r.logger.Error("Failed to clear connection id",
			zap.String("provider", provider),
			zap.String("connection_id", connectionID),
			zap.Error(result.Error))
		return 0, fmt.Errorf("failed to clear connection id: %w", result.Error)
	}

	return result.RowsAffected, nil
}
