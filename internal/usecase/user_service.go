package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	domainErrors "github.com/Apurva130401/syncflo-backend/internal/domain/errors"
	"github.com/Apurva130401/syncflo-backend/internal/domain/model"
	"github.com/Apurva130401/syncflo-backend/internal/domain/repository"
)

// UserService handles user account lookup and lazy creation
type UserService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// FindOrCreate returns the user with the given email, creating the account
// on first sight. created reports whether a new row was inserted.
func (s *UserService) FindOrCreate(ctx context.Context, email, fullName string) (user *model.User, created bool, err error) {
	if email == "" {
		return nil, false, fmt.Errorf("%w: email is required", domainErrors.ErrInvalidRequest)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domainErrors.ErrUserNotFound) {
		return nil, false, err
	}

	if fullName == "" {
		fullName = "New User"
	}

	newUser := &model.User{
		Email:    email,
		FullName: fullName,
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, false, err
	}

	s.logger.Info("User created",
		zap.String("user_id", newUser.ID),
		zap.String("email", email))

	return newUser, true, nil
}
