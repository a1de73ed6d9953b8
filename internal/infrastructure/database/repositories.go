package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Apurva130401/syncflo-backend/internal/adapter/repository"
	domainRepo "github.com/Apurva130401/syncflo-backend/internal/domain/repository"
)

// Repositories holds all repository instances
type Repositories struct {
	User         domainRepo.UserRepository
	Profile      domainRepo.ProfileRepository
	Subscription domainRepo.SubscriptionRepository
	Plan         domainRepo.PlanRepository
	Billing      domainRepo.BillingRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		User:         repository.NewUserRepository(db, logger),
		Profile:      repository.NewProfileRepository(db, logger),
		Subscription: repository.NewSubscriptionRepository(db, logger),
		Plan:         repository.NewPlanRepository(db, logger),
		Billing:      repository.NewBillingRepository(db, logger),
	}
}
