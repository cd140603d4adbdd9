package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/flowpaylabs/paymethod-service/internal/adapter/repository"
	domainRepo "github.com/flowpaylabs/paymethod-service/internal/domain/repository"
)

// Repositories holds all repository instances
type Repositories struct {
	PaymentMethod domainRepo.PaymentMethodRepository
	User          domainRepo.UserRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		PaymentMethod: repository.NewPaymentMethodRepository(db, logger),
		User:          repository.NewUserRepository(db, logger),
	}
}
