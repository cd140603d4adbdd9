package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/flowpaylabs/paymethod-service/internal/domain/model"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&model.User{},
		&model.PaymentMethod{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createCustomIndexes creates indexes that GORM tags don't cover.
func createCustomIndexes(db *gorm.DB) error {
	// Owner listings and admin results are always ordered newest first.
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_payment_methods_owner_created ON payment_methods (owner_id, created_at DESC)`).Error; err != nil {
		return err
	}

	// Username fragments are matched case-insensitively.
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_users_username_lower ON users (lower(username))`).Error; err != nil {
		return err
	}

	return nil
}
