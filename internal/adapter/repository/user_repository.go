package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/flowpaylabs/paymethod-service/internal/domain/model"
	domainRepo "github.com/flowpaylabs/paymethod-service/internal/domain/repository"
)

type userRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, logger *zap.Logger) domainRepo.UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a user by ID. Returns nil without an error when no
// row exists.
func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get user by ID",
			zap.String("user_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// FindIDsByUsernameLike resolves a case-insensitive username fragment
// into the matching user IDs.
func (r *userRepository) FindIDsByUsernameLike(ctx context.Context, fragment string) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("username ILIKE ?", "%"+fragment+"%").
		Pluck("id", &ids).Error

	if err != nil {
		r.logger.Error("Failed to find users by username fragment",
			zap.String("fragment", fragment),
			zap.Error(err))
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	return ids, nil
}
