package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/flowpaylabs/paymethod-service/internal/domain/model"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// FindIDsByUsernameLike resolves a case-insensitive username fragment
	// into the matching user IDs.
	FindIDsByUsernameLike(ctx context.Context, fragment string) ([]uuid.UUID, error)
}
