package ports

import (
	"context"

	"github.com/yogaflow/studio-api/internal/core/domain"
)

// UserService defines use-case operations for user accounts.
type UserService interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
