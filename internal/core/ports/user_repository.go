package ports

import (
	"context"

	"github.com/yogaflow/studio-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts. It is the
// sole owner of credential material; callers only borrow read-only views.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when no account matches.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
