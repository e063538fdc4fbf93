package ports

import (
	"context"

	"github.com/yogaflow/studio-api/internal/core/domain"
)

// SessionRepository defines persistence operations for sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) (*domain.Session, error)
	FindAll(ctx context.Context) ([]*domain.Session, error)
	// FindByID returns domain.ErrSessionNotFound when no session matches.
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	// Update replaces the stored session. It returns domain.ErrSessionNotFound
	// when the target does not exist instead of silently succeeding.
	Update(ctx context.Context, s *domain.Session) (*domain.Session, error)
	// Delete returns domain.ErrSessionNotFound when the target does not exist.
	Delete(ctx context.Context, id string) error
}
