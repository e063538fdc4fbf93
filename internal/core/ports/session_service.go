package ports

import (
	"context"
	"time"

	"github.com/yogaflow/studio-api/internal/core/domain"
)

// SessionInput carries the mutable fields of a session for create and update.
type SessionInput struct {
	Name        string
	Date        time.Time
	Description string
	TeacherID   string
	UserIDs     []string
}

// SessionService defines use-case operations for sessions.
type SessionService interface {
	Create(ctx context.Context, in SessionInput) (*domain.Session, error)
	FindAll(ctx context.Context) ([]*domain.Session, error)
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	Update(ctx context.Context, id string, in SessionInput) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	// Participate enrolls the user; domain.ErrAlreadyParticipating when the
	// user is already enrolled.
	Participate(ctx context.Context, sessionID, userID string) error
	// Unparticipate removes the user; domain.ErrNotParticipating when the
	// user was not enrolled.
	Unparticipate(ctx context.Context, sessionID, userID string) error
}
