package ports

import (
	"context"

	"github.com/yogaflow/studio-api/internal/core/domain"
)

// TeacherRepository defines read operations for teachers.
type TeacherRepository interface {
	FindAll(ctx context.Context) ([]*domain.Teacher, error)
	// FindByID returns domain.ErrTeacherNotFound when no teacher matches.
	FindByID(ctx context.Context, id string) (*domain.Teacher, error)
}
