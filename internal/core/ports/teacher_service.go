package ports

import (
	"context"

	"github.com/yogaflow/studio-api/internal/core/domain"
)

// TeacherService defines use-case operations for teachers.
type TeacherService interface {
	FindAll(ctx context.Context) ([]*domain.Teacher, error)
	FindByID(ctx context.Context, id string) (*domain.Teacher, error)
}
