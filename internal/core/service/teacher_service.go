package service

import (
	"context"

	"github.com/yogaflow/studio-api/internal/core/domain"
	"github.com/yogaflow/studio-api/internal/core/ports"
)

// TeacherService exposes read access to the teacher roster.
type TeacherService struct {
	repo ports.TeacherRepository
}

func NewTeacherService(repo ports.TeacherRepository) *TeacherService {
	return &TeacherService{repo: repo}
}

func (s *TeacherService) FindAll(ctx context.Context) ([]*domain.Teacher, error) {
	return s.repo.FindAll(ctx)
}

func (s *TeacherService) FindByID(ctx context.Context, id string) (*domain.Teacher, error) {
	return s.repo.FindByID(ctx, id)
}
