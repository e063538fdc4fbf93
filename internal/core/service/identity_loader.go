package service

import (
	"context"
	"errors"

	"github.com/yogaflow/studio-api/internal/auth"
	"github.com/yogaflow/studio-api/internal/core/domain"
	"github.com/yogaflow/studio-api/internal/core/ports"
)

// IdentityLoader reconstructs a request identity from a verified token
// subject. It is a pure read-through against the user store.
type IdentityLoader struct {
	repo ports.UserRepository
}

func NewIdentityLoader(repo ports.UserRepository) *IdentityLoader {
	return &IdentityLoader{repo: repo}
}

// Load returns (nil, nil) when the subject no longer maps to an account, so
// callers treat a token for a deleted account exactly like an invalid token.
func (l *IdentityLoader) Load(ctx context.Context, email string) (*auth.Identity, error) {
	user, err := l.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &auth.Identity{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Admin:     user.Admin,
	}, nil
}
