package ports

import (
	"context"

	"github.com/yogaflow/studio-api/internal/core/domain"
)

// RegisterInput carries the fields needed to create an account. Validation
// of lengths and formats happens at the transport layer before this input is
// constructed.
type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// AuthService authenticates credentials and mints bearer tokens.
type AuthService interface {
	// Login verifies the credentials and returns a signed token plus the
	// authenticated user. Unknown email and wrong password both yield
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Register creates a new non-admin account. The password is hashed before
	// persistence; domain.ErrEmailTaken is returned for duplicate emails.
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
}
