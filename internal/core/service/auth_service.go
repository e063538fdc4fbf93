package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/yogaflow/studio-api/internal/auth"
	"github.com/yogaflow/studio-api/internal/core/domain"
	"github.com/yogaflow/studio-api/internal/core/ports"
)

// LoginThrottle limits repeated failed logins per account (Redis-backed).
// A throttle outage degrades to "no throttling": it must never decide
// identity, only slow down guessing.
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration and login on top of the user store and
// the token codec.
type AuthService struct {
	repo     ports.UserRepository
	codec    *auth.Codec
	throttle LoginThrottle   // optional
	audit    ports.AuditSink // optional
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *auth.Codec, throttle LoginThrottle, audit ports.AuditSink, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, throttle: throttle, audit: audit, logger: logger}
}

// Login verifies the credentials and mints a bearer token. An unknown email
// and a wrong password return the same domain.ErrInvalidCredentials; nothing
// in the error or its timing-relevant handling reveals which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooManyFailures(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login throttle unavailable, continuing without it")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.failedAttempt(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.failedAttempt(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Mint(user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("login: mint token: %w", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset login throttle")
		}
	}
	s.record(email, domain.AuthEventLogin)

	return token, user, nil
}

// Register creates a new non-admin account. The duplicate check runs before
// hashing so a taken email does not cost a bcrypt round.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	taken, err := s.repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hash),
		Admin:        false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.record(in.Email, domain.AuthEventRegistration)
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")

	return created, nil
}

func (s *AuthService) failedAttempt(ctx context.Context, email string) {
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to record login failure")
		}
	}
	s.record(email, domain.AuthEventLoginFailed)
}

func (s *AuthService) record(email string, kind domain.AuthEventKind) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuthEvent{
		Email:     email,
		Kind:      kind,
		Timestamp: time.Now().UTC(),
	})
}
